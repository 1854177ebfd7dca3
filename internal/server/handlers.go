package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/arran4/pogreport"
	"github.com/arran4/pogreport/internal/findings"
	"github.com/arran4/pogreport/internal/lint"
	"go.uber.org/zap"
)

// reportRequest is the body of POST /api/report. An empty template uses the
// built-in one.
type reportRequest struct {
	Template string             `json:"template"`
	Findings []findings.Finding `json:"findings"`
	Asset    string             `json:"asset"`
	From     string             `json:"from"`
	To       string             `json:"to"`
	Sort     bool               `json:"sort_by_severity"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	s.writePDF(w, string(body))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	for i := range req.Findings {
		if err := req.Findings[i].Validate(); err != nil {
			jsonError(w, "finding "+strconv.Itoa(i+1)+": "+err.Error(), http.StatusBadRequest)
			return
		}
		req.Findings[i].Normalize()
	}

	fs := findings.Filter(req.Findings, req.Asset, req.From, req.To)
	if req.Sort {
		findings.SortBySeverity(fs)
	}
	tmpl := req.Template
	if tmpl == "" {
		tmpl = findings.DefaultTemplate
	}
	text, err := findings.Render(tmpl, findings.NewContext(fs, req.Asset, req.From, req.To, s.now()))
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.log.Debug("report template rendered", zap.Int("findings", len(fs)), zap.Int("bytes", len(text)))
	s.writePDF(w, text)
}

func (s *Server) handleLint(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	warnings := lint.Check(pogreport.ParseBlocks(string(body)))
	if warnings == nil {
		warnings = []lint.Warning{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"warnings": warnings})
}

// writePDF renders text fully before sending anything, so a failed render
// is always a clean JSON error.
func (s *Server) writePDF(w http.ResponseWriter, text string) {
	doc, err := pogreport.Generate(text, s.cfg.Options(s.log))
	if err != nil {
		s.log.Error("render failed", zap.Error(err))
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		s.log.Error("write failed", zap.Error(err))
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Page-Count", strconv.Itoa(doc.PageCount()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return nil, false
		}
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return nil, false
	}
	return body, true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
