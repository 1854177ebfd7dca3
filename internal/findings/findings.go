// Package findings loads security findings and turns them into report
// text through a template.
package findings

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/arran4/pogreport"
	"gopkg.in/yaml.v3"
)

// DateLayout is the YYYY/MM/DD form dates are stored and compared in.
const DateLayout = "2006/01/02"

// Finding is a single recorded security issue.
type Finding struct {
	Title       string `yaml:"title" json:"title"`
	Severity    string `yaml:"severity" json:"severity"`
	Asset       string `yaml:"asset" json:"asset"`
	Date        string `yaml:"date" json:"date"`
	Location    string `yaml:"location" json:"location"`
	Description string `yaml:"description" json:"description"`
	Status      string `yaml:"status" json:"status"`
}

// Status is the workflow state of a finding.
type Status int

const (
	StatusOpen Status = iota
	StatusInProgress
	StatusResolved
	StatusFalsePositive
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "In Progress"
	case StatusResolved:
		return "Resolved"
	case StatusFalsePositive:
		return "False Positive"
	}
	return "Open"
}

// ParseStatus ignores case and spaces, so "in progress" and "InProgress"
// are the same.
func ParseStatus(s string) (Status, error) {
	switch strings.ReplaceAll(strings.ToLower(s), " ", "") {
	case "open":
		return StatusOpen, nil
	case "inprogress":
		return StatusInProgress, nil
	case "resolved":
		return StatusResolved, nil
	case "falsepositive":
		return StatusFalsePositive, nil
	}
	return 0, fmt.Errorf("unknown status: %q", s)
}

// Validate checks the fields a report relies on.
func (f Finding) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return errors.New("title is required")
	}
	if pogreport.ParseSeverity(f.Severity) == pogreport.SeverityUnknown {
		return fmt.Errorf("unknown severity: %q", f.Severity)
	}
	if f.Date != "" {
		if _, err := time.Parse(DateLayout, f.Date); err != nil {
			return fmt.Errorf("date %q is not YYYY/MM/DD", f.Date)
		}
	}
	if f.Status != "" {
		if _, err := ParseStatus(f.Status); err != nil {
			return err
		}
	}
	return nil
}

// Normalize rewrites severity and status in their canonical spelling. The
// finding must already be valid.
func (f *Finding) Normalize() {
	f.Severity = pogreport.ParseSeverity(f.Severity).String()
	st, _ := ParseStatus(f.Status)
	f.Status = st.String()
}

// Load decodes a YAML list of findings, validating and normalizing each.
func Load(r io.Reader) ([]Finding, error) {
	var out []Finding
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode findings: %w", err)
	}
	for i := range out {
		if err := out[i].Validate(); err != nil {
			return nil, fmt.Errorf("finding %d: %w", i+1, err)
		}
		out[i].Normalize()
	}
	return out, nil
}

func LoadFile(path string) ([]Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Filter keeps findings for asset (any asset when empty, case ignored) dated within
// [from, to]. Empty bounds are open. Dates compare as YYYY/MM/DD strings,
// so a bound may also be a prefix such as "2026/01".
func Filter(fs []Finding, asset, from, to string) []Finding {
	var out []Finding
	for _, f := range fs {
		if asset != "" && !strings.EqualFold(f.Asset, asset) {
			continue
		}
		if from != "" && f.Date < from {
			continue
		}
		if to != "" && f.Date > to {
			continue
		}
		out = append(out, f)
	}
	return out
}

// SortBySeverity orders findings from Critical to Info, keeping the input
// order within a severity.
func SortBySeverity(fs []Finding) {
	sort.SliceStable(fs, func(i, j int) bool {
		return pogreport.ParseSeverity(fs[i].Severity) < pogreport.ParseSeverity(fs[j].Severity)
	})
}
