package findings

import (
	_ "embed"
	"strings"
	"text/template"
	"time"

	"github.com/arran4/pogreport"
)

// DefaultTemplate renders a cover page, contents, a severity summary and one
// card per finding.
//
//go:embed default.tmpl
var DefaultTemplate string

// Item is a finding as the template sees it.
type Item struct {
	Num int
	Finding
}

// Context is the data a report template executes against.
type Context struct {
	Findings []Item
	Date     string
	Asset    string
	From     string
	To       string

	Total    int
	Critical int
	High     int
	Medium   int
	Low      int
	Info     int
}

// NewContext numbers the findings from 1 and counts them by severity. now
// supplies the report date.
func NewContext(fs []Finding, asset, from, to string, now time.Time) Context {
	ctx := Context{
		Date:  now.Format(DateLayout),
		Asset: asset,
		From:  from,
		To:    to,
		Total: len(fs),
	}
	for i, f := range fs {
		ctx.Findings = append(ctx.Findings, Item{Num: i + 1, Finding: f})
		switch pogreport.ParseSeverity(f.Severity) {
		case pogreport.SeverityCritical:
			ctx.Critical++
		case pogreport.SeverityHigh:
			ctx.High++
		case pogreport.SeverityMedium:
			ctx.Medium++
		case pogreport.SeverityLow:
			ctx.Low++
		case pogreport.SeverityInfo:
			ctx.Info++
		}
	}
	return ctx
}

var funcs = template.FuncMap{
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"trim":  strings.TrimSpace,
	// oneline keeps a value on a single directive line.
	"oneline": func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	},
}

// Render executes tmpl against ctx and returns the directive text. Missing
// keys are errors rather than "<no value>".
func Render(tmpl string, ctx Context) (string, error) {
	t, err := template.New("report").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", &pogreport.StageError{Stage: pogreport.StageTemplate, Err: err}
	}
	var sb strings.Builder
	if err := t.Execute(&sb, ctx); err != nil {
		return "", &pogreport.StageError{Stage: pogreport.StageTemplate, Err: err}
	}
	return sb.String(), nil
}
