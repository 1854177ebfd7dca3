package findings

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/arran4/pogreport"
	"github.com/google/go-cmp/cmp"
)

const sample = `
- title: SQL injection in login
  severity: high
  asset: web-01
  date: 2026/03/02
  location: /login
  description: The username parameter is concatenated into a query.
  status: in progress
- title: Default credentials
  severity: CRITICAL
  asset: db-01
  date: 2026/01/15
  description: The admin account uses the vendor password.
- title: Verbose banner
  severity: informational
  asset: WEB-01
  date: 2026/04/30
  status: FalsePositive
`

func TestLoadNormalizes(t *testing.T) {
	got, err := Load(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []Finding{
		{Title: "SQL injection in login", Severity: "High", Asset: "web-01", Date: "2026/03/02", Location: "/login",
			Description: "The username parameter is concatenated into a query.", Status: "In Progress"},
		{Title: "Default credentials", Severity: "Critical", Asset: "db-01", Date: "2026/01/15",
			Description: "The admin account uses the vendor password.", Status: "Open"},
		{Title: "Verbose banner", Severity: "Info", Asset: "WEB-01", Date: "2026/04/30", Status: "False Positive"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"severity", "- {title: a, severity: severe}"},
		{"date", "- {title: a, severity: low, date: 2026-01-02}"},
		{"status", "- {title: a, severity: low, status: closed}"},
		{"title", "- {severity: low}"},
		{"yaml", "- [unterminated"},
	}
	for _, tt := range tests {
		if _, err := Load(strings.NewReader(tt.in)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestLoadEmpty(t *testing.T) {
	got, err := Load(strings.NewReader(""))
	if err != nil || len(got) != 0 {
		t.Fatalf("Load empty = %v, %v", got, err)
	}
}

func TestParseStatus(t *testing.T) {
	for in, want := range map[string]Status{
		"Open":           StatusOpen,
		"in progress":    StatusInProgress,
		"InProgress":     StatusInProgress,
		"RESOLVED":       StatusResolved,
		"false positive": StatusFalsePositive,
	} {
		got, err := ParseStatus(in)
		if err != nil || got != want {
			t.Errorf("ParseStatus(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}

func TestFilter(t *testing.T) {
	fs, err := Load(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	titles := func(fs []Finding) []string {
		var out []string
		for _, f := range fs {
			out = append(out, f.Title)
		}
		return out
	}
	tests := []struct {
		asset, from, to string
		want            []string
	}{
		{"", "", "", []string{"SQL injection in login", "Default credentials", "Verbose banner"}},
		{"web-01", "", "", []string{"SQL injection in login", "Verbose banner"}},
		{"", "2026/03/02", "", []string{"SQL injection in login", "Verbose banner"}},
		{"", "", "2026/03/02", []string{"SQL injection in login", "Default credentials"}},
		{"web-01", "2026/01/01", "2026/03/31", []string{"SQL injection in login"}},
		{"nope", "", "", nil},
	}
	for _, tt := range tests {
		got := titles(Filter(fs, tt.asset, tt.from, tt.to))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Filter(%q, %q, %q) (-want +got):\n%s", tt.asset, tt.from, tt.to, diff)
		}
	}
}

func TestSortBySeverityIsStable(t *testing.T) {
	fs := []Finding{
		{Title: "a", Severity: "Low"},
		{Title: "b", Severity: "Critical"},
		{Title: "c", Severity: "Low"},
		{Title: "d", Severity: "High"},
		{Title: "e", Severity: "Critical"},
	}
	SortBySeverity(fs)
	var got string
	for _, f := range fs {
		got += f.Title
	}
	if got != "bedac" {
		t.Fatalf("order = %q, want bedac", got)
	}
}

func TestNewContextCounts(t *testing.T) {
	fs, err := Load(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	ctx := NewContext(fs, "web-01", "2026/01/01", "", time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	if ctx.Date != "2026/05/01" || ctx.Total != 3 {
		t.Fatalf("Date=%q Total=%d", ctx.Date, ctx.Total)
	}
	if ctx.Critical != 1 || ctx.High != 1 || ctx.Medium != 0 || ctx.Low != 0 || ctx.Info != 1 {
		t.Fatalf("counts = %+v", ctx)
	}
	for i, it := range ctx.Findings {
		if it.Num != i+1 {
			t.Errorf("finding %d numbered %d", i, it.Num)
		}
	}
}

func TestRenderDefaultTemplate(t *testing.T) {
	fs, err := Load(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	ctx := NewContext(fs, "web-01", "", "", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	out, err := Render(DefaultTemplate, ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var sections, findings []string
	for _, b := range pogreport.ParseBlocks(out) {
		switch b.Kind {
		case pogreport.BlockSection:
			sections = append(sections, b.Text)
		case pogreport.BlockFinding:
			findings = append(findings, b.Severity+" "+b.Text)
		}
	}
	if diff := cmp.Diff([]string{"Executive Summary", "Findings"}, sections); diff != "" {
		t.Errorf("sections (-want +got):\n%s", diff)
	}
	want := []string{"High 1. SQL injection in login", "Critical 2. Default credentials", "Info 3. Verbose banner"}
	if diff := cmp.Diff(want, findings); diff != "" {
		t.Errorf("findings (-want +got):\n%s", diff)
	}
	if !strings.Contains(out, "#! subtitle web-01") {
		t.Errorf("missing subtitle in:\n%s", out)
	}
}

func TestRenderErrorsAreTemplateStage(t *testing.T) {
	for _, tmpl := range []string{"{{.Nope}}", "{{if}}"} {
		_, err := Render(tmpl, Context{})
		var se *pogreport.StageError
		if !errors.As(err, &se) || se.Stage != pogreport.StageTemplate {
			t.Errorf("Render(%q) err = %v, want template stage", tmpl, err)
		}
	}
}
