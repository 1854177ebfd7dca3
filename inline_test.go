package pogreport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func plain(s string) MdSpan { return MdSpan{Style: StylePlain, Text: s} }

func TestParseInlineSpans(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []MdSpan
	}{
		{"plain", "just text", []MdSpan{plain("just text")}},
		{"bold", "a **b** c", []MdSpan{plain("a "), {Style: StyleBold, Text: "b"}, plain(" c")}},
		{"italic", "*it*", []MdSpan{{Style: StyleItalic, Text: "it"}}},
		{"bold italic", "***both***", []MdSpan{{Style: StyleBoldItalic, Text: "both"}}},
		{"code keeps spaces", "run `go test ./...` now", []MdSpan{plain("run "), {Style: StyleCode, Text: "go test ./..."}, plain(" now")}},
		{"link", "see [docs](https://example.com).", []MdSpan{
			plain("see "), {Style: StyleLink, Text: "docs", URL: "https://example.com"}, plain("."),
		}},
		{"code wins over emphasis inside", "`**x**`", []MdSpan{{Style: StyleCode, Text: "**x**"}}},
		{"mixed", "**B** and *I* and `C`", []MdSpan{
			{Style: StyleBold, Text: "B"}, plain(" and "), {Style: StyleItalic, Text: "I"}, plain(" and "), {Style: StyleCode, Text: "C"},
		}},
		{"unmatched bold", "a ** b", []MdSpan{plain("a ** b")}},
		{"empty bold", "****", []MdSpan{plain("****")}},
		{"empty code", "``", []MdSpan{plain("``")}},
		{"unterminated code", "`open", []MdSpan{plain("`open")}},
		{"bracket without url", "[not a link] here", []MdSpan{plain("[not a link] here")}},
		{"empty link text", "[](x)", []MdSpan{plain("[](x)")}},
		{"utf8", "café **naïve**", []MdSpan{plain("café "), {Style: StyleBold, Text: "naïve"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInlineSpans(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseInlineSpans(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestSpansToPlainStripsMarkup(t *testing.T) {
	tests := []struct{ in, want string }{
		{"**bold** text", "bold text"},
		{"*a* **b** ***c***", "a b c"},
		{"call `f()` via [api](http://x)", "call f() via api"},
		{"nothing special", "nothing special"},
	}
	for _, tt := range tests {
		if got := SpansToPlain(ParseInlineSpans(tt.in)); got != tt.want {
			t.Errorf("SpansToPlain(ParseInlineSpans(%q)) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseInlineSpansNeverCapturesEmptyBodies(t *testing.T) {
	for _, in := range []string{"``", "****", "**", "******", "a `` b", "x ** y ** z"} {
		for _, s := range ParseInlineSpans(in) {
			if s.Style != StylePlain && s.Text == "" {
				t.Fatalf("ParseInlineSpans(%q) produced empty %s span", in, s.Style)
			}
		}
	}
	if got := ParseInlineSpans("``"); len(got) != 1 || got[0].Style != StylePlain {
		t.Fatalf("expected a single plain span for empty code, got %v", got)
	}
}
