package pogreport

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSpansToStyledWordsKeepsCodeAtomic(t *testing.T) {
	spans := ParseInlineSpans("Use `go test ./...` with **extra care** and [the docs](http://d)")
	got := SpansToStyledWords(spans)
	want := []StyledWord{
		{Text: "Use"},
		{Text: "go test ./...", Style: StyleCode},
		{Text: "with"},
		{Text: "extra", Style: StyleBold},
		{Text: "care", Style: StyleBold},
		{Text: "and"},
		{Text: "the", Style: StyleLink, URL: "http://d"},
		{Text: "docs", Style: StyleLink, URL: "http://d"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapWordsGreedy(t *testing.T) {
	words := PlainWords(SpansToStyledWords([]MdSpan{plain("aa bb cc dd")}))
	got := WrapWords(words, 5)
	want := [][]PlainWord{{"aa", "bb"}, {"cc", "dd"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapWordsBound(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog while an extraordinarilylongwordthatcannotfit sits alone " +
		strings.Repeat("lorem ipsum dolor sit amet ", 12)
	words := PlainWords(SpansToStyledWords([]MdSpan{plain(text)}))
	for _, limit := range []int{1, 8, 20, 33, 80} {
		lines := WrapWords(words, limit)
		total := 0
		for _, ln := range lines {
			total += len(ln)
			if n := LineLen(ln); n > limit && len(ln) != 1 {
				t.Fatalf("limit %d: line %v has length %d", limit, ln, n)
			}
		}
		if total != len(words) {
			t.Fatalf("limit %d: wrapped %d words, want %d", limit, total, len(words))
		}
	}
}

func TestWrapWordsLongWordOverflowsAlone(t *testing.T) {
	words := []PlainWord{"a", "abcdefghij", "b"}
	got := WrapWords(words, 4)
	want := [][]PlainWord{{"a"}, {"abcdefghij"}, {"b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPlainAndStyledWrapAgree(t *testing.T) {
	spans := ParseInlineSpans("Some *emphasis*, a `code span with spaces`, **bold words**, and [a link](http://x) to wrap around")
	styled := SpansToStyledWords(spans)
	for width := 1; width < 60; width++ {
		s := WrapWords(styled, width)
		p := WrapWords(PlainWords(styled), width)
		if len(s) != len(p) {
			t.Fatalf("width %d: styled %d lines, plain %d lines", width, len(s), len(p))
		}
		for i := range s {
			if len(s[i]) != len(p[i]) {
				t.Fatalf("width %d line %d: styled %d words, plain %d", width, i, len(s[i]), len(p[i]))
			}
		}
	}
}

func TestWrapWordsEmpty(t *testing.T) {
	if got := WrapWords([]PlainWord(nil), 10); len(got) != 0 {
		t.Fatalf("expected no lines, got %v", got)
	}
}
