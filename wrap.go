package pogreport

import (
	"strings"
	"unicode/utf8"
)

// Word is anything the wrapper can lay out: it only needs a length in
// characters.
type Word interface {
	Len() int
}

// StyledWord is the unit of wrapping for painted text.
type StyledWord struct {
	Text  string
	Style Style
	URL   string
}

func (w StyledWord) Len() int { return utf8.RuneCountInString(w.Text) }

// PlainWord is the unstyled counterpart used by the layout dry run.
type PlainWord string

func (w PlainWord) Len() int { return utf8.RuneCountInString(string(w)) }

// SpansToStyledWords splits spans on whitespace. A code span always yields a
// single word, even when it contains spaces.
func SpansToStyledWords(spans []MdSpan) []StyledWord {
	var words []StyledWord
	for _, s := range spans {
		if s.Style == StyleCode {
			words = append(words, StyledWord{Text: s.Text, Style: s.Style})
			continue
		}
		for _, f := range strings.Fields(s.Text) {
			words = append(words, StyledWord{Text: f, Style: s.Style, URL: s.URL})
		}
	}
	return words
}

// PlainWords strips style from words while keeping their boundaries, so a
// wrap over the result breaks at exactly the same places.
func PlainWords(words []StyledWord) []PlainWord {
	out := make([]PlainWord, len(words))
	for i, w := range words {
		out[i] = PlainWord(w.Text)
	}
	return out
}

// WrapWords fills lines greedily. A word joins the current line while the
// line length plus one separating space plus the word stays within maxChars.
// A word longer than maxChars sits alone on its own line.
func WrapWords[W Word](words []W, maxChars int) [][]W {
	var lines [][]W
	var line []W
	length := 0
	for _, w := range words {
		n := w.Len()
		if len(line) > 0 && length+1+n > maxChars {
			lines = append(lines, line)
			line, length = nil, 0
		}
		if len(line) > 0 {
			length++
		}
		line = append(line, w)
		length += n
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// LineLen is the rendered character length of a line: the words plus one
// space between each pair.
func LineLen[W Word](line []W) int {
	if len(line) == 0 {
		return 0
	}
	n := len(line) - 1
	for _, w := range line {
		n += w.Len()
	}
	return n
}
