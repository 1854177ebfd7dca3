package pogreport

import "strings"

// Style is the inline style of a run of text.
type Style int

const (
	StylePlain Style = iota
	StyleBold
	StyleItalic
	StyleBoldItalic
	StyleCode
	StyleLink
)

func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleBoldItalic:
		return "bold-italic"
	case StyleCode:
		return "code"
	case StyleLink:
		return "link"
	}
	return "unknown"
}

// MdSpan is one styled inline run. URL is only set for StyleLink, where Text
// holds the display text.
type MdSpan struct {
	Style Style
	Text  string
	URL   string
}

// ParseInlineSpans splits a single line into styled runs. Matches are tried
// left to right at every position in the order link, code, ***, **, *.
// Delimiters without a non-empty closing match are kept as plain text.
func ParseInlineSpans(line string) []MdSpan {
	var spans []MdSpan
	var plain strings.Builder

	flushPlain := func() {
		if plain.Len() > 0 {
			spans = append(spans, MdSpan{Style: StylePlain, Text: plain.String()})
			plain.Reset()
		}
	}
	emit := func(s MdSpan) {
		flushPlain()
		spans = append(spans, s)
	}

	i := 0
	for i < len(line) {
		switch line[i] {
		case '[':
			if display, url, end, ok := matchLink(line, i); ok {
				emit(MdSpan{Style: StyleLink, Text: display, URL: url})
				i = end
				continue
			}
		case '`':
			if body, end, ok := matchClosing(line, i+1, "`"); ok {
				emit(MdSpan{Style: StyleCode, Text: body})
				i = end
				continue
			}
		case '*':
			if strings.HasPrefix(line[i:], "***") {
				if body, end, ok := matchClosing(line, i+3, "***"); ok {
					emit(MdSpan{Style: StyleBoldItalic, Text: body})
					i = end
					continue
				}
			}
			if strings.HasPrefix(line[i:], "**") {
				if body, end, ok := matchClosing(line, i+2, "**"); ok {
					emit(MdSpan{Style: StyleBold, Text: body})
					i = end
					continue
				}
			}
			if body, end, ok := matchClosing(line, i+1, "*"); ok {
				emit(MdSpan{Style: StyleItalic, Text: body})
				i = end
				continue
			}
		}
		plain.WriteByte(line[i])
		i++
	}
	flushPlain()
	return spans
}

// matchClosing finds the first occurrence of marker at or after start. The
// match fails when the marker is missing or the enclosed body is empty.
func matchClosing(line string, start int, marker string) (body string, end int, ok bool) {
	if start > len(line) {
		return "", 0, false
	}
	idx := strings.Index(line[start:], marker)
	if idx <= 0 {
		return "", 0, false
	}
	return line[start : start+idx], start + idx + len(marker), true
}

// matchLink parses [display](url) starting at the '[' at start.
func matchLink(line string, start int) (display, url string, end int, ok bool) {
	closeBracket := strings.IndexByte(line[start+1:], ']')
	if closeBracket <= 0 {
		return "", "", 0, false
	}
	display = line[start+1 : start+1+closeBracket]
	rest := start + 1 + closeBracket + 1
	if rest >= len(line) || line[rest] != '(' {
		return "", "", 0, false
	}
	closeParen := strings.IndexByte(line[rest+1:], ')')
	if closeParen <= 0 {
		return "", "", 0, false
	}
	url = line[rest+1 : rest+1+closeParen]
	return display, url, rest + 1 + closeParen + 1, true
}

// SpansToPlain drops all markup and returns the visible text.
func SpansToPlain(spans []MdSpan) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
