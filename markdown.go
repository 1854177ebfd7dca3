package pogreport

import "strings"

// MdKind identifies a block-level markdown element.
type MdKind int

const (
	MdParagraph MdKind = iota
	MdHeading
	MdBullet
	MdCode
)

// MdBlock is one block-level markdown element. Level is 1..3 for headings,
// Lines holds the literal rows of a fenced code block.
type MdBlock struct {
	Kind  MdKind
	Level int
	Spans []MdSpan
	Lines []string
}

// fenceMarker reports the fence a trimmed line opens or closes, if any.
func fenceMarker(trimmed string) string {
	switch {
	case strings.HasPrefix(trimmed, "```"):
		return "```"
	case strings.HasPrefix(trimmed, "~~~"):
		return "~~~"
	}
	return ""
}

// ParseMarkdown groups lines into paragraphs, headings, bullet items and
// fenced code blocks. Fences left open at the end of the input are dropped.
func ParseMarkdown(text string) []MdBlock {
	var out []MdBlock
	var para []string
	var code []string
	fence := ""

	flushPara := func() {
		if len(para) > 0 {
			out = append(out, MdBlock{Kind: MdParagraph, Spans: ParseInlineSpans(strings.Join(para, " "))})
			para = para[:0]
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		trimmed := strings.TrimSpace(line)

		if fence != "" {
			if strings.HasPrefix(trimmed, fence) {
				out = append(out, MdBlock{Kind: MdCode, Lines: code})
				code = nil
				fence = ""
				continue
			}
			code = append(code, line)
			continue
		}
		if m := fenceMarker(trimmed); m != "" {
			flushPara()
			fence = m
			code = []string{}
			continue
		}

		if trimmed == "" {
			flushPara()
			continue
		}
		if level, rest, ok := headingPrefix(trimmed); ok {
			flushPara()
			out = append(out, MdBlock{Kind: MdHeading, Level: level, Spans: ParseInlineSpans(rest)})
			continue
		}
		if rest, ok := bulletPrefix(trimmed); ok {
			flushPara()
			out = append(out, MdBlock{Kind: MdBullet, Spans: ParseInlineSpans(rest)})
			continue
		}
		para = append(para, trimmed)
	}
	flushPara()
	return out
}

func headingPrefix(trimmed string) (int, string, bool) {
	for level := 3; level >= 1; level-- {
		prefix := strings.Repeat("#", level) + " "
		if strings.HasPrefix(trimmed, prefix) {
			return level, strings.TrimSpace(trimmed[len(prefix):]), true
		}
	}
	return 0, "", false
}

func bulletPrefix(trimmed string) (string, bool) {
	for _, prefix := range []string{"- ", "* "} {
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSpace(trimmed[len(prefix):]), true
		}
	}
	return "", false
}
