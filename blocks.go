package pogreport

import (
	"math"
	"strconv"
	"strings"
)

// BlockKind identifies the kind of a Block.
type BlockKind int

const (
	BlockTitle BlockKind = iota
	BlockSubtitle
	BlockSection
	BlockFinding
	BlockMeta
	BlockTable
	BlockText
	BlockIndex
	BlockSpacer
	BlockPageBreak
	BlockHRule
)

var blockKindNames = [...]string{
	BlockTitle:     "title",
	BlockSubtitle:  "subtitle",
	BlockSection:   "section",
	BlockFinding:   "finding",
	BlockMeta:      "meta",
	BlockTable:     "table",
	BlockText:      "text",
	BlockIndex:     "index",
	BlockSpacer:    "spacer",
	BlockPageBreak: "pagebreak",
	BlockHRule:     "hr",
}

func (k BlockKind) String() string {
	if int(k) >= 0 && int(k) < len(blockKindNames) {
		return blockKindNames[k]
	}
	return "unknown"
}

// Block is one semantic unit of report content. Which fields are set depends
// on Kind:
//
//	Title, Subtitle, Section, Text: Text
//	Finding: Severity, Text (the heading)
//	Meta: Key, Value
//	Table: Rows, the first row being the header
//	Spacer: MM
type Block struct {
	Kind     BlockKind
	Text     string
	Severity string
	Key      string
	Value    string
	Rows     [][]string
	MM       float64
}

// ParseBlocks turns rendered template output into blocks. It never fails:
// malformed directives are dropped and anything else becomes text.
func ParseBlocks(text string) []Block {
	p := &blockParser{}
	for _, line := range strings.Split(text, "\n") {
		p.line(line)
	}
	p.flushText()
	p.flushTable()
	return p.out
}

type blockParser struct {
	out    []Block
	rows   [][]string
	text   []string
	fence  string // marker of the open code fence, "" when none
}

func (p *blockParser) flushText() {
	start, end := 0, len(p.text)
	for start < end && strings.TrimSpace(p.text[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(p.text[end-1]) == "" {
		end--
	}
	if start < end {
		p.out = append(p.out, Block{Kind: BlockText, Text: strings.Join(p.text[start:end], "\n")})
	}
	p.text = p.text[:0]
	p.fence = ""
}

func (p *blockParser) flushTable() {
	if len(p.rows) > 0 {
		p.out = append(p.out, Block{Kind: BlockTable, Rows: p.rows})
		p.rows = nil
	}
}

func (p *blockParser) line(raw string) {
	raw = strings.TrimRight(raw, " \t\r")
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "#!") {
		p.flushText()
		p.directive(strings.TrimSpace(trimmed[2:]))
		return
	}
	// Blank lines and pipes inside an open code fence belong to the text.
	if p.fence != "" {
		p.text = append(p.text, raw)
		if strings.HasPrefix(trimmed, p.fence) {
			p.fence = ""
		}
		return
	}

	switch {
	case trimmed == "":
		p.flushText()
	case strings.Contains(trimmed, "|") && !strings.HasPrefix(trimmed, "-"):
		p.flushText()
		if cells := splitRow(trimmed); cells != nil {
			p.rows = append(p.rows, cells)
		}
	default:
		p.flushTable()
		p.text = append(p.text, raw)
		p.fence = fenceMarker(trimmed)
	}
}

// splitRow splits a pipe-delimited row into trimmed cells. One leading and
// one trailing outer pipe are ignored. Rows without any content yield nil.
func splitRow(trimmed string) []string {
	inner := strings.TrimPrefix(trimmed, "|")
	inner = strings.TrimSuffix(inner, "|")
	cells := strings.Split(inner, "|")
	empty := true
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
		if cells[i] != "" {
			empty = false
		}
	}
	if empty {
		return nil
	}
	return cells
}

func (p *blockParser) directive(rest string) {
	keyword, arg, _ := strings.Cut(rest, " ")
	arg = strings.TrimSpace(arg)

	// Every recognized keyword other than the no-ops closes a pending table.
	switch keyword {
	case "comment", "image":
		return
	case "title", "subtitle", "section", "finding", "meta", "table",
		"index", "spacer", "pagebreak", "hr":
		p.flushTable()
	default:
		return
	}

	switch keyword {
	case "title":
		if arg != "" {
			p.out = append(p.out, Block{Kind: BlockTitle, Text: arg})
		}
	case "subtitle":
		if arg != "" {
			p.out = append(p.out, Block{Kind: BlockSubtitle, Text: arg})
		}
	case "section":
		if arg != "" {
			p.out = append(p.out, Block{Kind: BlockSection, Text: arg})
		}
	case "finding":
		sev, heading, ok := strings.Cut(arg, " ")
		heading = strings.TrimSpace(heading)
		if ok && sev != "" && heading != "" {
			p.out = append(p.out, Block{Kind: BlockFinding, Severity: sev, Text: heading})
		}
	case "meta":
		if key, value, ok := strings.Cut(arg, ":"); ok {
			p.out = append(p.out, Block{Kind: BlockMeta, Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)})
		}
	case "index":
		if arg == "" {
			p.out = append(p.out, Block{Kind: BlockIndex})
		}
	case "spacer":
		mm, err := strconv.ParseFloat(arg, 64)
		if err == nil && mm >= 0 && !math.IsInf(mm, 0) && !math.IsNaN(mm) {
			p.out = append(p.out, Block{Kind: BlockSpacer, MM: mm})
		}
	case "pagebreak":
		if arg == "" {
			p.out = append(p.out, Block{Kind: BlockPageBreak})
		}
	case "hr":
		if arg == "" {
			p.out = append(p.out, Block{Kind: BlockHRule})
		}
	}
}
