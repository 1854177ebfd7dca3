// Package lint reports report text the renderer will not draw the way an
// author probably expects: markdown it has no painter for, and table rows it
// silently pads or truncates.
package lint

import (
	"fmt"

	"github.com/arran4/pogreport"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extensionAST "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Warning points at one block of the parsed input.
type Warning struct {
	Block   int    `json:"block"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("block %d: %s: %s", w.Block, w.Kind, w.Message)
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Check inspects blocks in order. Text blocks are parsed as GFM; tables are
// checked for rows whose width differs from the header.
func Check(blocks []pogreport.Block) []Warning {
	var out []Warning
	for i, b := range blocks {
		switch b.Kind {
		case pogreport.BlockText:
			out = append(out, checkText(i, b.Text)...)
		case pogreport.BlockTable:
			out = append(out, checkTable(i, b.Rows)...)
		}
	}
	return out
}

func checkTable(idx int, rows [][]string) []Warning {
	if len(rows) == 0 {
		return nil
	}
	var out []Warning
	cols := len(rows[0])
	for r, row := range rows[1:] {
		switch {
		case len(row) > cols:
			out = append(out, Warning{Block: idx, Kind: "ragged-row",
				Message: fmt.Sprintf("row %d has %d cells, header has %d; extra cells are dropped", r+1, len(row), cols)})
		case len(row) < cols:
			out = append(out, Warning{Block: idx, Kind: "ragged-row",
				Message: fmt.Sprintf("row %d has %d cells, header has %d; missing cells are blank", r+1, len(row), cols)})
		}
	}
	return out
}

func checkText(idx int, src string) []Warning {
	var out []Warning
	add := func(kind, msg string) {
		out = append(out, Warning{Block: idx, Kind: kind, Message: msg})
	}
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))
	// The walker never returns an error.
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch nd := n.(type) {
		case *ast.Heading:
			if nd.Level > 3 {
				add("heading-level", fmt.Sprintf("level %d heading is drawn as a paragraph", nd.Level))
			}
		case *ast.List:
			if nd.IsOrdered() {
				add("ordered-list", "ordered list items are drawn as plain paragraphs")
				return ast.WalkSkipChildren, nil
			}
			if nd.Marker == '+' {
				add("bullet-marker", "only '-' and '*' start bullets")
			}
		case *ast.Blockquote:
			add("blockquote", "block quotes are drawn as plain text")
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			add("indented-code", "indented code is wrapped as a paragraph; use a fence")
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML:
			add("html", "raw HTML is drawn as text")
		case *ast.ThematicBreak:
			add("thematic-break", "use the hr directive for rules")
		case *ast.Image:
			add("image", "inline images are not rendered")
			return ast.WalkSkipChildren, nil
		case *extensionAST.Table:
			add("table", "markdown tables are not rendered; use the table directive")
			return ast.WalkSkipChildren, nil
		case *extensionAST.Strikethrough:
			add("strikethrough", "strikethrough is drawn as plain text")
		}
		return ast.WalkContinue, nil
	})
	return out
}
