package pogreport

type fragKind int

const (
	// fragFlow is placed at the current y after ensuring need fits.
	fragFlow fragKind = iota
	// fragAnchor jumps to the absolute y in at, then behaves like fragFlow.
	fragAnchor
	// fragGap only advances y. It never breaks and does not mark the
	// page as used.
	fragGap
)

// fragment is the smallest unit the flow positions. A block plans into one
// or more fragments; paragraphs and tables plan one per line so they can
// split across pages.
type fragment struct {
	kind   fragKind
	need   float64
	height float64
	at     float64
	// entry marks the fragment whose page is the block's TOC page.
	entry bool
	paint func(c *Cursor, y float64)
}

func flowFrag(need, height float64, paint func(*Cursor, float64)) fragment {
	return fragment{kind: fragFlow, need: need, height: height, paint: paint}
}

// wrapFunc breaks styled words into lines. The dry run only needs the count
// and returns nil lines.
type wrapFunc func(words []StyledWord, maxChars int) (int, [][]StyledWord)

func plainWrap(words []StyledWord, maxChars int) (int, [][]StyledWord) {
	return len(WrapWords(PlainWords(words), maxChars)), nil
}

func styledWrap(words []StyledWord, maxChars int) (int, [][]StyledWord) {
	lines := WrapWords(words, maxChars)
	return len(lines), lines
}

// planner turns blocks into fragments. It is the only place per-block
// heights are computed.
type planner struct {
	m    Metrics
	wrap wrapFunc
	toc  []TocEntry
	dry  bool
}

func (p *planner) painter(fn func(*Cursor, float64)) func(*Cursor, float64) {
	if p.dry {
		return nil
	}
	return fn
}

// textLines wraps plain text (no markup) that must be laid out identically
// in both passes.
func textLines(s string, width float64, f FontStyle, pt float64) []string {
	words := SpansToStyledWords([]MdSpan{{Text: s}})
	lines := WrapWords(PlainWords(words), maxChars(width, f, pt))
	out := make([]string, len(lines))
	for i, ln := range lines {
		for j, w := range ln {
			if j > 0 {
				out[i] += " "
			}
			out[i] += string(w)
		}
	}
	return out
}

func (p *planner) plan(b Block) []fragment {
	switch b.Kind {
	case BlockTitle:
		lines := textLines(b.Text, p.m.ContentWidth(), FontBold, titlePt)
		h := titleBar + float64(len(lines))*titleLine + titleGap
		return []fragment{{
			kind: fragAnchor, at: titleAnchor, need: h, height: h,
			paint: p.painter(func(c *Cursor, y float64) { c.paintTitle(lines, y) }),
		}}
	case BlockSubtitle:
		lines := textLines(b.Text, p.m.ContentWidth(), FontRegular, subtitlePt)
		h := float64(len(lines))*subtitleLine + subtitleGap
		return []fragment{flowFrag(h, h, p.painter(func(c *Cursor, y float64) { c.paintSubtitle(lines, y) }))}
	case BlockSection:
		fr := flowFrag(sectionHeight+sectionKeep, sectionHeight, p.painter(func(c *Cursor, y float64) { c.paintSection(b.Text, y) }))
		fr.entry = true
		return []fragment{fr}
	case BlockFinding:
		lines := textLines(b.Text, p.m.ContentWidth()-12, FontBold, findingPt)
		h := findingBase + float64(len(lines))*findingLine
		fr := flowFrag(h, h, p.painter(func(c *Cursor, y float64) { c.paintFinding(b.Severity, lines, h, y) }))
		fr.entry = true
		return []fragment{fr}
	case BlockMeta:
		return []fragment{flowFrag(metaHeight, metaHeight, p.painter(func(c *Cursor, y float64) { c.paintMeta(b.Key, b.Value, y) }))}
	case BlockTable:
		return p.planTable(b.Rows)
	case BlockText:
		return p.planText(b.Text)
	case BlockIndex:
		return p.planIndex()
	case BlockSpacer:
		return []fragment{{kind: fragGap, height: b.MM}}
	case BlockHRule:
		return []fragment{flowFrag(hruleHeight, hruleHeight, p.painter(func(c *Cursor, y float64) { c.paintRule(y) }))}
	}
	return nil
}

func (p *planner) planTable(rows [][]string) []fragment {
	if len(rows) == 0 {
		return nil
	}
	cols := len(rows[0])
	header := rows[0]
	frs := []fragment{flowFrag(tableHeader+tableRow, tableHeader, p.painter(func(c *Cursor, y float64) {
		c.paintTableRow(header, cols, 0, y)
	}))}
	for i, row := range rows[1:] {
		i, row := i+1, row
		h := tableRow
		if i == len(rows)-1 {
			h += tableGap
		}
		frs = append(frs, flowFrag(tableRow, h, p.painter(func(c *Cursor, y float64) {
			c.paintTableRow(row, cols, i, y)
		})))
	}
	if len(rows) == 1 {
		frs = append(frs, fragment{kind: fragGap, height: tableGap})
	}
	return frs
}

func (p *planner) planText(text string) []fragment {
	var frs []fragment
	width := p.m.ContentWidth()
	for _, md := range ParseMarkdown(text) {
		switch md.Kind {
		case MdParagraph, MdBullet:
			indent := 0.0
			if md.Kind == MdBullet {
				indent = bulletIndent
			}
			n, lines := p.wrap(SpansToStyledWords(md.Spans), maxChars(width-indent, FontRegular, bodyPt))
			bullet := md.Kind == MdBullet
			for i := 0; i < n; i++ {
				i := i
				h := bodyLine
				if i == n-1 {
					h += paraGap
				}
				frs = append(frs, flowFrag(bodyLine, h, p.painter(func(c *Cursor, y float64) {
					if bullet && i == 0 {
						c.paintBullet(y)
					}
					c.paintWords(lines[i], p.m.Left+indent, y, bodyPt, bodyLine)
				})))
			}
		case MdHeading:
			pt, lh := headingPt[md.Level], headingLine[md.Level]
			n, lines := p.wrap(SpansToStyledWords(md.Spans), maxChars(width, FontBold, pt))
			h := headingGap + float64(n)*lh + 1.5
			frs = append(frs, flowFrag(h+bodyLine, h, p.painter(func(c *Cursor, y float64) {
				for i, ln := range lines {
					c.paintHeadingWords(ln, p.m.Left, y+headingGap+float64(i)*lh, pt, lh)
				}
			})))
		case MdCode:
			lines := md.Lines
			if len(lines) == 0 {
				lines = []string{""}
			}
			last := len(lines) - 1
			for i, ln := range lines {
				i, ln := i, ln
				top, bottom := 0.0, 0.0
				if i == 0 {
					top = codePad
				}
				if i == last {
					bottom = codePad
				}
				band := top + codeLine + bottom
				h := band
				if i == last {
					h += codeGap
				}
				frs = append(frs, flowFrag(band, h, p.painter(func(c *Cursor, y float64) {
					c.paintCodeLine(ln, y, band, top)
				})))
			}
		}
	}
	return frs
}

// planIndex lays out the contents table. In the dry run the real entries do
// not exist yet, so placeholders built from the block list stand in; row
// heights depend only on the entry kind.
func (p *planner) planIndex() []fragment {
	frs := []fragment{flowFrag(indexTitle+indexSectionRow, indexTitle, p.painter(func(c *Cursor, y float64) {
		c.paintIndexTitle(y)
	}))}
	for i, e := range p.toc {
		e := e
		h := indexFindingRow
		if e.IsSection {
			h = indexSectionRow
		}
		need := h
		if i == len(p.toc)-1 {
			h += indexGap
		}
		frs = append(frs, flowFrag(need, h, p.painter(func(c *Cursor, y float64) { c.paintIndexRow(e, y) })))
	}
	if len(p.toc) == 0 {
		frs = append(frs, fragment{kind: fragGap, height: indexGap})
	}
	return frs
}

// placeholderTOC returns one unnumbered entry per Section and Finding block.
func placeholderTOC(blocks []Block) []TocEntry {
	var out []TocEntry
	for _, b := range blocks {
		switch b.Kind {
		case BlockSection:
			out = append(out, TocEntry{IsSection: true, Label: b.Text})
		case BlockFinding:
			out = append(out, TocEntry{Label: b.Text, Severity: b.Severity})
		}
	}
	return out
}

// walk runs every block through the flow, calling place with each
// fragment once its position is settled.
func walk(blocks []Block, p *planner, fl *flow, place func(b Block, fr fragment, y float64)) {
	for _, b := range blocks {
		fl.begin(b)
		for _, fr := range p.plan(b) {
			y := fl.place(fr)
			place(b, fr, y)
		}
	}
}
