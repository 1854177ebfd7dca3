package pogreport

import (
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Cursor is the paint pass. It owns the page list and the vertical write
// position and turns blocks into surface calls, starting new pages as the
// flow demands.
type Cursor struct {
	s   Surface
	m   Metrics
	th  Theme
	fl  *flow
	log *zap.Logger

	pages   []int
	painted []int
}

// NewCursor creates the first page on s and returns a cursor positioned at
// its top margin.
func NewCursor(s Surface, m Metrics, th Theme, log *zap.Logger) *Cursor {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Cursor{s: s, m: m, th: th, log: log}
	c.fl = newFlow(m, c.addPage)
	s.AddPage()
	c.pages = []int{1}
	return c
}

func (c *Cursor) addPage(n int) {
	c.s.AddPage()
	c.pages = append(c.pages, n)
	c.log.Debug("page added", zap.Int("page", n), zap.Int("findings", c.fl.findings))
}

// Paint renders blocks in order. toc feeds the Index block and must come
// from Simulate over the same blocks.
func (c *Cursor) Paint(blocks []Block, toc []TocEntry) error {
	p := &planner{m: c.m, wrap: styledWrap, toc: toc}
	walk(blocks, p, c.fl, func(b Block, fr fragment, y float64) {
		if fr.paint != nil {
			fr.paint(c, y)
		}
		if fr.entry {
			c.painted = append(c.painted, c.fl.page)
		}
	})
	return c.s.Err()
}

// Pages is the number of pages created so far.
func (c *Cursor) Pages() int { return len(c.pages) }

// PaintedPages lists the page each Section and Finding block was painted
// on, in document order.
func (c *Cursor) PaintedPages() []int { return append([]int(nil), c.painted...) }

func (c *Cursor) right() float64 { return c.m.PageW - c.m.Right }

// fit shortens s with a trailing ellipsis until it fits in width.
func (c *Cursor) fit(s string, f FontStyle, pt, width float64) string {
	if width <= 0 {
		return ""
	}
	if c.s.TextWidth(s, f, pt) <= width {
		return s
	}
	for s != "" {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
		if c.s.TextWidth(s+"...", f, pt) <= width {
			return strings.TrimRight(s, " ") + "..."
		}
	}
	return ""
}

func (c *Cursor) centered(s string, y float64, f FontStyle, pt float64, col color.RGBA) {
	w := c.s.TextWidth(s, f, pt)
	c.s.Text(c.m.Left+(c.m.ContentWidth()-w)/2, y, s, f, pt, col)
}

func (c *Cursor) paintTitle(lines []string, y float64) {
	barW := c.m.ContentWidth() * 0.6
	barX := c.m.Left + (c.m.ContentWidth()-barW)/2
	c.s.FillRect(barX, y, barW, 0.8, c.th.Dark)
	ty := y + titleBar
	for _, ln := range lines {
		ty += titleLine
		c.centered(ln, ty-2.5, FontBold, titlePt, c.th.Dark)
	}
	c.s.FillRect(barX, ty+2, barW, 0.8, c.th.Dark)
}

func (c *Cursor) paintSubtitle(lines []string, y float64) {
	for i, ln := range lines {
		c.centered(ln, y+float64(i+1)*subtitleLine-1.8, FontRegular, subtitlePt, c.th.Gray)
	}
}

func (c *Cursor) paintSection(text string, y float64) {
	c.s.Line(c.m.Left, y+2, c.right(), y+2, 0.2, c.th.Rule)
	c.s.Text(c.m.Left, y+11, c.fit(text, FontBold, sectionPt, c.m.ContentWidth()), FontBold, sectionPt, c.th.Dark)
	c.s.FillRect(c.m.Left, y+13.5, 30, 0.8, c.th.Accent)
}

func (c *Cursor) paintFinding(severity string, lines []string, h, y float64) {
	sev := ParseSeverity(severity).Color()
	cardH := h - 4
	c.s.FillRect(c.m.Left, y, c.m.ContentWidth(), cardH, c.th.CardBG)
	c.s.FillRect(c.m.Left, y, 1.5, cardH, sev)

	label := strings.ToUpper(severity)
	pillW := c.s.TextWidth(label, FontBold, badgePt) + 4
	c.s.FillRect(c.m.Left+6, y+4, pillW, 5.5, sev)
	c.s.Text(c.m.Left+8, y+7.9, label, FontBold, badgePt, c.th.White)

	for i, ln := range lines {
		c.s.Text(c.m.Left+6, y+17.5+float64(i)*findingLine, ln, FontBold, findingPt, c.th.Dark)
	}
	c.s.Line(c.m.Left, y+cardH, c.right(), y+cardH, 0.5, sev)
}

func (c *Cursor) paintMeta(key, value string, y float64) {
	base := y + 4.2
	c.s.Text(c.m.Left+1, base, "•", FontRegular, bodyPt, c.th.Accent)
	k := key + ":"
	x := c.m.Left + 5
	c.s.Text(x, base, k, FontBold, bodyPt, c.th.Gray)
	x += c.s.TextWidth(k, FontBold, bodyPt) + 2
	c.s.Text(x, base, c.fit(value, FontRegular, bodyPt, c.right()-x), FontRegular, bodyPt, c.th.Text)
}

// paintTableRow paints row i; row 0 is the header. Cells past cols are
// ignored and missing cells are left blank.
func (c *Cursor) paintTableRow(row []string, cols, i int, y float64) {
	colW := c.m.ContentWidth() / float64(cols)
	h, base := tableRow, y+4.7
	if i == 0 {
		h, base = tableHeader, y+5.4
		c.s.FillRect(c.m.Left, y, c.m.ContentWidth(), h, c.th.Dark)
	} else if i%2 == 0 {
		c.s.FillRect(c.m.Left, y, c.m.ContentWidth(), h, c.th.RowTint)
	}
	for j := 0; j < cols && j < len(row); j++ {
		cell := row[j]
		f, col := FontRegular, c.th.Text
		if i == 0 {
			f, col = FontBold, c.th.White
		} else if sev := ParseSeverity(cell); sev != SeverityUnknown {
			f, col = FontBold, sev.Color()
		}
		x := c.m.Left + float64(j)*colW + cellPad
		c.s.Text(x, base, c.fit(cell, f, tablePt, colW-2*cellPad), f, tablePt, col)
	}
	c.s.Line(c.m.Left, y+h, c.right(), y+h, 0.1, c.th.Rule)
}

func (c *Cursor) paintBullet(y float64) {
	c.s.Text(c.m.Left+1.5, y+bodyLine*0.72, "•", FontRegular, bodyPt, c.th.Accent)
}

// paintWords lays one wrapped line of styled words out from x.
func (c *Cursor) paintWords(words []StyledWord, x, y, pt, lh float64) {
	c.paintRun(words, x, y, pt, lh, false)
}

func (c *Cursor) paintHeadingWords(words []StyledWord, x, y, pt, lh float64) {
	c.paintRun(words, x, y, pt, lh, true)
}

func (c *Cursor) paintRun(words []StyledWord, x, y, pt, lh float64, heading bool) {
	base := y + lh*0.72
	space := c.s.TextWidth(" ", FontRegular, pt)
	for _, w := range words {
		f, col := fontFor(w.Style), c.th.Text
		if heading {
			col = c.th.Dark
			switch f {
			case FontRegular:
				f = FontBold
			case FontItalic:
				f = FontBoldItalic
			}
		}
		if w.Style == StyleLink {
			col = c.th.Link
		}
		width := c.s.TextWidth(w.Text, f, pt)
		if w.Style == StyleCode {
			c.s.FillRect(x-0.4, y+0.4, width+0.8, lh-0.8, c.th.CodeBG)
			col = c.th.Dark
		}
		c.s.Text(x, base, w.Text, f, pt, col)
		if w.Style == StyleLink && w.URL != "" {
			c.s.Line(x, base+0.6, x+width, base+0.6, 0.15, col)
			c.s.LinkURL(x, y, width, lh, w.URL)
		}
		x += width + space
	}
}

func (c *Cursor) paintCodeLine(line string, y, band, top float64) {
	c.s.FillRect(c.m.Left, y, c.m.ContentWidth(), band, c.th.CodeBG)
	c.s.FillRect(c.m.Left, y, 0.8, band, c.th.Accent)
	line = strings.ReplaceAll(line, "\t", "    ")
	c.s.Text(c.m.Left+4, y+top+codeLine*0.75, line, FontMono, codePt, c.th.Dark)
}

func (c *Cursor) paintRule(y float64) {
	c.s.Line(c.m.Left, y+3, c.right(), y+3, 0.2, c.th.Rule)
}

func (c *Cursor) paintIndexTitle(y float64) {
	c.s.Text(c.m.Left, y+8, "Contents", FontBold, indexTitlePt, c.th.Dark)
	c.s.Line(c.m.Left, y+10, c.right(), y+10, 0.2, c.th.Rule)
}

// paintIndexRow paints one contents line. Sections get a dotted leader to
// the page number; findings are indented behind a severity marker.
func (c *Cursor) paintIndexRow(e TocEntry, y float64) {
	num := strconv.Itoa(e.Page)
	if e.IsSection {
		const pt = 10.0
		base := y + 5
		numX := c.right() - c.s.TextWidth(num, FontBold, pt)
		c.s.Text(numX, base, num, FontBold, pt, c.th.Dark)
		label := c.fit(e.Label, FontBold, pt, numX-c.m.Left-8)
		c.s.Text(c.m.Left, base, label, FontBold, pt, c.th.Dark)
		from := c.m.Left + c.s.TextWidth(label, FontBold, pt) + 2
		unit := c.s.TextWidth(" .", FontRegular, pt)
		if n := int((numX - 2 - from) / unit); n > 0 && unit > 0 {
			c.s.Text(from, base, strings.Repeat(" .", n), FontRegular, pt, c.th.Gray)
		}
		c.s.LinkPage(c.m.Left, y, c.m.ContentWidth(), indexSectionRow, e.Page, e.Y)
		return
	}

	const pt, tagPt = 9.5, 7.5
	base := y + 4.3
	sev := ParseSeverity(e.Severity).Color()
	x := c.m.Left + indexIndent
	c.s.FillRect(x, y+2, 2, 2, sev)
	numX := c.right() - c.s.TextWidth(num, FontRegular, pt)
	c.s.Text(numX, base, num, FontRegular, pt, c.th.Text)
	tag := strings.ToUpper(e.Severity)
	tagX := numX - 4 - c.s.TextWidth(tag, FontBold, tagPt)
	c.s.Text(tagX, base, tag, FontBold, tagPt, sev)
	c.s.Text(x+4, base, c.fit(e.Label, FontRegular, pt, tagX-x-8), FontRegular, pt, c.th.Text)
	c.s.LinkPage(c.m.Left, y, c.m.ContentWidth(), indexFindingRow, e.Page, e.Y)
}
