package pogreport

import "fmt"

// Decoration holds the running header and footer labels.
type Decoration struct {
	Header string
	Footer string
}

// Decorate runs after painting, once the page count is final. It walks the
// layout again to put one bookmark on every page that starts a Section or
// Finding, and stamps the header and "Page X of Y" footer on every page.
func Decorate(s Surface, blocks []Block, m Metrics, th Theme, d Decoration) error {
	entries := Simulate(blocks, m)
	total := s.PageCount()
	next := 0
	for page := 1; page <= total; page++ {
		s.SetPage(page)
		for next < len(entries) && entries[next].Page < page {
			next++
		}
		if next < len(entries) && entries[next].Page == page {
			s.Bookmark(entries[next].Label, 0, entries[next].Y)
		}
		stampPage(s, m, th, d, page, total)
	}
	return s.Err()
}

func stampPage(s Surface, m Metrics, th Theme, d Decoration, page, total int) {
	right := m.PageW - m.Right
	if page > 1 && d.Header != "" {
		s.Text(m.Left, headerOffset, d.Header, FontRegular, footerPt, th.Gray)
		s.Line(m.Left, headerOffset+2.5, right, headerOffset+2.5, 0.2, th.Rule)
	}
	base := m.PageH - footerOffset
	s.Line(m.Left, base-5, right, base-5, 0.2, th.Rule)
	if d.Footer != "" {
		s.Text(m.Left, base, d.Footer, FontRegular, footerPt, th.Gray)
	}
	label := fmt.Sprintf("Page %d of %d", page, total)
	s.Text(right-s.TextWidth(label, FontRegular, footerPt), base, label, FontRegular, footerPt, th.Gray)
}
