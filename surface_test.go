package pogreport

import (
	"image/color"
	"unicode/utf8"
)

type textCall struct {
	Page int
	X, Y float64
	Text string
	Font FontStyle
}

type bookmarkCall struct {
	Page  int
	Title string
	Y     float64
}

type pageLink struct {
	From, To int
}

// recordSurface is a Surface that only remembers what it was asked to do.
type recordSurface struct {
	pages     int
	cur       int
	texts     []textCall
	bookmarks []bookmarkCall
	links     []pageLink
	urls      []string
	err       error
}

func (s *recordSurface) AddPage()       { s.pages++; s.cur = s.pages }
func (s *recordSurface) SetPage(n int)  { s.cur = n }
func (s *recordSurface) PageCount() int { return s.pages }

func (s *recordSurface) Text(x, y float64, str string, f FontStyle, pt float64, c color.RGBA) {
	s.texts = append(s.texts, textCall{Page: s.cur, X: x, Y: y, Text: str, Font: f})
}

func (s *recordSurface) TextWidth(str string, f FontStyle, pt float64) float64 {
	return float64(utf8.RuneCountInString(str)) * pt * ptToMM * 0.5
}

func (s *recordSurface) FillRect(x, y, w, h float64, c color.RGBA)        {}
func (s *recordSurface) Line(x1, y1, x2, y2, width float64, c color.RGBA) {}
func (s *recordSurface) LinkURL(x, y, w, h float64, url string)           { s.urls = append(s.urls, url) }

func (s *recordSurface) LinkPage(x, y, w, h float64, page int, targetY float64) {
	s.links = append(s.links, pageLink{From: s.cur, To: page})
}

func (s *recordSurface) Bookmark(title string, level int, y float64) {
	s.bookmarks = append(s.bookmarks, bookmarkCall{Page: s.cur, Title: title, Y: y})
}

func (s *recordSurface) Err() error { return s.err }

// pageOf returns the page the first text call equal to str landed on, or 0.
func (s *recordSurface) pageOf(str string) int {
	for _, t := range s.texts {
		if t.Text == str {
			return t.Page
		}
	}
	return 0
}
