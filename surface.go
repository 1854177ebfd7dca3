package pogreport

import "image/color"

// FontStyle selects one of the faces of a FontSet.
type FontStyle int

const (
	FontRegular FontStyle = iota
	FontBold
	FontItalic
	FontBoldItalic
	FontMono
	fontStyleCount
)

// fontFor maps an inline style to the face it is painted with.
func fontFor(s Style) FontStyle {
	switch s {
	case StyleBold:
		return FontBold
	case StyleItalic:
		return FontItalic
	case StyleBoldItalic:
		return FontBoldItalic
	case StyleCode:
		return FontMono
	}
	return FontRegular
}

// Surface is the set of drawing primitives the rendering cursor paints with.
// Coordinates are millimetres from the top-left corner of the current page;
// y for Text is the baseline. Pages are numbered from 1.
//
// Implementations record the first failure and turn later calls into
// no-ops; Err reports it.
type Surface interface {
	AddPage()
	SetPage(n int)
	PageCount() int

	Text(x, y float64, s string, f FontStyle, pt float64, c color.RGBA)
	TextWidth(s string, f FontStyle, pt float64) float64
	FillRect(x, y, w, h float64, c color.RGBA)
	Line(x1, y1, x2, y2, width float64, c color.RGBA)

	// LinkURL makes the area clickable, opening url.
	LinkURL(x, y, w, h float64, url string)
	// LinkPage makes the area jump to (page, targetY).
	LinkPage(x, y, w, h float64, page int, targetY float64)
	// Bookmark adds an outline entry pointing at y on the current page.
	Bookmark(title string, level int, y float64)

	Err() error
}
