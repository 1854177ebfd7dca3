package pogreport

import (
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"
)

var pdfFaces = [fontStyleCount]struct{ family, style string }{
	FontRegular:    {"body", ""},
	FontBold:       {"body", "B"},
	FontItalic:     {"body", "I"},
	FontBoldItalic: {"body", "BI"},
	FontMono:       {"mono", ""},
}

// pdfMeta is written into the document information dictionary.
type pdfMeta struct {
	Title   string
	Author  string
	Creator string
}

// pdfSurface paints onto a gofpdf document. Automatic page breaks are off:
// the cursor decides where pages end.
type pdfSurface struct {
	pdf *gofpdf.Fpdf
}

func newPDFSurface(m Metrics, fonts *FontSet, meta pdfMeta) (*pdfSurface, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: m.PageW, Ht: m.PageH},
	})
	pdf.SetMargins(m.Left, m.Top, m.Right)
	pdf.SetAutoPageBreak(false, m.Bottom)
	for f, face := range pdfFaces {
		pdf.AddUTF8FontFromBytes(face.family, face.style, fonts.TTF(FontStyle(f)))
	}
	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}
	if meta.Creator != "" {
		pdf.SetCreator(meta.Creator, true)
	}
	if pdf.Err() {
		return nil, pdf.Error()
	}
	return &pdfSurface{pdf: pdf}, nil
}

func (s *pdfSurface) AddPage()       { s.pdf.AddPage() }
func (s *pdfSurface) SetPage(n int)  { s.pdf.SetPage(n) }
func (s *pdfSurface) PageCount() int { return s.pdf.PageCount() }

// setFont always re-emits the font size so the selection reaches the
// current page's content stream, even when revisiting a page.
func (s *pdfSurface) setFont(f FontStyle, pt float64) {
	face := pdfFaces[f]
	s.pdf.SetFont(face.family, face.style, pt)
	s.pdf.SetFontSize(pt)
}

func (s *pdfSurface) Text(x, y float64, str string, f FontStyle, pt float64, c color.RGBA) {
	if str == "" {
		return
	}
	s.setFont(f, pt)
	s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	s.pdf.Text(x, y, str)
}

func (s *pdfSurface) TextWidth(str string, f FontStyle, pt float64) float64 {
	face := pdfFaces[f]
	s.pdf.SetFont(face.family, face.style, pt)
	return s.pdf.GetStringWidth(str)
}

func (s *pdfSurface) FillRect(x, y, w, h float64, c color.RGBA) {
	s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	s.pdf.Rect(x, y, w, h, "F")
}

func (s *pdfSurface) Line(x1, y1, x2, y2, width float64, c color.RGBA) {
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetLineWidth(width)
	s.pdf.Line(x1, y1, x2, y2)
}

func (s *pdfSurface) LinkURL(x, y, w, h float64, url string) {
	s.pdf.LinkString(x, y, w, h, url)
}

func (s *pdfSurface) LinkPage(x, y, w, h float64, page int, targetY float64) {
	link := s.pdf.AddLink()
	s.pdf.SetLink(link, targetY, page)
	s.pdf.Link(x, y, w, h, link)
}

func (s *pdfSurface) Bookmark(title string, level int, y float64) {
	s.pdf.Bookmark(title, level, y)
}

func (s *pdfSurface) Err() error {
	if s.pdf.Err() {
		return s.pdf.Error()
	}
	return nil
}

func (s *pdfSurface) output(w io.Writer) error {
	return s.pdf.Output(w)
}
