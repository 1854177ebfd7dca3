package pogreport

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// ---- Font loading ----

// fontAndFace is a parsed TTF with a face built at baseSize points.
type fontAndFace struct {
	Font     *truetype.Font
	Face     font.Face
	baseSize float64
}

func loadFontAndFace(ttfBytes []byte, size, dpi float64) (*fontAndFace, error) {
	ft, err := truetype.Parse(ttfBytes)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(ft, &truetype.Options{Size: size, DPI: dpi, Hinting: font.HintingFull})
	return &fontAndFace{
		Font:     ft,
		Face:     face,
		baseSize: size,
	}, nil
}

// measureWidth returns the advance of s in pixels at size, scaling from the
// size the face was built at.
func measureWidth(fnt *fontAndFace, size float64, s string) float64 {
	if fnt == nil || s == "" {
		return 0
	}
	d := font.Drawer{Face: fnt.Face}
	width := float64(d.MeasureString(s)) / 64
	if fnt.baseSize > 0 && size > 0 && size != fnt.baseSize {
		width *= size / fnt.baseSize
	}
	return width
}

// ---- Raster surface ----

// rasterSurface paints pages into RGBA images. Links have nowhere to go in
// a bitmap and are dropped; bookmarks are kept as an outline.
type rasterSurface struct {
	pages   []*image.RGBA
	cur     int
	dpi     float64
	w, h    int
	bg      color.Color
	dc      *freetype.Context
	fonts   [fontStyleCount]*fontAndFace
	outline []OutlineEntry
	err     error
}

// OutlineEntry is one bookmark recorded by a preview render.
type OutlineEntry struct {
	Title string
	Level int
	Page  int
}

func newRasterSurface(m Metrics, fonts *FontSet, dpi float64) (*rasterSurface, error) {
	if dpi <= 0 {
		return nil, errors.New("dpi must be positive")
	}
	s := &rasterSurface{dpi: dpi, bg: color.White}
	s.w = int(math.Round(m.PageW * dpi / 25.4))
	s.h = int(math.Round(m.PageH * dpi / 25.4))
	for f := FontStyle(0); f < fontStyleCount; f++ {
		ff, err := loadFontAndFace(fonts.TTF(f), bodyPt, dpi)
		if err != nil {
			return nil, err
		}
		s.fonts[f] = ff
	}
	s.dc = freetype.NewContext()
	s.dc.SetDPI(dpi)
	s.dc.SetHinting(font.HintingFull)
	return s, nil
}

func (s *rasterSurface) px(mm float64) int { return int(math.Round(mm * s.dpi / 25.4)) }

func (s *rasterSurface) page() *image.RGBA {
	if s.cur < 1 || s.cur > len(s.pages) {
		return nil
	}
	return s.pages[s.cur-1]
}

func (s *rasterSurface) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *rasterSurface) AddPage() {
	img := image.NewRGBA(image.Rect(0, 0, s.w, s.h))
	draw.Draw(img, img.Bounds(), image.NewUniform(s.bg), image.Point{}, draw.Src)
	s.pages = append(s.pages, img)
	s.cur = len(s.pages)
}

func (s *rasterSurface) SetPage(n int) {
	if n < 1 || n > len(s.pages) {
		s.fail(errors.New("page out of range"))
		return
	}
	s.cur = n
}

func (s *rasterSurface) PageCount() int { return len(s.pages) }

func (s *rasterSurface) Text(x, y float64, str string, f FontStyle, pt float64, c color.RGBA) {
	img := s.page()
	if s.err != nil || img == nil || str == "" {
		return
	}
	s.dc.SetDst(img)
	s.dc.SetClip(img.Bounds())
	s.dc.SetSrc(image.NewUniform(c))
	s.dc.SetFont(s.fonts[f].Font)
	s.dc.SetFontSize(pt)
	if _, err := s.dc.DrawString(str, freetype.Pt(s.px(x), s.px(y))); err != nil {
		s.fail(err)
	}
}

func (s *rasterSurface) TextWidth(str string, f FontStyle, pt float64) float64 {
	return measureWidth(s.fonts[f], pt, str) * 25.4 / s.dpi
}

func (s *rasterSurface) FillRect(x, y, w, h float64, c color.RGBA) {
	img := s.page()
	if s.err != nil || img == nil {
		return
	}
	rect := image.Rect(s.px(x), s.px(y), s.px(x+w), s.px(y+h))
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Over)
}

// Line only needs to handle the horizontal and vertical rules the cursor
// draws; anything else is drawn as its bounding box.
func (s *rasterSurface) Line(x1, y1, x2, y2, width float64, c color.RGBA) {
	img := s.page()
	if s.err != nil || img == nil {
		return
	}
	half := math.Max(width/2, 12.7/s.dpi)
	rect := image.Rect(s.px(math.Min(x1, x2)-half), s.px(math.Min(y1, y2)-half),
		s.px(math.Max(x1, x2)+half), s.px(math.Max(y1, y2)+half))
	if rect.Dy() == 0 {
		rect.Max.Y++
	}
	if rect.Dx() == 0 {
		rect.Max.X++
	}
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Over)
}

func (s *rasterSurface) LinkURL(x, y, w, h float64, url string)                 {}
func (s *rasterSurface) LinkPage(x, y, w, h float64, page int, targetY float64) {}

func (s *rasterSurface) Bookmark(title string, level int, y float64) {
	s.outline = append(s.outline, OutlineEntry{Title: title, Level: level, Page: s.cur})
}

func (s *rasterSurface) Err() error { return s.err }
