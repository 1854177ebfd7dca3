package pogreport

import (
	"bytes"
	"errors"
	"image"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Options configure report generation. Zero values enable the defaults:
// A4 with 25/30/25/25mm margins, the slate theme, bundled Go fonts and a
// "Confidential" footer.
type Options struct {
	Metrics Metrics
	Theme   Theme
	Fonts   FontConfig
	Header  string
	Footer  string
	Author  string
	Logger  *zap.Logger
}

const (
	defaultHeader = "Security Assessment Report"
	defaultFooter = "Confidential"
	creator       = "pogreport"
)

func (o Options) withDefaults() Options {
	if (o.Metrics == Metrics{}) {
		o.Metrics = DefaultMetrics
	}
	if (o.Theme == Theme{}) {
		o.Theme = DefaultTheme
	}
	if o.Header == "" {
		o.Header = defaultHeader
	}
	if o.Footer == "" {
		o.Footer = defaultFooter
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Validate rejects page geometry that leaves no printable area.
func (m Metrics) Validate() error {
	switch {
	case m.PageW <= 0 || m.PageH <= 0:
		return errors.New("page size must be positive")
	case m.Top < 0 || m.Bottom < 0 || m.Left < 0 || m.Right < 0:
		return errors.New("margins must not be negative")
	case m.Usable() <= 0 || m.ContentWidth() <= 0:
		return errors.New("margins leave no printable area")
	}
	return nil
}

// Document is a finished, paginated report.
type Document struct {
	surface *pdfSurface
	toc     []TocEntry
	painted []int
	pages   int

	once    sync.Once
	data    []byte
	dataErr error
}

// PageCount is the total number of pages.
func (d *Document) PageCount() int { return d.pages }

// TOC returns the simulated table of contents.
func (d *Document) TOC() []TocEntry { return append([]TocEntry(nil), d.toc...) }

// PaintedPages lists the pages Section and Finding blocks were painted on.
func (d *Document) PaintedPages() []int { return append([]int(nil), d.painted...) }

// Bytes returns the serialized PDF. gofpdf can only be output once, so the
// result is kept and every later call returns the same bytes.
func (d *Document) Bytes() ([]byte, error) {
	d.once.Do(func() {
		var buf bytes.Buffer
		if err := d.surface.output(&buf); err != nil {
			d.dataErr = stageErr(StageWrite, err)
			return
		}
		d.data = buf.Bytes()
	})
	return d.data, d.dataErr
}

// WriteTo writes the serialized PDF to w. Nothing reaches w when
// serialization fails, and repeated calls write identical output.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	data, err := d.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	if err != nil {
		return int64(n), stageErr(StageWrite, err)
	}
	return int64(n), nil
}

// Generate parses rendered template output and lays it out as a PDF.
func Generate(text string, opts Options) (*Document, error) {
	return GenerateBlocks(ParseBlocks(text), opts)
}

// GenerateBlocks runs the three phases over already parsed blocks: the dry
// run for page numbers, the paint pass, then decoration.
func GenerateBlocks(blocks []Block, opts Options) (*Document, error) {
	opts = opts.withDefaults()
	if err := opts.Metrics.Validate(); err != nil {
		return nil, stageErr(StagePaint, err)
	}
	fonts, err := LoadFonts(opts.Fonts)
	if err != nil {
		return nil, stageErr(StagePaint, err)
	}
	s, err := newPDFSurface(opts.Metrics, fonts, pdfMeta{
		Title:   documentTitle(blocks),
		Author:  opts.Author,
		Creator: creator,
	})
	if err != nil {
		return nil, stageErr(StagePaint, err)
	}
	toc, painted, err := render(s, blocks, opts)
	if err != nil {
		return nil, err
	}
	return &Document{surface: s, toc: toc, painted: painted, pages: s.PageCount()}, nil
}

// Preview renders the report as page images at dpi.
func Preview(text string, opts Options, dpi float64) ([]*image.RGBA, []OutlineEntry, error) {
	opts = opts.withDefaults()
	if err := opts.Metrics.Validate(); err != nil {
		return nil, nil, stageErr(StagePaint, err)
	}
	fonts, err := LoadFonts(opts.Fonts)
	if err != nil {
		return nil, nil, stageErr(StagePaint, err)
	}
	s, err := newRasterSurface(opts.Metrics, fonts, dpi)
	if err != nil {
		return nil, nil, stageErr(StagePaint, err)
	}
	if _, _, err := render(s, ParseBlocks(text), opts); err != nil {
		return nil, nil, err
	}
	return s.pages, s.outline, nil
}

func render(s Surface, blocks []Block, opts Options) ([]TocEntry, []int, error) {
	log := opts.Logger
	toc := Simulate(blocks, opts.Metrics)
	log.Debug("layout simulated", zap.Int("blocks", len(blocks)), zap.Int("entries", len(toc)))

	c := NewCursor(s, opts.Metrics, opts.Theme, log)
	if err := c.Paint(blocks, toc); err != nil {
		return nil, nil, stageErr(StagePaint, err)
	}
	log.Debug("blocks painted", zap.Int("pages", c.Pages()))

	deco := Decoration{Header: opts.Header, Footer: opts.Footer}
	if err := Decorate(s, blocks, opts.Metrics, opts.Theme, deco); err != nil {
		return nil, nil, stageErr(StagePaint, err)
	}
	log.Debug("pages decorated", zap.Int("pages", s.PageCount()))
	return toc, c.PaintedPages(), nil
}

func documentTitle(blocks []Block) string {
	for _, b := range blocks {
		if b.Kind == BlockTitle {
			return b.Text
		}
	}
	return ""
}
