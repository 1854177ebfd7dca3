package pogreport

// All lengths are millimetres. Font sizes are points.

const ptToMM = 25.4 / 72

// Typography and fixed block heights shared by the dry run and the paint
// pass. Nothing else may hard-code a vertical distance.
const (
	bodyPt   = 10.0
	bodyLine = 5.0
	paraGap  = 2.5

	codePt   = 8.5
	codeLine = 4.5
	codePad  = 2.0
	codeGap  = 3.0

	titlePt     = 26.0
	titleLine   = 11.0
	titleAnchor = 70.0
	titleBar    = 10.0
	titleGap    = 6.0

	subtitlePt   = 14.0
	subtitleLine = 7.0
	subtitleGap  = 4.0

	sectionPt     = 16.0
	sectionHeight = 18.0
	sectionKeep   = 19.0

	findingPt   = 13.0
	findingBase = 22.0
	findingLine = 8.0
	badgePt     = 8.0

	metaHeight = 6.0

	tablePt     = 9.0
	tableHeader = 8.0
	tableRow    = 7.0
	tableGap    = 4.0
	cellPad     = 2.0

	indexTitlePt    = 16.0
	indexTitle      = 12.0
	indexSectionRow = 7.0
	indexFindingRow = 6.0
	indexGap        = 6.0
	indexIndent     = 6.0

	hruleHeight  = 6.0
	headingGap   = 2.0
	bulletIndent = 6.0

	footerPt     = 8.0
	footerOffset = 15.0
	headerOffset = 16.0
)

var headingPt = [4]float64{0, 14, 12, 11}
var headingLine = [4]float64{0, 7, 6.5, 6}

// Metrics describes the page and its printable area.
type Metrics struct {
	PageW, PageH float64
	Top, Bottom  float64
	Left, Right  float64
}

// A4 with the report margins.
var DefaultMetrics = Metrics{PageW: 210, PageH: 297, Top: 25, Bottom: 30, Left: 25, Right: 25}

// Limit is the lowest y content may reach.
func (m Metrics) Limit() float64 { return m.PageH - m.Bottom }

// Usable is the printable height of one page.
func (m Metrics) Usable() float64 { return m.Limit() - m.Top }

// ContentWidth is the printable width of one page.
func (m Metrics) ContentWidth() float64 { return m.PageW - m.Left - m.Right }

// charFactor approximates the average advance of a glyph as a fraction of
// the em for each font.
var charFactor = [fontStyleCount]float64{
	FontRegular:    0.58,
	FontBold:       0.62,
	FontItalic:     0.58,
	FontBoldItalic: 0.62,
	FontMono:       0.6,
}

// maxChars is the character budget for text set in f at pt within width mm.
func maxChars(width float64, f FontStyle, pt float64) int {
	per := pt * ptToMM * charFactor[f]
	if per <= 0 {
		return 1
	}
	n := int(width / per)
	if n < 1 {
		n = 1
	}
	return n
}
