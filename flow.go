package pogreport

// flow is the vertical-advancement state machine. The dry run and the paint
// pass each own one and feed it the same fragments, which is what keeps
// their page numbers in agreement.
type flow struct {
	m            Metrics
	page         int
	y            float64
	used         bool // something has been placed on the current page
	findings     int
	afterSection bool

	// onNewPage runs after the page counter moves on.
	onNewPage func(page int)
}

func newFlow(m Metrics, onNewPage func(int)) *flow {
	return &flow{m: m, page: 1, y: m.Top, onNewPage: onNewPage}
}

func (f *flow) newPage() {
	f.page++
	f.y = f.m.Top
	f.used = false
	if f.onNewPage != nil {
		f.onNewPage(f.page)
	}
}

// breakIfUsed starts a new page unless the current one is still empty.
func (f *flow) breakIfUsed() {
	if f.used {
		f.newPage()
	}
}

// ensureSpace moves to a new page when need does not fit below y. A page
// that is still at its top margin is kept even if need is taller than the
// page.
func (f *flow) ensureSpace(need float64) {
	if f.y+need > f.m.Limit() && f.y > f.m.Top {
		f.newPage()
	}
}

func (f *flow) advance(h float64) { f.y += h }

// begin applies the page rules that depend on the block kind rather than
// on its height.
func (f *flow) begin(b Block) {
	switch b.Kind {
	case BlockSection:
		if f.findings > 0 {
			f.breakIfUsed()
		}
		f.afterSection = true
	case BlockFinding:
		if f.findings > 0 && !f.afterSection {
			f.breakIfUsed()
		}
		f.findings++
		f.afterSection = false
	case BlockMeta, BlockText:
		f.afterSection = false
	case BlockPageBreak:
		f.breakIfUsed()
	}
}

// place positions fr and returns the y its top edge lands on.
func (f *flow) place(fr fragment) float64 {
	switch fr.kind {
	case fragAnchor:
		if f.y > fr.at {
			f.newPage()
		}
		f.y = fr.at
	case fragGap:
		y := f.y
		f.advance(fr.height)
		return y
	}
	f.ensureSpace(fr.need)
	y := f.y
	f.advance(fr.height)
	f.used = true
	return y
}
