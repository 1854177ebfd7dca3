package pogreport

// TocEntry is the page a Section or Finding block lands on. Severity is
// empty for sections. Y is the top of the block on that page.
type TocEntry struct {
	IsSection bool
	Label     string
	Severity  string
	Page      int
	Y         float64
}

// Simulate lays the blocks out without drawing anything and returns one
// entry per Section and Finding block, in document order.
func Simulate(blocks []Block, m Metrics) []TocEntry {
	p := &planner{m: m, wrap: plainWrap, toc: placeholderTOC(blocks), dry: true}
	fl := newFlow(m, nil)
	var entries []TocEntry
	walk(blocks, p, fl, func(b Block, fr fragment, y float64) {
		if !fr.entry {
			return
		}
		entries = append(entries, TocEntry{
			IsSection: b.Kind == BlockSection,
			Label:     b.Text,
			Severity:  b.Severity,
			Page:      fl.page,
			Y:         y,
		})
	})
	return entries
}

// simulatePages is the number of pages the layout occupies.
func simulatePages(blocks []Block, m Metrics) int {
	p := &planner{m: m, wrap: plainWrap, toc: placeholderTOC(blocks), dry: true}
	fl := newFlow(m, nil)
	walk(blocks, p, fl, func(Block, fragment, float64) {})
	return fl.page
}
