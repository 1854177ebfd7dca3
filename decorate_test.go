package pogreport

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecorateBookmarksAndFooters(t *testing.T) {
	text := "#! title Report\n#! pagebreak\n#! section Findings\n#! finding High A\n#! finding Low B\nplain page text\n#! pagebreak\nno entries here\n"
	blocks := ParseBlocks(text)
	s, c, _ := paint(t, text)
	if err := Decorate(s, blocks, DefaultMetrics, DefaultTheme, Decoration{Header: "Head", Footer: "Foot"}); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	if c.Pages() != 4 {
		t.Fatalf("expected 4 pages, got %d", c.Pages())
	}

	want := []bookmarkCall{
		{Page: 2, Title: "Findings"},
		{Page: 3, Title: "B"},
	}
	got := make([]bookmarkCall, len(s.bookmarks))
	for i, b := range s.bookmarks {
		got[i] = bookmarkCall{Page: b.Page, Title: b.Title}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("bookmarks mismatch (-want +got):\n%s", diff)
	}

	for page := 1; page <= 4; page++ {
		label := fmt.Sprintf("Page %d of 4", page)
		found := false
		headers := 0
		for _, tc := range s.texts {
			if tc.Page != page {
				continue
			}
			if tc.Text == label {
				found = true
			}
			if tc.Text == "Head" {
				headers++
			}
		}
		if !found {
			t.Fatalf("page %d has no %q footer", page, label)
		}
		wantHeaders := 1
		if page == 1 {
			wantHeaders = 0
		}
		if headers != wantHeaders {
			t.Fatalf("page %d has %d headers, want %d", page, headers, wantHeaders)
		}
	}
}

func TestDecorateReportsSurfaceError(t *testing.T) {
	s := &recordSurface{err: errors.New("disk full")}
	s.AddPage()
	if err := Decorate(s, nil, DefaultMetrics, DefaultTheme, Decoration{}); err == nil {
		t.Fatalf("expected surface error")
	}
}
