package pogreport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseBlocksDirectiveSequence(t *testing.T) {
	in := "#! title T\n#! spacer 4\nSome text.\n#! pagebreak\n#! section S\n"
	want := []Block{
		{Kind: BlockTitle, Text: "T"},
		{Kind: BlockSpacer, MM: 4},
		{Kind: BlockText, Text: "Some text."},
		{Kind: BlockPageBreak},
		{Kind: BlockSection, Text: "S"},
	}
	if diff := cmp.Diff(want, ParseBlocks(in)); diff != "" {
		t.Fatalf("ParseBlocks mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBlocksTable(t *testing.T) {
	got := ParseBlocks("Sev | Count\nCritical | 3\nHigh | 5")
	want := []Block{{Kind: BlockTable, Rows: [][]string{{"Sev", "Count"}, {"Critical", "3"}, {"High", "5"}}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBlocksTableOuterPipes(t *testing.T) {
	got := ParseBlocks("#! table\n| A | B |\n| 1 | 2 |\n|\n- not | a row")
	want := []Block{
		{Kind: BlockTable, Rows: [][]string{{"A", "B"}, {"1", "2"}}},
		{Kind: BlockText, Text: "- not | a row"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBlocksDirectives(t *testing.T) {
	in := `#! subtitle Quarterly review
#! finding High 1. SQL injection in login
#! meta Asset: web-01
#! meta Location: https://example.com:8443/login
#! index
#! hr
#! comment nothing to see
#! image logo.png
#! unknown directive`
	want := []Block{
		{Kind: BlockSubtitle, Text: "Quarterly review"},
		{Kind: BlockFinding, Severity: "High", Text: "1. SQL injection in login"},
		{Kind: BlockMeta, Key: "Asset", Value: "web-01"},
		{Kind: BlockMeta, Key: "Location", Value: "https://example.com:8443/login"},
		{Kind: BlockIndex},
		{Kind: BlockHRule},
	}
	if diff := cmp.Diff(want, ParseBlocks(in)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBlocksDropsMalformedDirectives(t *testing.T) {
	in := "#! finding Critical\n#! spacer lots\n#! spacer -3\n#! meta no colon\n#! title\n#! Section Wrong case"
	if got := ParseBlocks(in); len(got) != 0 {
		t.Fatalf("expected no blocks, got %+v", got)
	}
}

func TestParseBlocksTextBoundaries(t *testing.T) {
	in := "first para\nstill first\n\nsecond para\nA | B\nafter table"
	want := []Block{
		{Kind: BlockText, Text: "first para\nstill first"},
		{Kind: BlockText, Text: "second para"},
		{Kind: BlockTable, Rows: [][]string{{"A", "B"}}},
		{Kind: BlockText, Text: "after table"},
	}
	if diff := cmp.Diff(want, ParseBlocks(in)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBlocksKeepsFencedCodeTogether(t *testing.T) {
	in := "Intro:\n```\nx | y\n\n    indented\n```\n#! hr"
	want := []Block{
		{Kind: BlockText, Text: "Intro:\n```\nx | y\n\n    indented\n```"},
		{Kind: BlockHRule},
	}
	if diff := cmp.Diff(want, ParseBlocks(in)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBlocksFenceClosesOnlyOnItsMarker(t *testing.T) {
	got := ParseBlocks("~~~\n```\nx | y\n~~~\n")
	want := []Block{{Kind: BlockText, Text: "~~~\n```\nx | y\n~~~"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	md := ParseMarkdown(got[0].Text)
	if len(md) != 1 || md[0].Kind != MdCode {
		t.Fatalf("ParseMarkdown = %+v, want one code block", md)
	}
	if diff := cmp.Diff([]string{"```", "x | y"}, md[0].Lines); diff != "" {
		t.Errorf("code lines (-want +got):\n%s", diff)
	}
}

func TestParseBlocksDirectiveClosesOpenFence(t *testing.T) {
	got := ParseBlocks("```\nopen\n#! section Next")
	want := []Block{
		{Kind: BlockText, Text: "```\nopen"},
		{Kind: BlockSection, Text: "Next"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBlocksIsIdempotent(t *testing.T) {
	in := "#! title Report\n#! index\n#! section Findings\n#! finding Low 1. Banner\nSome **text**\n\nSev | N\nLow | 1\n"
	first := ParseBlocks(in)
	for i := 0; i < 3; i++ {
		if diff := cmp.Diff(first, ParseBlocks(in)); diff != "" {
			t.Fatalf("parse %d differs (-first +again):\n%s", i, diff)
		}
	}
}
