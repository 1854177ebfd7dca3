package pogreport

import "image/color"

// Theme holds the report palette.
type Theme struct {
	Dark    color.RGBA // headings, table header band
	Accent  color.RGBA // title bar, section underline
	Rule    color.RGBA // horizontal rules
	Gray    color.RGBA // subtitles, footers
	Text    color.RGBA
	CodeBG  color.RGBA
	CardBG  color.RGBA
	RowTint color.RGBA
	Link    color.RGBA
	White   color.RGBA
}

// DefaultTheme is the corporate slate palette.
var DefaultTheme = Theme{
	Dark:    hex(0x1E293B),
	Accent:  hex(0x334155),
	Rule:    hex(0xCBD5E1),
	Gray:    hex(0x64748B),
	Text:    hex(0x1F2937),
	CodeBG:  hex(0xF1F5F9),
	CardBG:  hex(0xF8FAFC),
	RowTint: hex(0xF1F5F9),
	Link:    hex(0x1D4ED8),
	White:   hex(0xFFFFFF),
}

func hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}
