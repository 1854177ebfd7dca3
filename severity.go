package pogreport

import (
	"image/color"
	"strings"
)

// Severity is the qualitative rating of a finding.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityCritical
	SeverityHigh
	SeverityMedium
	SeverityLow
	SeverityInfo
)

// Severities lists the known severities from most to least severe.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo}

// ParseSeverity matches a severity name case-insensitively. "informational"
// is accepted for Info. Anything else is SeverityUnknown.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return SeverityCritical
	case "high":
		return SeverityHigh
	case "medium":
		return SeverityMedium
	case "low":
		return SeverityLow
	case "info", "informational":
		return SeverityInfo
	}
	return SeverityUnknown
}

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "Critical"
	case SeverityHigh:
		return "High"
	case SeverityMedium:
		return "Medium"
	case SeverityLow:
		return "Low"
	case SeverityInfo:
		return "Info"
	}
	return "Unknown"
}

// Color is the accent used for the severity in badges, markers and table
// cells.
func (s Severity) Color() color.RGBA {
	switch s {
	case SeverityCritical:
		return hex(0x991B1B)
	case SeverityHigh:
		return hex(0xC2410C)
	case SeverityMedium:
		return hex(0xB45309)
	case SeverityLow:
		return hex(0x15803D)
	case SeverityInfo:
		return hex(0x1D4ED8)
	}
	return hex(0x64748B)
}
