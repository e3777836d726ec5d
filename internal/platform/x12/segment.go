package x12

import (
	"strconv"
	"strings"
	"time"
)

// X12 delimiters for the 005010X222A1 professional claim. These four
// characters must never appear inside element data; cleanText strips them.
const (
	ElementSeparator    = "*"
	SegmentTerminator   = "~"
	ComponentSeparator  = ":"
	RepetitionSeparator = "^"
)

// cleanText removes the reserved delimiter characters and line breaks
// from user-supplied text so no value can corrupt segment boundaries.
func cleanText(s string) string {
	r := strings.NewReplacer(
		ElementSeparator, "",
		SegmentTerminator, "",
		ComponentSeparator, "",
		RepetitionSeparator, "",
		"\r", "",
		"\n", "",
	)
	return strings.TrimSpace(r.Replace(s))
}

// buildSegment joins elements with the element separator and appends the
// segment terminator. Trailing empty elements are dropped one at a time
// so a segment never ends in redundant separators.
func buildSegment(elements ...string) string {
	end := len(elements)
	for end > 0 && elements[end-1] == "" {
		end--
	}
	return strings.Join(elements[:end], ElementSeparator) + SegmentTerminator
}

// composite joins element components with the component separator.
func composite(parts ...string) string {
	return strings.Join(parts, ComponentSeparator)
}

// formatDate renders a date as CCYYMMDD.
func formatDate(t time.Time) string {
	return t.Format("20060102")
}

// formatShortDate renders the 6-digit YYMMDD form used in ISA09.
func formatShortDate(t time.Time) string {
	return t.Format("060102")
}

// formatClock renders the 4-digit HHMM form used in ISA10 and GS05.
func formatClock(t time.Time) string {
	return t.Format("1504")
}

// padLeft left space-pads s to the given fixed width. Values longer than
// the width are truncated so the envelope stays fixed-width.
func padLeft(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// zeroPad left zero-pads a numeric control number to its declared width.
func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// formatPhone strips everything non-numeric. An absent phone renders as
// an empty string, not an error.
func formatPhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// formatAmount renders a monetary or unit value with two decimals.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
