package x12

import "strings"

// ParseAcknowledgment scans a 999/277 acknowledgment file for
// acceptance and rejection markers. It is deliberately a heuristic
// segment scan, not a full X12 parse: a file is accepted only when an
// accept marker (IK5*A or AK9*A) is present and no reject marker
// (IK5*R/E or AK9*R/E) appears. Every IK4 segment is collected
// verbatim as error detail. An indeterminate file reports not-accepted
// with no errors rather than guessing.
func ParseAcknowledgment(text string) AckResult {
	result := AckResult{}
	var accepted, rejected bool

	normalized := strings.NewReplacer("\r", "", "\n", "").Replace(text)
	for _, raw := range strings.Split(normalized, SegmentTerminator) {
		seg := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(seg, "IK5"+ElementSeparator),
			strings.HasPrefix(seg, "AK9"+ElementSeparator):
			switch ackCode(seg) {
			case "A":
				accepted = true
			case "R", "E":
				rejected = true
			}
		case strings.HasPrefix(seg, "IK4"+ElementSeparator):
			result.Errors = append(result.Errors, seg)
		}
	}

	result.Accepted = accepted && !rejected
	return result
}

// ackCode returns the first element after the segment id.
func ackCode(seg string) string {
	parts := strings.Split(seg, ElementSeparator)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
