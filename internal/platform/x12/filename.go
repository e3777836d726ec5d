package x12

import (
	"strings"
	"time"
)

// Filename derives the deterministic submission file name
// 837P_<company><yyyyMMdd_HHmmss>[_batchID].edi. The company name is
// reduced to alphanumerics and truncated to 10 characters.
func Filename(companyName string, at time.Time, batchID string) string {
	var b strings.Builder
	b.WriteString("837P_")
	b.WriteString(cleanCompanyName(companyName))
	b.WriteString(at.Format("20060102_150405"))
	if batchID != "" {
		b.WriteString("_")
		b.WriteString(batchID)
	}
	b.WriteString(".edi")
	return b.String()
}

func cleanCompanyName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
		if b.Len() == 10 {
			break
		}
	}
	return b.String()
}
