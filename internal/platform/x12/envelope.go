package x12

import (
	"strconv"
	"strings"
	"time"
)

// Generate renders a batch as a complete 005010X222A1 interchange:
// one ISA/IEA envelope, one GS/GE functional group, one transaction
// set per claim. Generation never fails; run Validate first if the
// caller wants to block structurally defective input.
func Generate(b *Batch) Document {
	return GenerateAt(b, time.Now())
}

// GenerateAt is Generate with an explicit clock instant, so identical
// input with supplied control numbers reproduces byte-identical output.
func GenerateAt(b *Batch, at time.Time) Document {
	icn := b.InterchangeControlNumber
	if icn == "" {
		icn = newControlNumber()
	} else {
		icn = zeroPad(icn, 9)
	}
	gcn := b.GroupControlNumber
	if gcn == "" {
		gcn = newControlNumber()
	} else {
		gcn = zeroPad(gcn, 9)
	}
	usage := b.UsageIndicator
	if usage == "" {
		usage = "P"
	}

	senderID := cleanText(b.Submitter.Identifier)
	receiverID := cleanText(b.Receiver.PayerID)

	var segments []string
	segments = append(segments, buildSegment(
		"ISA",
		"00", padLeft("", 10),
		"00", padLeft("", 10),
		"ZZ", padLeft(senderID, 15),
		"ZZ", padLeft(receiverID, 15),
		formatShortDate(at), formatClock(at),
		RepetitionSeparator,
		"00501", icn, "0", usage,
		ComponentSeparator,
	))
	segments = append(segments, buildSegment(
		"GS", "HC", senderID, receiverID,
		formatDate(at), formatClock(at),
		gcn, "X", "005010X222A1",
	))

	for i := range b.Claims {
		segments = append(segments, assembleClaim(b, &b.Claims[i], i+1, at)...)
	}

	segments = append(segments, buildSegment("GE", strconv.Itoa(len(b.Claims)), gcn))
	segments = append(segments, buildSegment("IEA", "1", icn))

	return Document{
		Content:                  strings.Join(segments, "\n"),
		InterchangeControlNumber: icn,
		GroupControlNumber:       gcn,
		ClaimCount:               len(b.Claims),
	}
}
