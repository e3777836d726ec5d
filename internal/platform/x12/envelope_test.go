package x12

import (
	"strings"
	"testing"
)

func TestEnvelopeTrailers(t *testing.T) {
	b := testBatch()
	second := b.Claims[0]
	second.ClaimNumber = "CLM1002"
	b.Claims = append(b.Claims, second)

	doc := GenerateAt(b, testClock)
	lines := strings.Split(doc.Content, "\n")

	if got := lines[len(lines)-2]; got != "GE*2*000000077~" {
		t.Errorf("GE = %q", got)
	}
	if got := lines[len(lines)-1]; got != "IEA*1*000000042~" {
		t.Errorf("IEA = %q", got)
	}
	if doc.ClaimCount != 2 {
		t.Errorf("ClaimCount = %d, want 2", doc.ClaimCount)
	}
}

func TestInterchangeHeaderFixedWidth(t *testing.T) {
	b := testBatch()
	doc := GenerateAt(b, testClock)
	isa := strings.Split(doc.Content, "\n")[0]

	elements := strings.Split(strings.TrimSuffix(isa, SegmentTerminator), ElementSeparator)
	if len(elements) != 17 {
		t.Fatalf("ISA has %d elements, want 17: %q", len(elements), isa)
	}
	checks := map[int]string{
		1:  "00",
		2:  strings.Repeat(" ", 10),
		3:  "00",
		4:  strings.Repeat(" ", 10),
		5:  "ZZ",
		6:  "      123456789",
		7:  "ZZ",
		8:  "          MCD01",
		9:  "250701",
		10: "0930",
		11: "^",
		12: "00501",
		13: "000000042",
		14: "0",
		15: "P",
		16: ":",
	}
	for i, want := range checks {
		if elements[i] != want {
			t.Errorf("ISA%02d = %q, want %q", i, elements[i], want)
		}
	}
}

func TestFunctionalGroupHeader(t *testing.T) {
	b := testBatch()
	doc := GenerateAt(b, testClock)
	want := "GS*HC*123456789*MCD01*20250701*0930*000000077*X*005010X222A1~"
	if got := strings.Split(doc.Content, "\n")[1]; got != want {
		t.Errorf("GS = %q, want %q", got, want)
	}
}

func TestUsageIndicatorToggle(t *testing.T) {
	b := testBatch()
	b.UsageIndicator = "T"
	doc := GenerateAt(b, testClock)
	isa := strings.Split(doc.Content, "\n")[0]
	if elements := strings.Split(isa, ElementSeparator); elements[15] != "T" {
		t.Errorf("ISA15 = %q, want T", elements[15])
	}
}

func TestSuppliedControlNumbersAreDeterministic(t *testing.T) {
	b := testBatch()
	first := GenerateAt(b, testClock)
	second := GenerateAt(testBatch(), testClock)
	if first.Content != second.Content {
		t.Error("identical input with supplied control numbers must produce byte-identical output")
	}
	if first.InterchangeControlNumber != "000000042" || first.GroupControlNumber != "000000077" {
		t.Errorf("supplied control numbers not used verbatim: %q %q",
			first.InterchangeControlNumber, first.GroupControlNumber)
	}
}

func TestShortControlNumbersArePadded(t *testing.T) {
	b := testBatch()
	b.InterchangeControlNumber = "42"
	b.GroupControlNumber = "7"
	doc := GenerateAt(b, testClock)
	if doc.InterchangeControlNumber != "000000042" {
		t.Errorf("interchange control number = %q", doc.InterchangeControlNumber)
	}
	if doc.GroupControlNumber != "000000007" {
		t.Errorf("group control number = %q", doc.GroupControlNumber)
	}
	if !strings.Contains(doc.Content, "IEA*1*000000042~") {
		t.Error("padded interchange number missing from trailer")
	}
}

func TestGeneratedControlNumbersAreNineDigits(t *testing.T) {
	b := testBatch()
	b.InterchangeControlNumber = ""
	b.GroupControlNumber = ""
	doc := GenerateAt(b, testClock)

	for _, cn := range []string{doc.InterchangeControlNumber, doc.GroupControlNumber} {
		if len(cn) != 9 {
			t.Errorf("control number %q is not 9 characters", cn)
		}
		for _, r := range cn {
			if r < '0' || r > '9' {
				t.Errorf("control number %q contains non-digit", cn)
			}
		}
	}
	if !strings.Contains(doc.Content, "IEA*1*"+doc.InterchangeControlNumber+SegmentTerminator) {
		t.Error("generated interchange number not reported alongside the document")
	}
}

func TestEverySegmentTerminated(t *testing.T) {
	doc := GenerateAt(testBatch(), testClock)
	for i, line := range strings.Split(doc.Content, "\n") {
		if !strings.HasSuffix(line, SegmentTerminator) {
			t.Errorf("line %d lacks segment terminator: %q", i, line)
		}
	}
}
