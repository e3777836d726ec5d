package x12

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// transaction accumulates the segments of one ST..SE transaction set.
// Each claim gets its own value so segment counts can never leak
// between claims or batches.
type transaction struct {
	segments []string
}

func (t *transaction) add(elements ...string) {
	t.segments = append(t.segments, buildSegment(elements...))
}

// assembleClaim renders one claim as a complete 837P transaction set.
// setNumber is the 1-based position of the claim within the batch and
// becomes the 4-digit transaction-set control number in ST02 and SE02.
func assembleClaim(b *Batch, c *Claim, setNumber int, at time.Time) []string {
	ctrl := transactionControlNumber(setNumber)
	t := &transaction{}

	t.add("ST", "837", ctrl, "005010X222A1")
	t.add("BHT", "0019", "00", cleanText(c.ClaimNumber), formatDate(at), formatClock(at), "CH")

	// 1000A submitter
	t.add("NM1", "41", "2", cleanText(b.Submitter.Name), "", "", "", "", "46", cleanText(b.Submitter.Identifier))
	per := []string{"PER", "IC", cleanText(b.Submitter.ContactName), "TE", formatPhone(b.Submitter.ContactPhone)}
	if b.Submitter.ContactEmail != "" {
		per = append(per, "EM", cleanText(b.Submitter.ContactEmail))
	}
	t.add(per...)

	// 1000B receiver
	t.add("NM1", "40", "2", cleanText(b.Receiver.Name), "", "", "", "", "46", cleanText(b.Receiver.PayerID))

	// 2000A billing provider hierarchical level
	t.add("HL", "1", "", "20", "1")
	t.add("PRV", "BI", "PXC", cleanText(b.Provider.TaxonomyCode))
	t.add("NM1", "85", "2", cleanText(b.Provider.Name), "", "", "", "", "XX", cleanText(b.Provider.NPI))
	t.add("N3", cleanText(b.Provider.Address))
	t.add("N4", cleanText(b.Provider.City), cleanText(b.Provider.State), cleanText(b.Provider.Zip))
	t.add("REF", "EI", formatPhone(b.Provider.TaxID))

	// 2000B subscriber hierarchical level. Medicaid home care has no
	// separate patient level; the patient is the subscriber.
	t.add("HL", "2", "1", "22", "0")
	t.add("SBR", "P", "18", "", "", "MC", "", "", "", "MC")
	t.add("NM1", "IL", "1",
		cleanText(c.Patient.LastName), cleanText(c.Patient.FirstName), cleanText(c.Patient.MiddleName),
		"", "", "MI", cleanText(c.Patient.MedicaidID))
	t.add("N3", cleanText(c.Patient.Address))
	t.add("N4", cleanText(c.Patient.City), cleanText(c.Patient.State), cleanText(c.Patient.Zip))
	gender := c.Patient.Gender
	if gender == "" {
		gender = "U"
	}
	t.add("DMG", "D8", formatDate(c.Patient.DateOfBirth), cleanText(gender))

	// 2010BB payer
	t.add("NM1", "PR", "2", cleanText(b.Receiver.Name), "", "", "", "", "PI", cleanText(b.Receiver.PayerID))

	// 2300 claim
	freq := c.FrequencyCode
	if freq == "" {
		freq = "1"
	}
	t.add("CLM", cleanText(c.ClaimNumber), formatAmount(c.TotalAmount), "", "",
		composite(cleanText(c.PlaceOfService), "B", cleanText(freq)),
		"Y", "A", "Y", "Y")
	if c.StartDate.Equal(c.EndDate) {
		t.add("DTP", "472", "D8", formatDate(c.StartDate))
	} else {
		t.add("DTP", "472", "RD8", formatDate(c.StartDate)+"-"+formatDate(c.EndDate))
	}
	if c.PriorAuthNumber != "" {
		t.add("REF", "G1", cleanText(c.PriorAuthNumber))
	}
	t.add(append([]string{"HI"}, diagnosisElements(c.DiagnosisCodes)...)...)

	// 2400 service lines, ascending line number
	lines := make([]ServiceLine, len(c.ServiceLines))
	copy(lines, c.ServiceLines)
	sort.Slice(lines, func(i, j int) bool { return lines[i].LineNumber < lines[j].LineNumber })
	for _, sl := range lines {
		t.add("LX", strconv.Itoa(sl.LineNumber))
		pos := sl.PlaceOfService
		if pos == "" {
			pos = c.PlaceOfService
		}
		proc := []string{"HC", cleanText(sl.ProcedureCode)}
		for _, m := range sl.Modifiers {
			proc = append(proc, cleanText(m))
		}
		pointers := make([]string, len(sl.DiagPointers))
		for i, p := range sl.DiagPointers {
			pointers[i] = cleanText(p)
		}
		t.add("SV1", composite(proc...), formatAmount(sl.LineAmount), "UN",
			formatAmount(sl.Units), cleanText(pos), "", composite(pointers...))
		t.add("DTP", "472", "D8", formatDate(sl.ServiceDate))
	}

	// SE counts every segment of the set, itself included.
	t.add("SE", strconv.Itoa(len(t.segments)+1), ctrl)
	return t.segments
}

// diagnosisElements builds the HI element list: the principal diagnosis
// qualified ABK, every following one ABF, periods stripped, capped at
// the 12 codes the segment allows.
func diagnosisElements(codes []string) []string {
	if len(codes) > 12 {
		codes = codes[:12]
	}
	elements := []string{"HI"}
	for i, code := range codes {
		qualifier := "ABF"
		if i == 0 {
			qualifier = "ABK"
		}
		code = strings.ReplaceAll(cleanText(code), ".", "")
		elements = append(elements, composite(qualifier, code))
	}
	return elements
}
