package x12

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	npiPattern   = regexp.MustCompile(`^\d{10}$`)
	taxIDPattern = regexp.MustCompile(`^\d{9}$`)
	statePattern = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

// Validate inspects a batch and reports every structural defect it can
// find. All checks run; nothing short-circuits. An empty slice means
// the batch is safe to encode. Validate never mutates its input and
// never blocks generation, so a caller may still generate a document
// from a batch that failed validation.
func Validate(b *Batch) []ValidationError {
	errs := []ValidationError{}
	add := func(field, message string) {
		errs = append(errs, ValidationError{Field: field, Message: message})
	}

	if b.Submitter.Identifier == "" {
		add("submitter.identifier", "submitter identifier is required")
	}
	if b.Submitter.Name == "" {
		add("submitter.name", "submitter name is required")
	}
	if b.Submitter.ContactName == "" {
		add("submitter.contact_name", "submitter contact name is required")
	}
	if b.Submitter.ContactPhone == "" {
		add("submitter.contact_phone", "submitter contact phone is required")
	}

	if b.Receiver.PayerID == "" {
		add("receiver.payer_id", "receiver payer id is required")
	}
	if b.Receiver.Name == "" {
		add("receiver.name", "receiver name is required")
	}

	if !npiPattern.MatchString(b.Provider.NPI) {
		add("provider.npi", "provider NPI must be exactly 10 digits")
	}
	if !taxIDPattern.MatchString(strings.ReplaceAll(b.Provider.TaxID, "-", "")) {
		add("provider.tax_id", "provider tax id must be exactly 9 digits")
	}
	if b.Provider.TaxonomyCode == "" {
		add("provider.taxonomy_code", "provider taxonomy code is required")
	}
	if b.Provider.Name == "" {
		add("provider.name", "provider name is required")
	}
	if b.Provider.Address == "" {
		add("provider.address", "provider address is required")
	}
	if b.Provider.City == "" {
		add("provider.city", "provider city is required")
	}
	if !statePattern.MatchString(b.Provider.State) {
		add("provider.state", "provider state must be a 2-letter code")
	}
	if b.Provider.Zip == "" {
		add("provider.zip", "provider zip is required")
	}

	if len(b.Claims) == 0 {
		add("claims", "batch must contain at least one claim")
	}

	for i := range b.Claims {
		errs = append(errs, validateClaim(&b.Claims[i])...)
	}
	return errs
}

func validateClaim(c *Claim) []ValidationError {
	var errs []ValidationError
	add := func(field, message string) {
		errs = append(errs, ValidationError{Field: field, Message: message, ClaimNumber: c.ClaimNumber})
	}

	if c.ClaimNumber == "" {
		add("claim.claim_number", "claim number is required")
	}
	if c.Patient.MedicaidID == "" {
		add("claim.patient.medicaid_id", "patient medicaid id is required")
	}
	if c.Patient.FirstName == "" {
		add("claim.patient.first_name", "patient first name is required")
	}
	if c.Patient.LastName == "" {
		add("claim.patient.last_name", "patient last name is required")
	}
	if c.Patient.DateOfBirth.IsZero() {
		add("claim.patient.date_of_birth", "patient date of birth is required")
	}
	if c.Patient.Address == "" {
		add("claim.patient.address", "patient address is required")
	}
	if c.Patient.City == "" {
		add("claim.patient.city", "patient city is required")
	}
	if c.Patient.State == "" {
		add("claim.patient.state", "patient state is required")
	}
	if c.Patient.Zip == "" {
		add("claim.patient.zip", "patient zip is required")
	}

	if len(c.DiagnosisCodes) == 0 {
		add("claim.diagnosis_codes", "at least one diagnosis code is required")
	}
	if len(c.ServiceLines) == 0 {
		add("claim.service_lines", "at least one service line is required")
	}

	var lineSum float64
	for _, sl := range c.ServiceLines {
		prefix := fmt.Sprintf("claim.service_lines[%d]", sl.LineNumber)
		if sl.ProcedureCode == "" {
			add(prefix+".procedure_code", "procedure code is required")
		}
		if sl.Units <= 0 {
			add(prefix+".units", "units must be greater than zero")
		}
		if sl.LineAmount <= 0 {
			add(prefix+".line_amount", "line amount must be greater than zero")
		}
		if len(sl.DiagPointers) == 0 {
			add(prefix+".diagnosis_pointers", "at least one diagnosis pointer is required")
		}
		for _, p := range sl.DiagPointers {
			n, err := strconv.Atoi(p)
			if err != nil || n < 1 || n > len(c.DiagnosisCodes) {
				add(prefix+".diagnosis_pointers",
					fmt.Sprintf("diagnosis pointer %q does not reference a diagnosis code (claim has %d)", p, len(c.DiagnosisCodes)))
			}
		}
		lineSum += sl.LineAmount
	}

	if len(c.ServiceLines) > 0 && math.Abs(c.TotalAmount-lineSum) > 0.01+1e-9 {
		add("claim.total_amount",
			fmt.Sprintf("total amount %.2f does not match sum of line amounts %.2f", c.TotalAmount, lineSum))
	}
	return errs
}
