package x12

import "time"

// Submitter identifies the organization submitting the claim batch
// (the 1000A loop of the 837P).
type Submitter struct {
	Name         string `json:"name"`
	Identifier   string `json:"identifier"` // ETIN or NPI
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email,omitempty"`
}

// Receiver identifies the payer the batch is addressed to (loop 1000B).
type Receiver struct {
	Name    string `json:"name"`
	PayerID string `json:"payer_id"`
}

// Provider is the billing provider (loop 2010AA). All fields except
// Phone are required.
type Provider struct {
	NPI          string `json:"npi"`    // exactly 10 digits
	TaxID        string `json:"tax_id"` // 9 digits, hyphens tolerated
	TaxonomyCode string `json:"taxonomy_code"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"` // 2-letter code
	Zip          string `json:"zip"`
	Phone        string `json:"phone,omitempty"`
}

// Patient is the claim subscriber. Medicaid claims carry the patient at
// the subscriber level, so there is no separate patient loop.
type Patient struct {
	MedicaidID  string    `json:"medicaid_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	MiddleName  string    `json:"middle_name,omitempty"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender,omitempty"` // M, F or U; empty renders as U
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Zip         string    `json:"zip"`
}

// ServiceLine is one billed service (loop 2400).
type ServiceLine struct {
	LineNumber     int       `json:"line_number"` // 1-based, unique within the claim
	ServiceDate    time.Time `json:"service_date"`
	ProcedureCode  string    `json:"procedure_code"` // HCPCS
	Modifiers      []string  `json:"modifiers,omitempty"`
	Units          float64   `json:"units"`
	UnitRate       float64   `json:"unit_rate"`
	LineAmount     float64   `json:"line_amount"` // supplied, not derived from units*rate
	DiagPointers   []string  `json:"diagnosis_pointers"`
	PlaceOfService string    `json:"place_of_service,omitempty"` // overrides the claim's
	Description    string    `json:"description,omitempty"`
}

// Claim is one professional claim, rendered as one ST..SE transaction set.
type Claim struct {
	ClaimNumber     string        `json:"claim_number"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	Patient         Patient       `json:"patient"`
	DiagnosisCodes  []string      `json:"diagnosis_codes"` // ICD-10, 1..12, first is principal
	TotalAmount     float64       `json:"total_amount"`
	PlaceOfService  string        `json:"place_of_service"` // e.g. 12 = home
	FrequencyCode   string        `json:"frequency_code,omitempty"`
	PriorAuthNumber string        `json:"prior_auth_number,omitempty"`
	ServiceLines    []ServiceLine `json:"service_lines"`
	Notes           string        `json:"notes,omitempty"`
}

// Batch is the unit of one generation call: one interchange containing
// one functional group with one transaction set per claim.
type Batch struct {
	Submitter Submitter `json:"submitter"`
	Receiver  Receiver  `json:"receiver"`
	Provider  Provider  `json:"provider"`
	Claims    []Claim   `json:"claims"`

	// Control numbers are generated when empty; supplying them makes
	// re-generation deterministic.
	InterchangeControlNumber string `json:"interchange_control_number,omitempty"`
	GroupControlNumber       string `json:"group_control_number,omitempty"`

	// UsageIndicator sets ISA15; empty means production ("P").
	UsageIndicator string `json:"usage_indicator,omitempty"`
}

// Document is the generated EDI artifact together with the control
// numbers that ended up in its envelope.
type Document struct {
	Content                  string `json:"content"`
	InterchangeControlNumber string `json:"interchange_control_number"`
	GroupControlNumber       string `json:"group_control_number"`
	ClaimCount               int    `json:"claim_count"`
}

// ValidationError is one structural defect found in a Batch. ClaimNumber
// is set for claim-level findings only.
type ValidationError struct {
	Field       string `json:"field"`
	Message     string `json:"message"`
	ClaimNumber string `json:"claim_number,omitempty"`
}

// AckResult is the outcome of scanning a 999/277 acknowledgment file.
type AckResult struct {
	Accepted bool     `json:"accepted"`
	Errors   []string `json:"errors,omitempty"`
}
