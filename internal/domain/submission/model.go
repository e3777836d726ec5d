package submission

import (
	"time"

	"github.com/google/uuid"
)

// Submission lifecycle. A record is created as generated, moves to
// submitted when the file is handed to the clearinghouse, and settles
// as accepted or rejected once an acknowledgment arrives.
const (
	StatusGenerated = "generated"
	StatusSubmitted = "submitted"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
)

// Submission maps to the edi_submission table: one generated 837P file
// and its envelope bookkeeping.
type Submission struct {
	ID                       uuid.UUID  `db:"id" json:"id"`
	BatchID                  *string    `db:"batch_id" json:"batch_id,omitempty"`
	Filename                 string     `db:"filename" json:"filename"`
	InterchangeControlNumber string     `db:"interchange_control_number" json:"interchange_control_number"`
	GroupControlNumber       string     `db:"group_control_number" json:"group_control_number"`
	ClaimCount               int        `db:"claim_count" json:"claim_count"`
	TotalAmount              float64    `db:"total_amount" json:"total_amount"`
	UsageIndicator           string     `db:"usage_indicator" json:"usage_indicator"`
	Status                   string     `db:"status" json:"status"`
	Document                 string     `db:"document" json:"-"`
	SubmittedAt              *time.Time `db:"submitted_at" json:"submitted_at,omitempty"`
	CreatedAt                time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt                time.Time  `db:"updated_at" json:"updated_at"`
}

// SubmissionAck maps to the edi_submission_ack table: one payer
// acknowledgment received for a submission.
type SubmissionAck struct {
	ID           uuid.UUID `db:"id" json:"id"`
	SubmissionID uuid.UUID `db:"submission_id" json:"submission_id"`
	Accepted     bool      `db:"accepted" json:"accepted"`
	Errors       []string  `db:"errors" json:"errors,omitempty"`
	RawText      string    `db:"raw_text" json:"-"`
	ReceivedAt   time.Time `db:"received_at" json:"received_at"`
}
