package submission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caretrack/caretrack/internal/platform/x12"
)

type Service struct {
	repo  Repository
	usage string
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, usage: "P"}
}

// SetUsageIndicator sets the default ISA15 usage indicator applied to
// batches that do not carry their own (P for production, T for test).
func (s *Service) SetUsageIndicator(u string) {
	if u != "" {
		s.usage = u
	}
}

// ValidateBatch reports every structural defect in a batch without
// generating or persisting anything.
func (s *Service) ValidateBatch(b *x12.Batch) []x12.ValidationError {
	return x12.Validate(b)
}

// GenerateBatch validates, renders, and records one 837P file. A batch
// with validation errors is not generated; the errors come back for
// the caller to fix. The caller that wants a document regardless can
// still reach x12.Generate directly.
func (s *Service) GenerateBatch(ctx context.Context, b *x12.Batch, batchID string) (*Submission, []x12.ValidationError, error) {
	if b.UsageIndicator == "" {
		b.UsageIndicator = s.usage
	}
	if errs := x12.Validate(b); len(errs) > 0 {
		return nil, errs, nil
	}

	now := time.Now().UTC()
	doc := x12.GenerateAt(b, now)

	var total float64
	for i := range b.Claims {
		total += b.Claims[i].TotalAmount
	}

	sub := &Submission{
		Filename:                 x12.Filename(b.Provider.Name, now, batchID),
		InterchangeControlNumber: doc.InterchangeControlNumber,
		GroupControlNumber:       doc.GroupControlNumber,
		ClaimCount:               doc.ClaimCount,
		TotalAmount:              total,
		UsageIndicator:           b.UsageIndicator,
		Status:                   StatusGenerated,
		Document:                 doc.Content,
	}
	if batchID != "" {
		sub.BatchID = &batchID
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, nil, fmt.Errorf("persist submission: %w", err)
	}
	return sub, nil, nil
}

func (s *Service) GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListSubmissions(ctx context.Context, status string, limit, offset int) ([]*Submission, int, error) {
	if status != "" {
		return s.repo.ListByStatus(ctx, status, limit, offset)
	}
	return s.repo.List(ctx, limit, offset)
}

// MarkSubmitted records that the generated file was handed to the
// clearinghouse. Only a freshly generated submission can transition.
func (s *Service) MarkSubmitted(ctx context.Context, id uuid.UUID) (*Submission, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.Status != StatusGenerated {
		return nil, fmt.Errorf("submission %s is %s, expected %s", id, sub.Status, StatusGenerated)
	}
	now := time.Now().UTC()
	if err := s.repo.MarkSubmitted(ctx, id, now); err != nil {
		return nil, err
	}
	sub.Status = StatusSubmitted
	sub.SubmittedAt = &now
	return sub, nil
}

// RecordAcknowledgment parses a raw 999/277 response, stores it, and
// settles the submission as accepted or rejected.
func (s *Service) RecordAcknowledgment(ctx context.Context, id uuid.UUID, raw string) (*SubmissionAck, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := x12.ParseAcknowledgment(raw)
	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}
	ack := &SubmissionAck{
		SubmissionID: sub.ID,
		Accepted:     result.Accepted,
		Errors:       errs,
		RawText:      raw,
		ReceivedAt:   time.Now().UTC(),
	}
	if err := s.repo.AddAck(ctx, ack); err != nil {
		return nil, fmt.Errorf("persist acknowledgment: %w", err)
	}

	status := StatusRejected
	if result.Accepted {
		status = StatusAccepted
	}
	if err := s.repo.UpdateStatus(ctx, sub.ID, status); err != nil {
		return nil, fmt.Errorf("update submission status: %w", err)
	}
	return ack, nil
}

func (s *Service) GetAcknowledgments(ctx context.Context, id uuid.UUID) ([]*SubmissionAck, error) {
	return s.repo.GetAcks(ctx, id)
}
