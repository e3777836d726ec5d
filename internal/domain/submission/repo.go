package submission

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, s *Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (*Submission, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	MarkSubmitted(ctx context.Context, id uuid.UUID, at time.Time) error
	List(ctx context.Context, limit, offset int) ([]*Submission, int, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*Submission, int, error)
	// Acknowledgments
	AddAck(ctx context.Context, a *SubmissionAck) error
	GetAcks(ctx context.Context, submissionID uuid.UUID) ([]*SubmissionAck, error)
}
