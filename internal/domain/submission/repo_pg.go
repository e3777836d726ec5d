package submission

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const subCols = `id, batch_id, filename, interchange_control_number, group_control_number,
	claim_count, total_amount, usage_indicator, status, document,
	submitted_at, created_at, updated_at`

func (r *repoPG) scanSubmission(row pgx.Row) (*Submission, error) {
	var s Submission
	err := row.Scan(&s.ID, &s.BatchID, &s.Filename, &s.InterchangeControlNumber, &s.GroupControlNumber,
		&s.ClaimCount, &s.TotalAmount, &s.UsageIndicator, &s.Status, &s.Document,
		&s.SubmittedAt, &s.CreatedAt, &s.UpdatedAt)
	return &s, err
}

func (r *repoPG) Create(ctx context.Context, s *Submission) error {
	s.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO edi_submission (id, batch_id, filename,
			interchange_control_number, group_control_number,
			claim_count, total_amount, usage_indicator, status, document)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING created_at, updated_at`,
		s.ID, s.BatchID, s.Filename,
		s.InterchangeControlNumber, s.GroupControlNumber,
		s.ClaimCount, s.TotalAmount, s.UsageIndicator, s.Status, s.Document).
		Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Submission, error) {
	return r.scanSubmission(r.pool.QueryRow(ctx, `SELECT `+subCols+` FROM edi_submission WHERE id = $1`, id))
}

func (r *repoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx, `UPDATE edi_submission SET status=$2, updated_at=NOW() WHERE id = $1`, id, status)
	return err
}

func (r *repoPG) MarkSubmitted(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE edi_submission SET status=$2, submitted_at=$3, updated_at=NOW()
		WHERE id = $1`, id, StatusSubmitted, at)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Submission, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM edi_submission`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+subCols+` FROM edi_submission ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Submission
	for rows.Next() {
		s, err := r.scanSubmission(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	return items, total, nil
}

func (r *repoPG) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*Submission, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM edi_submission WHERE status = $1`, status).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+subCols+` FROM edi_submission WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Submission
	for rows.Next() {
		s, err := r.scanSubmission(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	return items, total, nil
}

func (r *repoPG) AddAck(ctx context.Context, a *SubmissionAck) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO edi_submission_ack (id, submission_id, accepted, errors, raw_text, received_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		a.ID, a.SubmissionID, a.Accepted, a.Errors, a.RawText, a.ReceivedAt)
	return err
}

func (r *repoPG) GetAcks(ctx context.Context, submissionID uuid.UUID) ([]*SubmissionAck, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, submission_id, accepted, errors, raw_text, received_at
		FROM edi_submission_ack WHERE submission_id = $1 ORDER BY received_at DESC`, submissionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*SubmissionAck
	for rows.Next() {
		var a SubmissionAck
		if err := rows.Scan(&a.ID, &a.SubmissionID, &a.Accepted, &a.Errors, &a.RawText, &a.ReceivedAt); err != nil {
			return nil, err
		}
		items = append(items, &a)
	}
	return items, nil
}
