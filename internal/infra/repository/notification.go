package repository

import (
	"context"
	"time"

	"atelier-store/internal/infra"
	"atelier-store/internal/infra/db"
	"atelier-store/internal/pkg/pgconv"
	"atelier-store/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// NotificationRepository is the outbox for fire-and-forget order emails. Jobs
// are written in the finalizer's best-effort phase and drained by the
// notifier runner; a delivery failure is recorded, never surfaced to the
// shopper.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(pool db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: pool}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const q = `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status)
		VALUES ($1, $2, $3, $4, $5, 'queued')`

	_, err := tx.Exec(ctx, q, uuid.New(), kind, topic, payload, pgconv.TimeToPgtype(runAt))
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

func (r *NotificationRepository) FindPending(ctx context.Context, now time.Time, limit int32) ([]*queries.NotificationJobView, error) {
	const q = `
		SELECT id, kind, topic, payload, run_at, attempts, status, last_error
		FROM notification_jobs
		WHERE status = 'queued' AND run_at <= $1
		ORDER BY run_at
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, pgconv.TimeToPgtype(now), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pending notification jobs", err)
	}
	defer rows.Close()

	var result []*queries.NotificationJobView
	for rows.Next() {
		var (
			job       queries.NotificationJobView
			runAt     pgtype.Timestamptz
			lastError pgtype.Text
		)
		if err := rows.Scan(&job.ID, &job.Kind, &job.Topic, &job.Payload, &runAt, &job.Attempts, &job.Status, &lastError); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		job.RunAt = pgconv.TimeFromPgtype(runAt)
		job.LastError = pgconv.StringPtrFromPgtype(lastError)
		result = append(result, &job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
	}

	return result, nil
}

func (r *NotificationRepository) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	const q = `
		UPDATE notification_jobs
		SET status = 'delivered', attempts = attempts + 1, updated_at = now()
		WHERE id = $1`

	if _, err := r.db.Exec(ctx, q, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification delivered", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error {
	const q = `
		UPDATE notification_jobs
		SET attempts = attempts + 1, last_error = $2, updated_at = now()
		WHERE id = $1`

	if _, err := r.db.Exec(ctx, q, id, pgconv.StringToPgtype(lastError)); err != nil {
		return infra.WrapRepoErr("failed to mark notification failed", err)
	}
	return nil
}
