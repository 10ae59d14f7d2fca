package commands

import (
	"context"
	"log/slog"

	"atelier-store/internal/pkg/clock"
)

const notifyBatchSize = 50

// Mailer is the transactional-email collaborator. Deliveries are
// fire-and-forget from the shopper's perspective; a failure is recorded on
// the job and retried on a later pass.
type Mailer interface {
	Send(ctx context.Context, topic string, payload []byte) error
}

type NotifyCommands interface {
	DeliverPending(ctx context.Context) (int, error)
}

type notifyCommandsImpl struct {
	jobs   NotificationRepository
	mailer Mailer
	clock  clock.Clock
	logger *slog.Logger
}

func NewNotifyCommands(jobs NotificationRepository, mailer Mailer, clock clock.Clock, logger *slog.Logger) NotifyCommands {
	return &notifyCommandsImpl{
		jobs:   jobs,
		mailer: mailer,
		clock:  clock,
		logger: logger,
	}
}

func (n *notifyCommandsImpl) DeliverPending(ctx context.Context) (int, error) {
	pending, err := n.jobs.FindPending(ctx, n.clock.Now(), notifyBatchSize)
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, job := range pending {
		if err := n.mailer.Send(ctx, job.Topic, job.Payload); err != nil {
			n.logger.Warn("notification delivery failed",
				"job_id", job.ID, "topic", job.Topic, "error", err.Error())
			if markErr := n.jobs.MarkFailed(ctx, job.ID, err.Error()); markErr != nil {
				n.logger.Error("failed to record notification failure",
					"job_id", job.ID, "error", markErr.Error())
			}
			continue
		}

		if err := n.jobs.MarkDelivered(ctx, job.ID); err != nil {
			n.logger.Error("failed to mark notification delivered",
				"job_id", job.ID, "error", err.Error())
			continue
		}
		delivered++
	}

	return delivered, nil
}
