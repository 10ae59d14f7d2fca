//go:build unit

package commands_test

import (
	"context"
	"testing"

	"atelier-store/internal/pkg/clock"
	"atelier-store/internal/pkg/errs"
	"atelier-store/internal/usecase/commands"
	"atelier-store/internal/usecase/queries"
	commandsmock "atelier-store/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotifyCommands_DeliverPending(t *testing.T) {
	newJobs := func() []*queries.NotificationJobView {
		return []*queries.NotificationJobView{
			{ID: uuid.New(), Kind: "email", Topic: "order_confirmation", Payload: []byte(`{"order_id":"1"}`)},
			{ID: uuid.New(), Kind: "email", Topic: "order_confirmation", Payload: []byte(`{"order_id":"2"}`)},
		}
	}

	t.Run("delivers and marks each job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockNotificationRepository(ctrl)
		mailer := commandsmock.NewMockMailer(ctrl)
		jobs := newJobs()

		repo.EXPECT().FindPending(gomock.Any(), testNow, int32(50)).Return(jobs, nil)
		for _, job := range jobs {
			mailer.EXPECT().Send(gomock.Any(), job.Topic, job.Payload).Return(nil)
			repo.EXPECT().MarkDelivered(gomock.Any(), job.ID).Return(nil)
		}

		cmd := commands.NewNotifyCommands(repo, mailer, clock.NewMockClock(testNow), discardLogger())
		delivered, err := cmd.DeliverPending(context.Background())
		require.NoError(t, err)
		require.Equal(t, 2, delivered)
	})

	t.Run("failed send is recorded and does not block the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockNotificationRepository(ctrl)
		mailer := commandsmock.NewMockMailer(ctrl)
		jobs := newJobs()

		repo.EXPECT().FindPending(gomock.Any(), testNow, int32(50)).Return(jobs, nil)
		mailer.EXPECT().Send(gomock.Any(), jobs[0].Topic, jobs[0].Payload).Return(errs.New("smtp down"))
		repo.EXPECT().MarkFailed(gomock.Any(), jobs[0].ID, "smtp down").Return(nil)
		mailer.EXPECT().Send(gomock.Any(), jobs[1].Topic, jobs[1].Payload).Return(nil)
		repo.EXPECT().MarkDelivered(gomock.Any(), jobs[1].ID).Return(nil)

		cmd := commands.NewNotifyCommands(repo, mailer, clock.NewMockClock(testNow), discardLogger())
		delivered, err := cmd.DeliverPending(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, delivered)
	})

	t.Run("nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockNotificationRepository(ctrl)
		mailer := commandsmock.NewMockMailer(ctrl)

		repo.EXPECT().FindPending(gomock.Any(), testNow, int32(50)).Return(nil, nil)

		cmd := commands.NewNotifyCommands(repo, mailer, clock.NewMockClock(testNow), discardLogger())
		delivered, err := cmd.DeliverPending(context.Background())
		require.NoError(t, err)
		require.Zero(t, delivered)
	})
}
