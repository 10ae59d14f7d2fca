//go:build unit

package commands_test

import (
	"context"
	"testing"

	"atelier-store/internal/infra"
	"atelier-store/internal/pkg/clock"
	"atelier-store/internal/usecase/commands"
	"atelier-store/internal/usecase/queries"
	"atelier-store/tests/common/testutil"
	commandsmock "atelier-store/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	orders        *commandsmock.MockOrderRepository
	notifications *commandsmock.MockNotificationRepository
	finder        *commandsmock.MockHoldFinder
	reservations  *commandsmock.MockReservationCommands
	commands      commands.CheckoutCommands
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.orders = commandsmock.NewMockOrderRepository(s.ctrl)
	s.notifications = commandsmock.NewMockNotificationRepository(s.ctrl)
	s.finder = commandsmock.NewMockHoldFinder(s.ctrl)
	s.reservations = commandsmock.NewMockReservationCommands(s.ctrl)
	s.commands = commands.NewCheckoutCommands(
		s.orders, s.notifications, s.finder, s.reservations,
		testutil.PassthroughUoW{}, clock.NewMockClock(testNow), discardLogger(),
	)
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func successEvent() commands.PaymentEvent {
	return commands.PaymentEvent{
		IntentID:  "pi_123",
		Outcome:   commands.PaymentSucceeded,
		SessionID: "sess-a",
		Email:     "shopper@example.com",
		Items: []commands.CartSnapshotItem{
			{ProductID: uuid.New(), Name: "ceramic vase", PriceCents: 4200},
			{ProductID: uuid.New(), Name: "walnut bowl", PriceCents: 6800},
		},
	}
}

func (s *CheckoutCommandsTestSuite) TestSuccess_CreatesOrderCompletesHoldsEnqueuesMail() {
	evt := successEvent()
	productIDs := []uuid.UUID{evt.Items[0].ProductID, evt.Items[1].ProductID}

	s.orders.EXPECT().ExistsByPaymentIntent(gomock.Any(), "pi_123").Return(false, nil)
	s.orders.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.reservations.EXPECT().Complete(gomock.Any(), "sess-a", productIDs).Return(nil)
	s.notifications.EXPECT().
		CreateJob(gomock.Any(), gomock.Any(), "email", "order_confirmation", gomock.Any(), testNow).
		Return(nil)

	s.Require().NoError(s.commands.HandlePaymentOutcome(context.Background(), evt))
}

func (s *CheckoutCommandsTestSuite) TestSuccess_RedeliverySkipsOrderAndMailButSettlesHolds() {
	evt := successEvent()
	productIDs := []uuid.UUID{evt.Items[0].ProductID, evt.Items[1].ProductID}

	// payment_intent_id already has an order: no second insert and no second
	// confirmation mail. The completion still runs because the first
	// delivery may have died between the order commit and consuming the
	// holds; completing already-completed holds is a no-op.
	s.orders.EXPECT().ExistsByPaymentIntent(gomock.Any(), "pi_123").Return(true, nil)
	s.reservations.EXPECT().Complete(gomock.Any(), "sess-a", productIDs).Return(nil)

	s.Require().NoError(s.commands.HandlePaymentOutcome(context.Background(), evt))
}

func (s *CheckoutCommandsTestSuite) TestSuccess_ConcurrentInsertLoserStillSettlesHolds() {
	evt := successEvent()
	productIDs := []uuid.UUID{evt.Items[0].ProductID, evt.Items[1].ProductID}

	// Two deliveries raced past the existence check; the unique index picks
	// one insert winner and the loser behaves like a redelivery.
	s.orders.EXPECT().ExistsByPaymentIntent(gomock.Any(), "pi_123").Return(false, nil)
	s.orders.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.reservations.EXPECT().Complete(gomock.Any(), "sess-a", productIDs).Return(nil)

	s.Require().NoError(s.commands.HandlePaymentOutcome(context.Background(), evt))
}

func (s *CheckoutCommandsTestSuite) TestSuccess_DownstreamFailuresDoNotFailTheOrder() {
	evt := successEvent()
	productIDs := []uuid.UUID{evt.Items[0].ProductID, evt.Items[1].ProductID}

	s.orders.EXPECT().ExistsByPaymentIntent(gomock.Any(), "pi_123").Return(false, nil)
	s.orders.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.reservations.EXPECT().Complete(gomock.Any(), "sess-a", productIDs).
		Return(commands.ErrDatabaseOperationFailed)
	s.notifications.EXPECT().
		CreateJob(gomock.Any(), gomock.Any(), "email", "order_confirmation", gomock.Any(), testNow).
		Return(infra.WrapRepoErr("boom", nil, infra.KindDBFailure))

	// The payment is captured; the caller must still see success.
	s.Require().NoError(s.commands.HandlePaymentOutcome(context.Background(), evt))
}

func (s *CheckoutCommandsTestSuite) TestSuccess_EmptySnapshotRejected() {
	evt := successEvent()
	evt.Items = nil

	err := s.commands.HandlePaymentOutcome(context.Background(), evt)
	s.Require().ErrorIs(err, commands.ErrInvalidCartSnapshot)
}

func (s *CheckoutCommandsTestSuite) TestFailure_ReleasesEverySessionHold() {
	p1, p2 := uuid.New(), uuid.New()
	evt := commands.PaymentEvent{
		IntentID:  "pi_456",
		Outcome:   commands.PaymentFailed,
		SessionID: "sess-a",
	}

	s.finder.EXPECT().FindActiveBySessionAny(gomock.Any(), "sess-a").Return([]*queries.HoldView{
		{ID: uuid.New(), ProductID: p1, SessionID: "sess-a"},
		{ID: uuid.New(), ProductID: p2, SessionID: "sess-a"},
	}, nil)
	s.reservations.EXPECT().Release(gomock.Any(), "sess-a", p1).Return(nil)
	s.reservations.EXPECT().Release(gomock.Any(), "sess-a", p2).Return(nil)

	s.Require().NoError(s.commands.HandlePaymentOutcome(context.Background(), evt))
}

func (s *CheckoutCommandsTestSuite) TestFailure_RedeliveryWithNothingLeftIsNoOp() {
	evt := commands.PaymentEvent{
		IntentID:  "pi_456",
		Outcome:   commands.PaymentFailed,
		SessionID: "sess-a",
	}

	s.finder.EXPECT().FindActiveBySessionAny(gomock.Any(), "sess-a").Return(nil, nil)

	s.Require().NoError(s.commands.HandlePaymentOutcome(context.Background(), evt))
}

func (s *CheckoutCommandsTestSuite) TestUnknownOutcome() {
	evt := commands.PaymentEvent{IntentID: "pi_789", Outcome: "refunded"}
	err := s.commands.HandlePaymentOutcome(context.Background(), evt)
	s.Require().ErrorIs(err, commands.ErrUnknownPaymentOutcome)
}
