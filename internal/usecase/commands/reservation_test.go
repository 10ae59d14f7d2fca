//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"atelier-store/internal/infra"
	"atelier-store/internal/pkg/clock"
	"atelier-store/internal/pkg/config"
	"atelier-store/internal/usecase/commands"
	"atelier-store/tests/common/testutil"
	commandsmock "atelier-store/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func testConfig() config.Config {
	return config.Config{
		Hold:  config.HoldConfig{Duration: 15 * time.Minute, ExpiryDebounce: 5 * time.Second},
		Sweep: config.SweepConfig{Interval: 2 * time.Minute, BatchSize: 500},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	holds    *commandsmock.MockHoldRepository
	products *commandsmock.MockProductRepository
	mirror   *commandsmock.MockAvailabilityMirror
	clock    *clock.MockClock
	commands commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.holds = commandsmock.NewMockHoldRepository(s.ctrl)
	s.products = commandsmock.NewMockProductRepository(s.ctrl)
	s.mirror = commandsmock.NewMockAvailabilityMirror(s.ctrl)
	s.clock = clock.NewMockClock(testNow)
	s.commands = commands.NewReservationCommands(
		s.holds, s.products, s.mirror, testutil.PassthroughUoW{}, s.clock, testConfig(), discardLogger(),
	)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) TestReserve_Success() {
	productID := uuid.New()
	until := testNow.Add(15 * time.Minute)

	s.products.EXPECT().
		Claim(gomock.Any(), gomock.Any(), productID, "sess-a", until, testNow).
		Return(true, nil)
	s.holds.EXPECT().
		ExpireLapsed(gomock.Any(), gomock.Any(), productID, testNow).
		Return(int64(0), nil)
	s.holds.EXPECT().
		ExpireActive(gomock.Any(), gomock.Any(), "sess-a", productID).
		Return(int64(0), nil)
	s.holds.EXPECT().
		Insert(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	s.mirror.EXPECT().
		SetHold(gomock.Any(), productID, "sess-a", until, testNow).
		Return(nil)

	hold, err := s.commands.Reserve(context.Background(), "sess-a", productID)
	s.Require().NoError(err)
	s.Equal(productID, hold.ProductID())
	s.Equal("sess-a", hold.SessionID())
	s.Equal(until, hold.ExpiresAt())
}

func (s *ReservationCommandsTestSuite) TestReserve_HeldByAnotherSession() {
	productID := uuid.New()

	s.products.EXPECT().
		Claim(gomock.Any(), gomock.Any(), productID, "sess-b", gomock.Any(), testNow).
		Return(false, nil)
	s.products.EXPECT().
		FindForUpdate(gomock.Any(), gomock.Any(), productID).
		Return(&commands.ProductSnapshot{ID: productID, Sold: false}, nil)

	_, err := s.commands.Reserve(context.Background(), "sess-b", productID)
	s.Require().ErrorIs(err, commands.ErrProductHeld)
}

func (s *ReservationCommandsTestSuite) TestReserve_SoldProduct() {
	productID := uuid.New()

	s.products.EXPECT().
		Claim(gomock.Any(), gomock.Any(), productID, "sess-a", gomock.Any(), testNow).
		Return(false, nil)
	s.products.EXPECT().
		FindForUpdate(gomock.Any(), gomock.Any(), productID).
		Return(&commands.ProductSnapshot{ID: productID, Sold: true}, nil)

	_, err := s.commands.Reserve(context.Background(), "sess-a", productID)
	s.Require().ErrorIs(err, commands.ErrProductSold)
}

func (s *ReservationCommandsTestSuite) TestReserve_UnknownProduct() {
	productID := uuid.New()

	s.products.EXPECT().
		Claim(gomock.Any(), gomock.Any(), productID, "sess-a", gomock.Any(), testNow).
		Return(false, nil)
	s.products.EXPECT().
		FindForUpdate(gomock.Any(), gomock.Any(), productID).
		Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

	_, err := s.commands.Reserve(context.Background(), "sess-a", productID)
	s.Require().ErrorIs(err, commands.ErrProductNotFound)
}

func (s *ReservationCommandsTestSuite) TestReserve_ConcurrentInsertLosesToUniqueIndex() {
	// The claim succeeded but the partial unique index caught a racing
	// insert; surfaced the same way as losing the claim itself.
	productID := uuid.New()

	s.products.EXPECT().
		Claim(gomock.Any(), gomock.Any(), productID, "sess-a", gomock.Any(), testNow).
		Return(true, nil)
	s.holds.EXPECT().
		ExpireLapsed(gomock.Any(), gomock.Any(), productID, testNow).
		Return(int64(0), nil)
	s.holds.EXPECT().
		ExpireActive(gomock.Any(), gomock.Any(), "sess-a", productID).
		Return(int64(0), nil)
	s.holds.EXPECT().
		Insert(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("duplicate active hold", nil, infra.KindConflict))

	_, err := s.commands.Reserve(context.Background(), "sess-a", productID)
	s.Require().ErrorIs(err, commands.ErrProductHeld)
}

func (s *ReservationCommandsTestSuite) TestReserve_SameSessionExtends() {
	productID := uuid.New()
	until := testNow.Add(15 * time.Minute)

	// Claim passes for the owning session even though reserved_until is in
	// the future; the prior hold row is expired and a fresh one inserted.
	s.products.EXPECT().
		Claim(gomock.Any(), gomock.Any(), productID, "sess-a", until, testNow).
		Return(true, nil)
	s.holds.EXPECT().
		ExpireLapsed(gomock.Any(), gomock.Any(), productID, testNow).
		Return(int64(0), nil)
	s.holds.EXPECT().
		ExpireActive(gomock.Any(), gomock.Any(), "sess-a", productID).
		Return(int64(1), nil)
	s.holds.EXPECT().
		Insert(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	s.mirror.EXPECT().
		SetHold(gomock.Any(), productID, "sess-a", until, testNow).
		Return(nil)

	hold, err := s.commands.Reserve(context.Background(), "sess-a", productID)
	s.Require().NoError(err)
	s.Equal(until, hold.ExpiresAt())
}

func (s *ReservationCommandsTestSuite) TestReserve_TakesOverLapsedHold() {
	// Another shopper's hold lapsed but the sweep has not visited it yet.
	// The lapsed row must be settled inside the same transaction, or the
	// partial unique index rejects the new hold.
	productID := uuid.New()
	until := testNow.Add(15 * time.Minute)

	s.products.EXPECT().
		Claim(gomock.Any(), gomock.Any(), productID, "sess-b", until, testNow).
		Return(true, nil)
	s.holds.EXPECT().
		ExpireLapsed(gomock.Any(), gomock.Any(), productID, testNow).
		Return(int64(1), nil)
	s.holds.EXPECT().
		ExpireActive(gomock.Any(), gomock.Any(), "sess-b", productID).
		Return(int64(0), nil)
	s.holds.EXPECT().
		Insert(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	s.mirror.EXPECT().
		SetHold(gomock.Any(), productID, "sess-b", until, testNow).
		Return(nil)

	hold, err := s.commands.Reserve(context.Background(), "sess-b", productID)
	s.Require().NoError(err)
	s.Equal("sess-b", hold.SessionID())
	s.Equal(until, hold.ExpiresAt())
}

func (s *ReservationCommandsTestSuite) TestReserve_MirrorFailureIsNotFatal() {
	productID := uuid.New()

	s.products.EXPECT().
		Claim(gomock.Any(), gomock.Any(), productID, "sess-a", gomock.Any(), testNow).
		Return(true, nil)
	s.holds.EXPECT().
		ExpireLapsed(gomock.Any(), gomock.Any(), productID, testNow).
		Return(int64(0), nil)
	s.holds.EXPECT().
		ExpireActive(gomock.Any(), gomock.Any(), "sess-a", productID).
		Return(int64(0), nil)
	s.holds.EXPECT().
		Insert(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	s.mirror.EXPECT().
		SetHold(gomock.Any(), productID, "sess-a", gomock.Any(), testNow).
		Return(infra.WrapRepoErr("redis down", nil, infra.KindDBFailure))

	_, err := s.commands.Reserve(context.Background(), "sess-a", productID)
	s.Require().NoError(err)
}

func (s *ReservationCommandsTestSuite) TestRelease_Idempotent() {
	productID := uuid.New()

	// Nothing matched; still a success.
	s.holds.EXPECT().
		ExpireActive(gomock.Any(), gomock.Any(), "sess-a", productID).
		Return(int64(0), nil).
		Times(2)
	s.products.EXPECT().
		ClearHold(gomock.Any(), gomock.Any(), productID, "sess-a").
		Return(false, nil).
		Times(2)
	s.mirror.EXPECT().
		ClearHold(gomock.Any(), productID, "sess-a").
		Return(nil).
		Times(2)

	s.Require().NoError(s.commands.Release(context.Background(), "sess-a", productID))
	s.Require().NoError(s.commands.Release(context.Background(), "sess-a", productID))
}

func (s *ReservationCommandsTestSuite) TestComplete_ContinuesPastPerItemFailure() {
	failing := uuid.New()
	healthy := uuid.New()

	s.holds.EXPECT().
		CompleteActive(gomock.Any(), gomock.Any(), "sess-a", failing).
		Return(false, infra.WrapRepoErr("boom", nil, infra.KindDBFailure))
	s.holds.EXPECT().
		CompleteActive(gomock.Any(), gomock.Any(), "sess-a", healthy).
		Return(true, nil)
	s.products.EXPECT().
		MarkSold(gomock.Any(), gomock.Any(), healthy).
		Return(true, nil)
	s.mirror.EXPECT().
		Delete(gomock.Any(), healthy).
		Return(nil)

	err := s.commands.Complete(context.Background(), "sess-a", []uuid.UUID{failing, healthy})
	s.Require().ErrorIs(err, commands.ErrDatabaseOperationFailed)
}
