//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/catalog"
	"barberbook/internal/domain/invoice"
	"barberbook/internal/domain/ledger"
	"barberbook/internal/domain/policy"
	reqdto "barberbook/internal/handler/dto/request"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/config"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"
	commandsmock "barberbook/tests/mock/commands"
	queriesmock "barberbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// 07:00 UTC is 14:00 in the shop's WIB business day of 2026-01-15.
var checkoutNow = time.Date(2026, time.January, 15, 7, 0, 0, 0, time.UTC)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockBookings  *commandsmock.MockBookingRepository
	mockLedger    *commandsmock.MockLedgerRepository
	mockPolicies  *commandsmock.MockPolicyRepository
	mockCustomers *commandsmock.MockCustomerRepository
	mockCatalog   *queriesmock.MockCatalogReadStore
	clock         *clock.MockClock
	commands      commands.CheckoutCommands
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockLedger = commandsmock.NewMockLedgerRepository(s.mockCtrl)
	s.mockPolicies = commandsmock.NewMockPolicyRepository(s.mockCtrl)
	s.mockCustomers = commandsmock.NewMockCustomerRepository(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogReadStore(s.mockCtrl)
	s.clock = clock.NewMockClock(checkoutNow)

	s.commands = commands.NewCheckoutCommands(
		s.mockBookings,
		s.mockLedger,
		s.mockPolicies,
		s.mockCustomers,
		queries.NewCatalogQueries(s.mockCatalog),
		config.NewTestConfig().Shop,
		s.clock,
	)
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) catalogRows() []catalog.RawService {
	return []catalog.RawService{
		{Name: "Kids Cut", Price: "50.000", Duration: "30 Menit"},
		{Name: "Signature Cut", Price: "80.000", Duration: "45 Menit"},
		{Name: "Executive Contour", Price: "100.000", Duration: "60 Menit"},
		{Name: "Hair Spa", Price: "20.000", Duration: "30 Menit"},
	}
}

func (s *CheckoutCommandsTestSuite) pendingBooking() *booking.Booking {
	day, err := booking.ParseDate("2026-01-15")
	s.Require().NoError(err)
	start, err := booking.ParseTimeOfDay("14:00")
	s.Require().NoError(err)
	b, err := booking.NewBooking(day, start, "Budi", "081234567890", "Kenzo", "Signature Cut", checkoutNow)
	s.Require().NoError(err)
	return b
}

func (s *CheckoutCommandsTestSuite) TestCheckout() {
	s.Run("settles a plain checkout and allocates the next invoice", func() {
		entity := s.pendingBooking()
		existing := []ledger.LineItem{
			{InvoiceID: "2601001", Note: "[2601001] Ana (Tunai) - Arka", AmountMinor: 50000},
			{InvoiceID: "2601002", Note: "[2601002] Sari (QRIS) - Kenzo", AmountMinor: 80000},
		}

		s.mockBookings.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockCatalog.EXPECT().ListServices(gomock.Any()).Return(s.catalogRows(), nil)
		s.mockLedger.EXPECT().ListBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(existing, nil)
		s.mockBookings.EXPECT().Update(gomock.Any(), entity).Return(nil)

		var appended []ledger.LineItem
		s.mockLedger.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, lines []ledger.LineItem) error {
				appended = lines
				return nil
			})
		s.mockCustomers.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.commands.Checkout(context.Background(), entity.ID(), reqdto.CheckoutRequest{PaymentMethod: "Tunai"})
		s.Require().NoError(err)

		s.Equal("2601003", result.InvoiceID)
		s.Equal(int64(80000), result.GrossMinor)
		s.Equal(int64(0), result.DiscountMinor)
		s.Equal(int64(80000), result.FinalMinor)
		s.Equal("Selesai", result.Booking.Status)

		s.Require().Len(appended, 1)
		s.Equal("Jasa Signature Cut", appended[0].Label)
		s.Equal(invoice.ID("2601003"), appended[0].InvoiceID)
		s.Equal("[2601003] Budi (Tunai) - Kenzo", appended[0].Note)
	})

	s.Run("upgrade writes the marked base row plus a fee row", func() {
		entity := s.pendingBooking()
		target := "Executive Contour"

		s.mockBookings.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockCatalog.EXPECT().ListServices(gomock.Any()).Return(s.catalogRows(), nil)
		s.mockLedger.EXPECT().ListBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		s.mockBookings.EXPECT().Update(gomock.Any(), entity).Return(nil)

		var appended []ledger.LineItem
		s.mockLedger.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, lines []ledger.LineItem) error {
				appended = lines
				return nil
			})
		s.mockCustomers.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.commands.Checkout(context.Background(), entity.ID(), reqdto.CheckoutRequest{
			PaymentMethod: "QRIS",
			UpgradeTo:     &target,
		})
		s.Require().NoError(err)
		s.Equal(int64(100000), result.GrossMinor)

		s.Require().Len(appended, 2)
		s.Equal("Jasa Executive Contour (Up from Signature Cut)", appended[0].Label)
		s.Equal(int64(80000), appended[0].AmountMinor)
		s.Equal(ledger.UpgradeFeeLabel, appended[1].Label)
		s.Equal(int64(20000), appended[1].AmountMinor)
	})

	s.Run("downgrade is rejected", func() {
		entity := s.pendingBooking()
		target := "Kids Cut"

		s.mockBookings.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockCatalog.EXPECT().ListServices(gomock.Any()).Return(s.catalogRows(), nil)

		_, err := s.commands.Checkout(context.Background(), entity.ID(), reqdto.CheckoutRequest{
			PaymentMethod: "Tunai",
			UpgradeTo:     &target,
		})
		s.Require().ErrorIs(err, commands.ErrDowngradeNotAllowed)
	})

	s.Run("locked policy blocks the discount before any write", func() {
		entity := s.pendingBooking()

		s.mockBookings.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockCatalog.EXPECT().ListServices(gomock.Any()).Return(s.catalogRows(), nil)
		s.mockPolicies.EXPECT().GetDiscountPolicy(gomock.Any()).Return(policy.Locked, nil)

		_, err := s.commands.Checkout(context.Background(), entity.ID(), reqdto.CheckoutRequest{
			PaymentMethod: "Tunai",
			DiscountMinor: 10000,
		})
		s.Require().ErrorIs(err, commands.ErrDiscountLocked)
		s.Equal(booking.StatusPending, entity.Status())
	})

	s.Run("discount over 100 percent clamps to gross", func() {
		entity := s.pendingBooking()

		s.mockBookings.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockCatalog.EXPECT().ListServices(gomock.Any()).Return(s.catalogRows(), nil)
		s.mockPolicies.EXPECT().GetDiscountPolicy(gomock.Any()).Return(policy.Unlocked, nil)
		s.mockLedger.EXPECT().ListBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		s.mockBookings.EXPECT().Update(gomock.Any(), entity).Return(nil)
		s.mockLedger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		s.mockCustomers.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.commands.Checkout(context.Background(), entity.ID(), reqdto.CheckoutRequest{
			PaymentMethod:   "Tunai",
			DiscountPercent: 150,
		})
		s.Require().NoError(err)
		s.Equal(int64(80000), result.DiscountMinor)
		s.Equal(int64(0), result.FinalMinor)
	})

	s.Run("legacy bracket notes feed the invoice sequence", func() {
		entity := s.pendingBooking()
		existing := []ledger.LineItem{
			{Note: "[2601009] Ana (Tunai) - Arka", AmountMinor: 50000},
		}

		s.mockBookings.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockCatalog.EXPECT().ListServices(gomock.Any()).Return(s.catalogRows(), nil)
		s.mockLedger.EXPECT().ListBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(existing, nil)
		s.mockBookings.EXPECT().Update(gomock.Any(), entity).Return(nil)
		s.mockLedger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		s.mockCustomers.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.commands.Checkout(context.Background(), entity.ID(), reqdto.CheckoutRequest{PaymentMethod: "Tunai"})
		s.Require().NoError(err)
		s.Equal("2601010", result.InvoiceID)
	})

	s.Run("invalid payment method fails fast", func() {
		entity := s.pendingBooking()
		s.mockBookings.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.commands.Checkout(context.Background(), entity.ID(), reqdto.CheckoutRequest{PaymentMethod: "Card"})
		s.Require().ErrorIs(err, commands.ErrInvalidPaymentMethod)
	})

	s.Run("racing checkouts settle exactly once", func() {
		entity := s.pendingBooking()

		// Both calls read a fresh Pending snapshot, as reads landing before
		// either update would.
		s.mockBookings.EXPECT().FindByID(gomock.Any(), entity.ID()).
			DoAndReturn(func(context.Context, uuid.UUID) (*booking.Booking, error) {
				return s.pendingBooking(), nil
			}).Times(2)
		s.mockCatalog.EXPECT().ListServices(gomock.Any()).Return(s.catalogRows(), nil).Times(2)
		s.mockLedger.EXPECT().ListBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

		var (
			storeMu sync.Mutex
			settled bool
			appends int
		)
		s.mockBookings.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, *booking.Booking) error {
				storeMu.Lock()
				defer storeMu.Unlock()
				if settled {
					return infra.WrapRepoErr("booking is no longer pending", nil, infra.KindConflict)
				}
				settled = true
				return nil
			}).Times(2)
		s.mockLedger.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, []ledger.LineItem) error {
				storeMu.Lock()
				defer storeMu.Unlock()
				appends++
				return nil
			}).AnyTimes()
		s.mockCustomers.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		errc := make(chan error, 2)
		for i := 0; i < 2; i++ {
			go func() {
				_, err := s.commands.Checkout(context.Background(), entity.ID(), reqdto.CheckoutRequest{PaymentMethod: "Tunai"})
				errc <- err
			}()
		}

		var successes, conflicts int
		for i := 0; i < 2; i++ {
			switch err := <-errc; {
			case err == nil:
				successes++
			case errors.Is(err, commands.ErrAlreadySettled):
				conflicts++
			default:
				s.FailNowf("unexpected checkout error", "%v", err)
			}
		}
		s.Equal(1, successes)
		s.Equal(1, conflicts)
		s.Equal(1, appends)
	})

	s.Run("settled booking cannot be checked out again", func() {
		entity := s.pendingBooking()
		s.Require().NoError(entity.Complete("2601001", 0, 80000))
		s.mockBookings.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.commands.Checkout(context.Background(), entity.ID(), reqdto.CheckoutRequest{PaymentMethod: "Tunai"})
		s.Require().ErrorIs(err, commands.ErrAlreadySettled)
	})

	s.Run("unknown add-on fails the checkout", func() {
		entity := s.pendingBooking()
		s.mockBookings.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockCatalog.EXPECT().ListServices(gomock.Any()).Return(s.catalogRows(), nil)

		_, err := s.commands.Checkout(context.Background(), entity.ID(), reqdto.CheckoutRequest{
			PaymentMethod: "Tunai",
			AddOns:        []string{"Retired Service"},
		})
		s.Require().ErrorIs(err, commands.ErrServiceNotFound)
	})
}

func (s *CheckoutCommandsTestSuite) TestCheckoutWalkIn() {
	s.Run("creates and settles at the rounded current slot", func() {
		// 07:10 UTC is 14:10 WIB; the walk-in lands on the 14:00 grid slot.
		s.clock.Set(time.Date(2026, time.January, 15, 7, 10, 0, 0, time.UTC))

		var created *booking.Booking
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				created = b
				return nil
			})
		s.mockCatalog.EXPECT().ListServices(gomock.Any()).Return(s.catalogRows(), nil)
		s.mockLedger.EXPECT().ListBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		s.mockBookings.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		s.mockLedger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		s.mockCustomers.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.commands.CheckoutWalkIn(context.Background(), reqdto.WalkInCheckoutRequest{
			CustomerName:  "Sari",
			CustomerPhone: "0813-0000-1111",
			Barber:        "Arka",
			Service:       "Signature Cut",
			Checkout:      reqdto.CheckoutRequest{PaymentMethod: "QRIS"},
		})
		s.Require().NoError(err)

		s.Equal("2601001", result.InvoiceID)
		s.Require().NotNil(created)
		s.Equal("14:00", created.Start().String())
		s.Equal("2026-01-15", created.Date().String())
		s.Equal(booking.StatusSelesai, created.Status())
	})
}
