//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/catalog"
	reqdto "barberbook/internal/handler/dto/request"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/config"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"
	"barberbook/internal/usecase/shared"
	commandsmock "barberbook/tests/mock/commands"
	queriesmock "barberbook/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockBookings  *commandsmock.MockBookingRepository
	mockCustomers *commandsmock.MockCustomerRepository
	mockCatalog   *queriesmock.MockCatalogReadStore
	clock         *clock.MockClock
	commands      commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockCustomers = commandsmock.NewMockCustomerRepository(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogReadStore(s.mockCtrl)
	// 07:00 UTC is 14:00 WIB on 2026-01-15.
	s.clock = clock.NewMockClock(time.Date(2026, time.January, 15, 7, 0, 0, 0, time.UTC))

	s.commands = commands.NewBookingCommands(
		s.mockBookings,
		s.mockCustomers,
		queries.NewCatalogQueries(s.mockCatalog),
		config.NewTestConfig().Shop,
		s.clock,
		shared.NewKeyedMutex(),
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) createRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Date:          "2026-01-16",
		Start:         "14:00",
		CustomerName:  "Budi",
		CustomerPhone: "0812-3456-7890",
		Barber:        "Kenzo",
		Service:       "Signature Cut",
	}
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("creates a booking on a free slot", func() {
		req := s.createRequest()
		s.expectServices()
		s.mockBookings.EXPECT().ListActiveByBarberDate(gomock.Any(), "Kenzo", gomock.Any()).Return(nil, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockCustomers.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		view, err := s.commands.CreateBooking(context.Background(), req)
		s.Require().NoError(err)
		s.Equal("Pending", view.Status)
		s.Equal("14:00", view.Start)
		s.Equal("2026-01-16", view.Date)
	})

	s.Run("overlapping booking is rejected", func() {
		req := s.createRequest()
		existing := s.existingBooking("2026-01-16", "13:30", "Signature Cut")
		s.expectServices()
		s.mockBookings.EXPECT().ListActiveByBarberDate(gomock.Any(), "Kenzo", gomock.Any()).
			Return([]*booking.Booking{existing}, nil)

		_, err := s.commands.CreateBooking(context.Background(), req)
		s.Require().ErrorIs(err, commands.ErrSlotTaken)
	})

	s.Run("cancelled booking does not block the slot", func() {
		req := s.createRequest()
		cancelled := s.existingBooking("2026-01-16", "13:30", "Signature Cut")
		s.Require().NoError(cancelled.Cancel("no show"))
		s.expectServices()
		s.mockBookings.EXPECT().ListActiveByBarberDate(gomock.Any(), "Kenzo", gomock.Any()).
			Return([]*booking.Booking{cancelled}, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockCustomers.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.commands.CreateBooking(context.Background(), req)
		s.Require().NoError(err)
	})

	s.Run("back to back with an existing booking is allowed", func() {
		req := s.createRequest()
		req.Start = "14:15"
		existing := s.existingBooking("2026-01-16", "13:30", "Signature Cut")
		s.expectServices()
		s.mockBookings.EXPECT().ListActiveByBarberDate(gomock.Any(), "Kenzo", gomock.Any()).
			Return([]*booking.Booking{existing}, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockCustomers.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.commands.CreateBooking(context.Background(), req)
		s.Require().NoError(err)
	})

	s.Run("unknown barber", func() {
		req := s.createRequest()
		req.Barber = "Ghost"

		_, err := s.commands.CreateBooking(context.Background(), req)
		s.Require().ErrorIs(err, commands.ErrUnknownBarber)
	})

	s.Run("unknown service when the catalog is readable", func() {
		req := s.createRequest()
		req.Service = "Retired Service"
		s.expectServices()

		_, err := s.commands.CreateBooking(context.Background(), req)
		s.Require().ErrorIs(err, commands.ErrServiceNotFound)
	})

	s.Run("start before opening is outside hours", func() {
		req := s.createRequest()
		req.Start = "10:00" // Kenzo opens at 11:00
		s.expectServices()
		s.mockBookings.EXPECT().ListActiveByBarberDate(gomock.Any(), "Kenzo", gomock.Any()).Return(nil, nil)

		_, err := s.commands.CreateBooking(context.Background(), req)
		s.Require().ErrorIs(err, commands.ErrSlotOutsideHours)
	})

	s.Run("off-grid start is outside hours", func() {
		req := s.createRequest()
		req.Start = "14:10"
		s.expectServices()
		s.mockBookings.EXPECT().ListActiveByBarberDate(gomock.Any(), "Kenzo", gomock.Any()).Return(nil, nil)

		_, err := s.commands.CreateBooking(context.Background(), req)
		s.Require().ErrorIs(err, commands.ErrSlotOutsideHours)
	})

	s.Run("same-day start in the past is rejected", func() {
		req := s.createRequest()
		req.Date = "2026-01-15"
		req.Start = "13:00" // clock reads 14:00 WIB
		s.expectServices()
		s.mockBookings.EXPECT().ListActiveByBarberDate(gomock.Any(), "Kenzo", gomock.Any()).Return(nil, nil)

		_, err := s.commands.CreateBooking(context.Background(), req)
		s.Require().ErrorIs(err, commands.ErrSlotInPast)
	})

	s.Run("catalog outage falls back to the default duration", func() {
		req := s.createRequest()
		s.mockCatalog.EXPECT().ListServices(gomock.Any()).Return(nil, errors.New("sheet unreachable"))
		s.mockBookings.EXPECT().ListActiveByBarberDate(gomock.Any(), "Kenzo", gomock.Any()).Return(nil, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockCustomers.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.commands.CreateBooking(context.Background(), req)
		s.Require().NoError(err)
	})

	s.Run("unreadable booking store skips the conflict check", func() {
		req := s.createRequest()
		s.expectServices()
		s.mockBookings.EXPECT().ListActiveByBarberDate(gomock.Any(), "Kenzo", gomock.Any()).
			Return(nil, errors.New("db down"))
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockCustomers.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.commands.CreateBooking(context.Background(), req)
		s.Require().NoError(err)
	})

	s.Run("customer sync failure does not fail the booking", func() {
		req := s.createRequest()
		s.expectServices()
		s.mockBookings.EXPECT().ListActiveByBarberDate(gomock.Any(), "Kenzo", gomock.Any()).Return(nil, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockCustomers.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := s.commands.CreateBooking(context.Background(), req)
		s.Require().NoError(err)
	})
}

func (s *BookingCommandsTestSuite) TestCancel() {
	s.Run("cancels with a reason", func() {
		entity := s.existingBooking("2026-01-16", "14:00", "Signature Cut")
		s.mockBookings.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockBookings.EXPECT().Update(gomock.Any(), entity).Return(nil)

		view, err := s.commands.Cancel(context.Background(), entity.ID(), reqdto.CancelBookingRequest{Reason: "no show"})
		s.Require().NoError(err)
		s.Equal("Batal", view.Status)
		s.Require().NotNil(view.CancelReason)
		s.Equal("no show", *view.CancelReason)
	})

	s.Run("missing booking maps to not found", func() {
		entity := s.existingBooking("2026-01-16", "14:00", "Signature Cut")
		notFound := infra.WrapRepoErr("booking not found", errors.New("no rows"), infra.KindNotFound)
		s.mockBookings.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(nil, notFound)

		_, err := s.commands.Cancel(context.Background(), entity.ID(), reqdto.CancelBookingRequest{Reason: "no show"})
		s.Require().ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("settled booking cannot be cancelled", func() {
		entity := s.existingBooking("2026-01-16", "14:00", "Signature Cut")
		s.Require().NoError(entity.Complete("2601001", 0, 80000))
		s.mockBookings.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.commands.Cancel(context.Background(), entity.ID(), reqdto.CancelBookingRequest{Reason: "too late"})
		s.Require().ErrorIs(err, commands.ErrAlreadySettled)
	})
}

func (s *BookingCommandsTestSuite) existingBooking(date, start, service string) *booking.Booking {
	day, err := booking.ParseDate(date)
	s.Require().NoError(err)
	tod, err := booking.ParseTimeOfDay(start)
	s.Require().NoError(err)
	b, err := booking.NewBooking(day, tod, "Ana", "081200001111", "Kenzo", service, s.clock.Now())
	s.Require().NoError(err)
	return b
}

func (s *BookingCommandsTestSuite) expectServices() {
	s.mockCatalog.EXPECT().ListServices(gomock.Any()).Return([]catalog.RawService{
		{Name: "Kids Cut", Price: "50.000", Duration: "30 Menit"},
		{Name: "Signature Cut", Price: "80.000", Duration: "45 Menit"},
		{Name: "Executive Contour", Price: "100.000", Duration: "60 Menit"},
	}, nil)
}
