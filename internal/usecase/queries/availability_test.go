//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"barberbook/internal/domain/catalog"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/config"
	"barberbook/internal/usecase/queries"
	queriesmock "barberbook/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockBookings *queriesmock.MockBookingReadStore
	mockCatalog  *queriesmock.MockCatalogReadStore
	clock        *clock.MockClock
	queries      queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogReadStore(s.mockCtrl)
	// 07:00 UTC is 14:00 WIB on 2026-01-15.
	s.clock = clock.NewMockClock(time.Date(2026, time.January, 15, 7, 0, 0, 0, time.UTC))

	s.queries = queries.NewAvailabilityQueries(
		s.mockBookings,
		queries.NewCatalogQueries(s.mockCatalog),
		config.NewTestConfig().Shop,
		s.clock,
	)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) expectServices() {
	s.mockCatalog.EXPECT().ListServices(gomock.Any()).Return([]catalog.RawService{
		{Name: "Signature Cut", Price: "80.000", Duration: "45 Menit"},
		{Name: "Quick Trim", Price: "40.000", Duration: "30 Menit"},
	}, nil)
}

func (s *AvailabilityQueriesTestSuite) TestAvailableSlots() {
	s.Run("first free slot follows the busy interval", func() {
		s.expectServices()
		s.mockBookings.EXPECT().ListActiveByBarberDate(gomock.Any(), "Arka", gomock.Any()).
			Return([]*queries.BookingView{
				{Start: "10:00", ServiceName: "Signature Cut", Status: "Pending"},
			}, nil)

		view, err := s.queries.AvailableSlots(context.Background(), "2026-01-16", "Arka", "Quick Trim")
		s.Require().NoError(err)

		s.False(view.Degraded)
		s.Require().NotEmpty(view.Slots)
		s.Equal("10:45", view.Slots[0])
	})

	s.Run("same day hides passed slots", func() {
		s.expectServices()
		s.mockBookings.EXPECT().ListActiveByBarberDate(gomock.Any(), "Arka", gomock.Any()).Return(nil, nil)

		view, err := s.queries.AvailableSlots(context.Background(), "2026-01-15", "Arka", "Quick Trim")
		s.Require().NoError(err)

		// Clock reads 14:00 WIB; 14:00 itself is already gone.
		s.Require().NotEmpty(view.Slots)
		s.Equal("14:15", view.Slots[0])
	})

	s.Run("unreadable booking store serves degraded fallback slots", func() {
		s.expectServices()
		s.mockBookings.EXPECT().ListActiveByBarberDate(gomock.Any(), "Arka", gomock.Any()).
			Return(nil, errors.New("db down"))

		view, err := s.queries.AvailableSlots(context.Background(), "2026-01-16", "Arka", "Quick Trim")
		s.Require().NoError(err)

		s.True(view.Degraded)
		s.Equal([]string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00"}, view.Slots)
	})

	s.Run("catalog outage falls back to the default duration", func() {
		s.mockCatalog.EXPECT().ListServices(gomock.Any()).Return(nil, errors.New("sheet unreachable"))
		s.mockBookings.EXPECT().ListActiveByBarberDate(gomock.Any(), "Arka", gomock.Any()).Return(nil, nil)

		view, err := s.queries.AvailableSlots(context.Background(), "2026-01-16", "Arka", "Quick Trim")
		s.Require().NoError(err)
		s.False(view.Degraded)
		s.NotEmpty(view.Slots)
	})

	s.Run("unknown barber", func() {
		_, err := s.queries.AvailableSlots(context.Background(), "2026-01-16", "Ghost", "Quick Trim")
		s.Require().ErrorIs(err, queries.ErrUnknownBarber)
	})

	s.Run("invalid date", func() {
		_, err := s.queries.AvailableSlots(context.Background(), "16/01/2026", "Arka", "Quick Trim")
		s.Require().ErrorIs(err, queries.ErrInvalidDate)
	})
}
