//go:build unit

package booking_test

import (
	"testing"
	"time"

	"barberbook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingBooking(t *testing.T) *booking.Booking {
	t.Helper()
	day, err := booking.ParseDate("2026-01-15")
	require.NoError(t, err)
	start, err := booking.ParseTimeOfDay("10:30")
	require.NoError(t, err)

	b, err := booking.NewBooking(day, start, "Budi", "0812-3456-7890", "Kenzo", "Signature Cut", time.Now())
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("starts pending with a fresh id", func(t *testing.T) {
		b := newPendingBooking(t)
		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Nil(t, b.InvoiceID())
		assert.Nil(t, b.CancelReason())
	})

	t.Run("validation", func(t *testing.T) {
		day, _ := booking.ParseDate("2026-01-15")
		start, _ := booking.ParseTimeOfDay("10:30")
		now := time.Now()

		cases := []struct {
			name     string
			customer string
			phone    string
			barber   string
			svc      string
			errIs    error
		}{
			{"empty customer", "", "0812", "Kenzo", "Cut", booking.ErrEmptyCustomerName},
			{"whitespace customer", "   ", "0812", "Kenzo", "Cut", booking.ErrEmptyCustomerName},
			{"empty phone", "Budi", "", "Kenzo", "Cut", booking.ErrEmptyPhone},
			{"empty barber", "Budi", "0812", "", "Cut", booking.ErrEmptyBarber},
			{"empty service", "Budi", "0812", "Kenzo", "", booking.ErrEmptyService},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := booking.NewBooking(day, start, c.customer, c.phone, c.barber, c.svc, now)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestBookingComplete(t *testing.T) {
	t.Run("stamps settlement values", func(t *testing.T) {
		b := newPendingBooking(t)
		require.NoError(t, b.Complete("2601007", 10000, 90000))

		assert.Equal(t, booking.StatusSelesai, b.Status())
		require.NotNil(t, b.InvoiceID())
		assert.Equal(t, "2601007", b.InvoiceID().String())
		require.NotNil(t, b.DiscountMinor())
		assert.Equal(t, int64(10000), *b.DiscountMinor())
		require.NotNil(t, b.FinalPriceMinor())
		assert.Equal(t, int64(90000), *b.FinalPriceMinor())
	})

	t.Run("rejects a second settlement", func(t *testing.T) {
		b := newPendingBooking(t)
		require.NoError(t, b.Complete("2601007", 0, 90000))
		require.ErrorIs(t, b.Complete("2601008", 0, 90000), booking.ErrAlreadySettled)
	})

	t.Run("rejects completing a cancelled booking", func(t *testing.T) {
		b := newPendingBooking(t)
		require.NoError(t, b.Cancel("no show"))
		require.ErrorIs(t, b.Complete("2601007", 0, 90000), booking.ErrAlreadySettled)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		b := newPendingBooking(t)
		require.ErrorIs(t, b.Complete("2601007", -1, 90000), booking.ErrNegativeAmount)
	})
}

func TestBookingCancel(t *testing.T) {
	t.Run("requires a reason", func(t *testing.T) {
		b := newPendingBooking(t)
		require.ErrorIs(t, b.Cancel("   "), booking.ErrEmptyCancelReason)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("records the trimmed reason", func(t *testing.T) {
		b := newPendingBooking(t)
		require.NoError(t, b.Cancel("  customer no show  "))
		assert.Equal(t, booking.StatusBatal, b.Status())
		require.NotNil(t, b.CancelReason())
		assert.Equal(t, "customer no show", *b.CancelReason())
	})

	t.Run("rejects cancelling a settled booking", func(t *testing.T) {
		b := newPendingBooking(t)
		require.NoError(t, b.Complete("2601007", 0, 90000))
		require.ErrorIs(t, b.Cancel("too late"), booking.ErrAlreadySettled)
	})
}

func TestBookingOccupies(t *testing.T) {
	pending := newPendingBooking(t)
	assert.True(t, pending.Occupies())

	settled := newPendingBooking(t)
	require.NoError(t, settled.Complete("2601007", 0, 90000))
	assert.True(t, settled.Occupies())

	cancelled := newPendingBooking(t)
	require.NoError(t, cancelled.Cancel("no show"))
	assert.False(t, cancelled.Occupies())
}

func TestBookingInterval(t *testing.T) {
	b := newPendingBooking(t)
	interval := b.Interval(45)
	assert.Equal(t, booking.Interval{Start: 10*60 + 30, End: 11*60 + 15}, interval)
}
