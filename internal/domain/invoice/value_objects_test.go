//go:build unit

package invoice_test

import (
	"testing"
	"time"

	"barberbook/internal/domain/invoice"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("formats sequence with leading zeros", func(t *testing.T) {
		id, err := invoice.NewID("2601", 7)
		require.NoError(t, err)
		assert.Equal(t, "2601007", id.String())
	})

	t.Run("rejects short prefix", func(t *testing.T) {
		_, err := invoice.NewID("261", 1)
		require.ErrorIs(t, err, invoice.ErrInvalidID)
	})

	t.Run("rejects non-positive sequence", func(t *testing.T) {
		_, err := invoice.NewID("2601", 0)
		require.ErrorIs(t, err, invoice.ErrInvalidID)
	})

	t.Run("caps the month at 999", func(t *testing.T) {
		id, err := invoice.NewID("2601", 999)
		require.NoError(t, err)
		assert.Equal(t, "2601999", id.String())

		_, err = invoice.NewID("2601", 1000)
		require.ErrorIs(t, err, invoice.ErrSequenceExhausted)
	})
}

func TestParseID(t *testing.T) {
	t.Run("accepts the seven digit form", func(t *testing.T) {
		id, err := invoice.ParseID("2601042")
		require.NoError(t, err)
		assert.Equal(t, "2601", id.Prefix())
		assert.Equal(t, 42, id.Sequence())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, raw := range []string{"", "260101", "26010011", "26o1001", "2601-01"} {
			_, err := invoice.ParseID(raw)
			assert.ErrorIs(t, err, invoice.ErrInvalidID, raw)
		}
	})
}

func TestMonthPrefix(t *testing.T) {
	at := time.Date(2026, time.January, 15, 20, 30, 0, 0, time.UTC)
	assert.Equal(t, "2601", invoice.MonthPrefix(at))

	at = time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2512", invoice.MonthPrefix(at))
}

func TestNextInMonth(t *testing.T) {
	t.Run("starts at 001 for an empty month", func(t *testing.T) {
		id, err := invoice.NextInMonth("2601", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "2601001", id.String())
	})

	t.Run("takes max plus one, not count plus one", func(t *testing.T) {
		issued := []invoice.ID{"2601001", "2601005", "2601003"}
		id, err := invoice.NextInMonth("2601", issued, nil)
		require.NoError(t, err)
		assert.Equal(t, "2601006", id.String())
	})

	t.Run("ignores other months", func(t *testing.T) {
		issued := []invoice.ID{"2512099", "2601002"}
		id, err := invoice.NextInMonth("2601", issued, nil)
		require.NoError(t, err)
		assert.Equal(t, "2601003", id.String())
	})

	t.Run("reads legacy bracket notes", func(t *testing.T) {
		notes := []string{
			"[2601007] Budi (Tunai) - Kenzo",
			"[2512010] Sari (QRIS) - Arka",
			"no invoice here",
		}
		id, err := invoice.NextInMonth("2601", nil, notes)
		require.NoError(t, err)
		assert.Equal(t, "2601008", id.String())
	})

	t.Run("structured ids and notes combine", func(t *testing.T) {
		issued := []invoice.ID{"2601004"}
		notes := []string{"[2601009] Ana (Tunai) - Arka"}
		id, err := invoice.NextInMonth("2601", issued, notes)
		require.NoError(t, err)
		assert.Equal(t, "2601010", id.String())
	})

	t.Run("fails when the month is exhausted", func(t *testing.T) {
		issued := []invoice.ID{"2601999"}
		_, err := invoice.NextInMonth("2601", issued, nil)
		require.ErrorIs(t, err, invoice.ErrSequenceExhausted)
	})
}

func TestFromNote(t *testing.T) {
	id, ok := invoice.FromNote("[2601007] Budi (Tunai) - Kenzo")
	require.True(t, ok)
	assert.Equal(t, invoice.ID("2601007"), id)

	_, ok = invoice.FromNote("Modal Awal")
	assert.False(t, ok)
}
