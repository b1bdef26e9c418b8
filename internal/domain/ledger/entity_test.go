//go:build unit

package ledger_test

import (
	"testing"
	"time"

	"barberbook/internal/domain/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2026, time.January, 15, 14, 0, 0, 0, time.UTC)

func TestNewServiceLine(t *testing.T) {
	t.Run("encodes the note and stores the id twice", func(t *testing.T) {
		line, err := ledger.NewServiceLine(at, "Jasa Signature Cut", 80000, "2601007", "Budi", "Tunai", "Kenzo")
		require.NoError(t, err)

		assert.Equal(t, "[2601007] Budi (Tunai) - Kenzo", line.Note)
		assert.Equal(t, int64(80000), line.AmountMinor)
		assert.Equal(t, "Kenzo", line.Barber)

		id, ok := line.ResolveInvoiceID()
		require.True(t, ok)
		assert.Equal(t, "2601007", id.String())
	})

	t.Run("rejects empty labels and non-positive amounts", func(t *testing.T) {
		_, err := ledger.NewServiceLine(at, "  ", 80000, "2601007", "Budi", "Tunai", "Kenzo")
		require.ErrorIs(t, err, ledger.ErrEmptyLabel)

		_, err = ledger.NewServiceLine(at, "Jasa Cut", 0, "2601007", "Budi", "Tunai", "Kenzo")
		require.ErrorIs(t, err, ledger.ErrNonPositive)

		_, err = ledger.NewServiceLine(at, "Jasa Cut", -500, "2601007", "Budi", "Tunai", "Kenzo")
		require.ErrorIs(t, err, ledger.ErrNonPositive)
	})
}

func TestNewDiscountLine(t *testing.T) {
	t.Run("stores a negative amount", func(t *testing.T) {
		line, err := ledger.NewDiscountLine(at, 10000, "2601007", "Kenzo")
		require.NoError(t, err)
		assert.Equal(t, int64(-10000), line.AmountMinor)
		assert.Equal(t, ledger.DiscountLabel, line.Label)
	})

	t.Run("rejects non-positive discounts", func(t *testing.T) {
		_, err := ledger.NewDiscountLine(at, 0, "2601007", "Kenzo")
		require.ErrorIs(t, err, ledger.ErrZeroDiscount)
	})
}

func TestResolveInvoiceID(t *testing.T) {
	t.Run("prefers the structured column", func(t *testing.T) {
		line := ledger.LineItem{InvoiceID: "2601007", Note: "[2512001] other"}
		id, ok := line.ResolveInvoiceID()
		require.True(t, ok)
		assert.Equal(t, "2601007", id.String())
	})

	t.Run("falls back to the note for legacy rows", func(t *testing.T) {
		line := ledger.LineItem{Note: "[2601007] Budi (Tunai) - Kenzo"}
		id, ok := line.ResolveInvoiceID()
		require.True(t, ok)
		assert.Equal(t, "2601007", id.String())
	})

	t.Run("unresolvable rows report false", func(t *testing.T) {
		line := ledger.LineItem{Note: "Modal Awal"}
		_, ok := line.ResolveInvoiceID()
		assert.False(t, ok)
	})
}

func TestBelongsTo(t *testing.T) {
	structured := ledger.LineItem{Barber: "Kenzo"}
	assert.True(t, structured.BelongsTo("kenzo"))
	assert.False(t, structured.BelongsTo("Arka"))

	legacy := ledger.LineItem{Note: "[2601007] Budi (Tunai) - Kenzo"}
	assert.True(t, legacy.BelongsTo("Kenzo"))
	assert.False(t, legacy.BelongsTo("Arka"))

	// A name that merely prefixes another barber's must not match.
	assert.False(t, legacy.BelongsTo("Ken"))
	assert.True(t, ledger.LineItem{Note: "[2601008] Budi (Tunai) - Ken"}.BelongsTo("Ken"))
}

func TestPaidWith(t *testing.T) {
	line := ledger.LineItem{Note: "[2601007] Budi (Tunai) - Kenzo"}
	assert.True(t, line.PaidWith("Tunai"))
	assert.False(t, line.PaidWith("QRIS"))
}

func TestUpgradeLabels(t *testing.T) {
	t.Run("round trips the marker", func(t *testing.T) {
		label := ledger.UpgradedServiceLabel("Executive Contour", "Signature Cut")
		assert.Equal(t, "Jasa Executive Contour (Up from Signature Cut)", label)

		target, marked := ledger.UpgradeTarget(label)
		assert.True(t, marked)
		assert.Equal(t, "Jasa Executive Contour", target)
	})

	t.Run("plain labels pass through", func(t *testing.T) {
		target, marked := ledger.UpgradeTarget("Jasa Signature Cut")
		assert.False(t, marked)
		assert.Equal(t, "Jasa Signature Cut", target)
	})

	t.Run("fee detection is case insensitive", func(t *testing.T) {
		assert.True(t, ledger.IsUpgradeFee(ledger.UpgradeFeeLabel))
		assert.True(t, ledger.IsUpgradeFee("biaya upgrade layanan"))
		assert.False(t, ledger.IsUpgradeFee("Jasa Cut"))
	})
}
