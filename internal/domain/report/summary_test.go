//go:build unit

package report_test

import (
	"testing"

	"barberbook/internal/domain/finance"
	"barberbook/internal/domain/ledger"
	"barberbook/internal/domain/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(t *testing.T, item string, amount int64) finance.Expense {
	t.Helper()
	e, err := finance.NewExpense(at, item, "", amount)
	require.NoError(t, err)
	return e
}

func TestDaily(t *testing.T) {
	t.Run("splits revenue by payment method", func(t *testing.T) {
		lines := []ledger.LineItem{
			serviceLine(t, "Jasa Signature Cut", 80000, "2601001", "Kenzo"),
			{OccurredAt: at, Label: "Jasa Beard Trim", Note: "[2601002] Sari (QRIS) - Arka", AmountMinor: 30000, InvoiceID: "2601002", Barber: "Arka"},
		}
		expenses := []finance.Expense{expense(t, "Air mineral", 15000)}

		s := report.Daily(lines, expenses, []int64{5000})

		assert.Equal(t, int64(110000), s.TotalInMinor)
		assert.Equal(t, int64(15000), s.TotalOutMinor)
		assert.Equal(t, int64(80000), s.CashMinor)
		assert.Equal(t, 1, s.CashCount)
		assert.Equal(t, int64(30000), s.QRISMinor)
		assert.Equal(t, 1, s.QRISCount)
		assert.Equal(t, int64(5000), s.DiscountMinor)
		assert.Equal(t, int64(65000), s.NetCashMinor)
	})

	t.Run("discount lines reduce total in", func(t *testing.T) {
		lines := []ledger.LineItem{
			serviceLine(t, "Jasa Signature Cut", 80000, "2601001", "Kenzo"),
			discountLine(t, 10000, "2601001", "Kenzo"),
		}
		s := report.Daily(lines, nil, nil)
		assert.Equal(t, int64(70000), s.TotalInMinor)
	})

	t.Run("empty day is all zeros", func(t *testing.T) {
		s := report.Daily(nil, nil, nil)
		assert.Equal(t, report.DailySummary{}, s)
	})
}

func TestProfit(t *testing.T) {
	split := report.ShareSplit{StaffPct: 42, FundPct: 5, OwnerPct: 53}

	t.Run("applies the share split to net profit", func(t *testing.T) {
		lines := []ledger.LineItem{
			serviceLine(t, "Jasa Signature Cut", 800000, "2601001", "Kenzo"),
			discountLine(t, 50000, "2601001", "Kenzo"),
		}
		expenses := []finance.Expense{expense(t, "Sewa tempat", 250000)}

		s := report.Profit(lines, expenses, split)

		assert.Equal(t, int64(800000), s.RevenueMinor)
		assert.Equal(t, int64(50000), s.DiscountMinor)
		assert.Equal(t, int64(750000), s.NetRevenueMinor)
		assert.Equal(t, int64(250000), s.ExpenseMinor)
		assert.Equal(t, int64(500000), s.NetProfitMinor)
		assert.Equal(t, int64(210000), s.StaffShareMinor)
		assert.Equal(t, int64(25000), s.FundShareMinor)
		assert.Equal(t, int64(265000), s.OwnerShareMinor)
	})

	t.Run("shares truncate toward zero", func(t *testing.T) {
		lines := []ledger.LineItem{
			serviceLine(t, "Jasa Signature Cut", 101, "2601001", "Kenzo"),
		}
		s := report.Profit(lines, nil, split)
		assert.Equal(t, int64(42), s.StaffShareMinor)
		assert.Equal(t, int64(5), s.FundShareMinor)
		assert.Equal(t, int64(53), s.OwnerShareMinor)
	})

	t.Run("a loss month yields negative shares", func(t *testing.T) {
		expenses := []finance.Expense{expense(t, "Sewa tempat", 100000)}
		s := report.Profit(nil, expenses, split)
		assert.Equal(t, int64(-100000), s.NetProfitMinor)
		assert.Equal(t, int64(-42000), s.StaffShareMinor)
	})
}
