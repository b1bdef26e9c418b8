package report

import (
	"barberbook/internal/domain/finance"
	"barberbook/internal/domain/ledger"
)

// Payment method labels as they appear inside ledger notes.
const (
	MethodCash = "Tunai"
	MethodQRIS = "QRIS"
)

// DailySummary is the end-of-day cash count: revenue split by payment method,
// expenses, and the net cash expected in the drawer.
type DailySummary struct {
	TotalInMinor  int64
	TotalOutMinor int64
	CashMinor     int64
	CashCount     int
	QRISMinor     int64
	QRISCount     int
	DiscountMinor int64
	NetCashMinor  int64
}

// Daily builds the summary from one date's ledger lines, expense rows and the
// discount totals stamped on that date's completed bookings. TotalIn is the
// signed sum of all ledger lines, so discounts already reduce it.
func Daily(lines []ledger.LineItem, expenses []finance.Expense, bookingDiscounts []int64) DailySummary {
	var s DailySummary
	for _, line := range lines {
		s.TotalInMinor += line.AmountMinor
		if line.PaidWith(MethodCash) {
			s.CashMinor += line.AmountMinor
			s.CashCount++
		}
		if line.PaidWith(MethodQRIS) {
			s.QRISMinor += line.AmountMinor
			s.QRISCount++
		}
	}
	for _, e := range expenses {
		s.TotalOutMinor += e.AmountMinor
	}
	for _, d := range bookingDiscounts {
		s.DiscountMinor += d
	}
	s.NetCashMinor = s.CashMinor - s.TotalOutMinor
	return s
}
