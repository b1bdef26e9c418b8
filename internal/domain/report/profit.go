package report

import (
	"barberbook/internal/domain/finance"
	"barberbook/internal/domain/ledger"
)

// ShareSplit is the owner-configured profit distribution in whole percents.
type ShareSplit struct {
	StaffPct int
	FundPct  int
	OwnerPct int
}

// ProfitSummary is the monthly bottom line with the profit split applied.
type ProfitSummary struct {
	RevenueMinor    int64
	DiscountMinor   int64
	NetRevenueMinor int64
	ExpenseMinor    int64
	NetProfitMinor  int64
	StaffShareMinor int64
	FundShareMinor  int64
	OwnerShareMinor int64
}

// Profit computes the month's result from its ledger lines and expenses.
// Revenue counts positive lines only; discounts are the absolute sum of the
// negative ones. Shares truncate toward zero.
func Profit(lines []ledger.LineItem, expenses []finance.Expense, split ShareSplit) ProfitSummary {
	var s ProfitSummary
	for _, line := range lines {
		if line.AmountMinor > 0 {
			s.RevenueMinor += line.AmountMinor
		} else {
			s.DiscountMinor += -line.AmountMinor
		}
	}
	for _, e := range expenses {
		s.ExpenseMinor += e.AmountMinor
	}
	s.NetRevenueMinor = s.RevenueMinor - s.DiscountMinor
	s.NetProfitMinor = s.NetRevenueMinor - s.ExpenseMinor
	s.StaffShareMinor = s.NetProfitMinor * int64(split.StaffPct) / 100
	s.FundShareMinor = s.NetProfitMinor * int64(split.FundPct) / 100
	s.OwnerShareMinor = s.NetProfitMinor * int64(split.OwnerPct) / 100
	return s
}
