package queries

import (
	"context"
	"time"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/finance"
	"barberbook/internal/domain/invoice"
	"barberbook/internal/domain/ledger"
	"barberbook/internal/domain/report"
	"barberbook/internal/pkg/config"
	"barberbook/internal/pkg/errs"
)

var (
	ErrInvalidRange     = errs.New("invalid report range")
	ErrInvalidInvoiceID = errs.New("invalid invoice id")
)

type LedgerReadStore interface {
	// ListBetween returns lines with from <= OccurredAt < to, in insertion order.
	ListBetween(ctx context.Context, from, to time.Time) ([]ledger.LineItem, error)
	ListByInvoice(ctx context.Context, id invoice.ID) ([]ledger.LineItem, error)
}

type ExpenseReadStore interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]finance.Expense, error)
}

type SaleReadStore interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]finance.ProductSale, error)
}

type ReportQueries interface {
	Range(ctx context.Context, from, to string) (*RangeReportView, error)
	Daily(ctx context.Context, date string) (*DailyReportView, error)
	MonthlyProfit(ctx context.Context, year int, month time.Month) (*ProfitReportView, error)
	LinesByInvoice(ctx context.Context, id string) ([]*LineItemView, error)
}

type reportQueriesImpl struct {
	ledger   LedgerReadStore
	expenses ExpenseReadStore
	sales    SaleReadStore
	bookings BookingReadStore
	shop     config.ShopConfig
}

func NewReportQueries(
	ledger LedgerReadStore,
	expenses ExpenseReadStore,
	sales SaleReadStore,
	bookings BookingReadStore,
	shop config.ShopConfig,
) ReportQueries {
	return &reportQueriesImpl{
		ledger:   ledger,
		expenses: expenses,
		sales:    sales,
		bookings: bookings,
		shop:     shop,
	}
}

func (q *reportQueriesImpl) Range(ctx context.Context, from, to string) (*RangeReportView, error) {
	fromDay, err := booking.ParseDate(from)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}
	toDay, err := booking.ParseDate(to)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}
	loc := q.shop.Location()
	start := fromDay.At(loc)
	end := toDay.At(loc).AddDate(0, 0, 1)
	if !start.Before(end) {
		return nil, ErrInvalidRange
	}

	lines, err := q.ledger.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := report.Aggregate(lines, q.shop.Barbers())
	view := &RangeReportView{
		From:          fromDay.String(),
		To:            toDay.String(),
		HeadCount:     summary.Shop.HeadCount,
		GrossMinor:    summary.Shop.GrossMinor,
		DiscountMinor: summary.Shop.DiscountMinor,
		NetMinor:      summary.Shop.NetMinor,
	}
	for _, barber := range q.shop.Barbers() {
		totals := summary.PerBarber[barber]
		barberView := BarberReportView{
			Barber:        barber,
			HeadCount:     totals.HeadCount,
			GrossMinor:    totals.GrossMinor,
			DiscountMinor: totals.DiscountMinor,
			NetMinor:      totals.NetMinor,
		}
		for _, label := range report.MenuRanking(totals) {
			stats := totals.PerMenu[label]
			barberView.Menu = append(barberView.Menu, MenuStatView{
				Label:      label,
				Count:      stats.Count,
				GrossMinor: stats.GrossMinor,
			})
		}
		view.PerBarber = append(view.PerBarber, barberView)
	}
	return view, nil
}

func (q *reportQueriesImpl) Daily(ctx context.Context, date string) (*DailyReportView, error) {
	day, err := booking.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}
	loc := q.shop.Location()
	start := day.At(loc)
	end := start.AddDate(0, 0, 1)

	lines, err := q.ledger.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := q.expenses.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	sales, err := q.sales.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	rows, err := q.bookings.ListByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	var discounts []int64
	for _, row := range rows {
		if row.Status == booking.StatusSelesai.String() && row.DiscountMinor != nil && *row.DiscountMinor > 0 {
			discounts = append(discounts, *row.DiscountMinor)
		}
	}

	summary := report.Daily(lines, expenses, discounts)
	view := &DailyReportView{
		Date:          day.String(),
		TotalInMinor:  summary.TotalInMinor,
		TotalOutMinor: summary.TotalOutMinor,
		CashMinor:     summary.CashMinor,
		CashCount:     summary.CashCount,
		QRISMinor:     summary.QRISMinor,
		QRISCount:     summary.QRISCount,
		DiscountMinor: summary.DiscountMinor,
		NetCashMinor:  summary.NetCashMinor,
	}
	for _, sale := range sales {
		view.ProductSalesMinor += sale.AmountMinor
	}
	return view, nil
}

func (q *reportQueriesImpl) MonthlyProfit(ctx context.Context, year int, month time.Month) (*ProfitReportView, error) {
	if month < time.January || month > time.December || year < 2000 {
		return nil, ErrInvalidRange
	}
	loc := q.shop.Location()
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	lines, err := q.ledger.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := q.expenses.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	split := report.ShareSplit{
		StaffPct: q.shop.ProfitShareStaff,
		FundPct:  q.shop.ProfitShareFund,
		OwnerPct: q.shop.ProfitShareOwner,
	}
	summary := report.Profit(lines, expenses, split)
	return &ProfitReportView{
		Year:            year,
		Month:           int(month),
		RevenueMinor:    summary.RevenueMinor,
		DiscountMinor:   summary.DiscountMinor,
		NetRevenueMinor: summary.NetRevenueMinor,
		ExpenseMinor:    summary.ExpenseMinor,
		NetProfitMinor:  summary.NetProfitMinor,
		StaffShareMinor: summary.StaffShareMinor,
		FundShareMinor:  summary.FundShareMinor,
		OwnerShareMinor: summary.OwnerShareMinor,
	}, nil
}

func (q *reportQueriesImpl) LinesByInvoice(ctx context.Context, id string) ([]*LineItemView, error) {
	invoiceID, err := invoice.ParseID(id)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInvoiceID)
	}
	lines, err := q.ledger.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	views := make([]*LineItemView, 0, len(lines))
	for _, line := range lines {
		views = append(views, &LineItemView{
			OccurredAt:  line.OccurredAt,
			Label:       line.Label,
			Note:        line.Note,
			AmountMinor: line.AmountMinor,
			InvoiceID:   line.InvoiceID.String(),
			Barber:      line.Barber,
		})
	}
	return views, nil
}
