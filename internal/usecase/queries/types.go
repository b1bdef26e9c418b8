package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ServiceView struct {
	Name            string `json:"name"`
	PriceMinor      int64  `json:"price_minor"`
	DurationMinutes int    `json:"duration_minutes"`
	Description     string `json:"description,omitempty"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	Date            string    `json:"date"`
	Start           string    `json:"start"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	Barber          string    `json:"barber"`
	ServiceName     string    `json:"service_name"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	InvoiceID       *string   `json:"invoice_id,omitempty"`
	DiscountMinor   *int64    `json:"discount_minor,omitempty"`
	FinalPriceMinor *int64    `json:"final_price_minor,omitempty"`
	CancelReason    *string   `json:"cancel_reason,omitempty"`
}

type AvailabilityView struct {
	Date     string   `json:"date"`
	Barber   string   `json:"barber"`
	Service  string   `json:"service"`
	Slots    []string `json:"slots"`
	Degraded bool     `json:"degraded"`
}

type LineItemView struct {
	OccurredAt  time.Time `json:"occurred_at"`
	Label       string    `json:"label"`
	Note        string    `json:"note"`
	AmountMinor int64     `json:"amount_minor"`
	InvoiceID   string    `json:"invoice_id,omitempty"`
	Barber      string    `json:"barber,omitempty"`
}

type MenuStatView struct {
	Label      string `json:"label"`
	Count      int    `json:"count"`
	GrossMinor int64  `json:"gross_minor"`
}

type BarberReportView struct {
	Barber        string         `json:"barber"`
	HeadCount     int            `json:"head_count"`
	GrossMinor    int64          `json:"gross_minor"`
	DiscountMinor int64          `json:"discount_minor"`
	NetMinor      int64          `json:"net_minor"`
	Menu          []MenuStatView `json:"menu"`
}

type RangeReportView struct {
	From          string             `json:"from"`
	To            string             `json:"to"`
	PerBarber     []BarberReportView `json:"per_barber"`
	HeadCount     int                `json:"head_count"`
	GrossMinor    int64              `json:"gross_minor"`
	DiscountMinor int64              `json:"discount_minor"`
	NetMinor      int64              `json:"net_minor"`
}

type DailyReportView struct {
	Date              string `json:"date"`
	TotalInMinor      int64  `json:"total_in_minor"`
	TotalOutMinor     int64  `json:"total_out_minor"`
	CashMinor         int64  `json:"cash_minor"`
	CashCount         int    `json:"cash_count"`
	QRISMinor         int64  `json:"qris_minor"`
	QRISCount         int    `json:"qris_count"`
	DiscountMinor     int64  `json:"discount_minor"`
	ProductSalesMinor int64  `json:"product_sales_minor"`
	NetCashMinor      int64  `json:"net_cash_minor"`
}

type ProfitReportView struct {
	Year            int   `json:"year"`
	Month           int   `json:"month"`
	RevenueMinor    int64 `json:"revenue_minor"`
	DiscountMinor   int64 `json:"discount_minor"`
	NetRevenueMinor int64 `json:"net_revenue_minor"`
	ExpenseMinor    int64 `json:"expense_minor"`
	NetProfitMinor  int64 `json:"net_profit_minor"`
	StaffShareMinor int64 `json:"staff_share_minor"`
	FundShareMinor  int64 `json:"fund_share_minor"`
	OwnerShareMinor int64 `json:"owner_share_minor"`
}

type CustomerView struct {
	PhoneLocal string `json:"phone_local"`
	PhoneIntl  string `json:"phone_intl"`
	Name       string `json:"name"`
	LastBarber string `json:"last_barber,omitempty"`
}

type ExpenseView struct {
	OccurredAt  time.Time `json:"occurred_at"`
	Item        string    `json:"item"`
	Note        string    `json:"note,omitempty"`
	AmountMinor int64     `json:"amount_minor"`
}

type ProductSaleView struct {
	OccurredAt  time.Time `json:"occurred_at"`
	Product     string    `json:"product"`
	Note        string    `json:"note,omitempty"`
	AmountMinor int64     `json:"amount_minor"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
