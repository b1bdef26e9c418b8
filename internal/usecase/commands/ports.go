package commands

import (
	"context"
	"time"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/customer"
	"barberbook/internal/domain/finance"
	"barberbook/internal/domain/ledger"
	"barberbook/internal/domain/policy"

	"github.com/google/uuid"
)

// Write-side repositories. Read-side query interfaces live in the queries
// package; the same infra repository typically implements both.

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListActiveByBarberDate(ctx context.Context, barber string, date booking.Date) ([]*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
}

type LedgerRepository interface {
	// Append writes all lines of one settlement in order.
	Append(ctx context.Context, lines []ledger.LineItem) error
	ListBetween(ctx context.Context, from, to time.Time) ([]ledger.LineItem, error)
}

type PolicyRepository interface {
	GetDiscountPolicy(ctx context.Context) (policy.DiscountPolicy, error)
	SetDiscountPolicy(ctx context.Context, p policy.DiscountPolicy) error
}

type CustomerRepository interface {
	Upsert(ctx context.Context, c customer.Customer) error
}

type ExpenseRepository interface {
	Append(ctx context.Context, e finance.Expense) error
}

type SaleRepository interface {
	Append(ctx context.Context, s finance.ProductSale) error
}
