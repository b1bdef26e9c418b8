package queries

import (
	"context"

	"barberbook/internal/domain/booking"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByDate(ctx context.Context, date booking.Date) ([]*BookingView, error)
	ListActiveByBarberDate(ctx context.Context, barber string, date booking.Date) ([]*BookingView, error)
	ListPending(ctx context.Context) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByDate(ctx context.Context, date string) ([]*BookingView, error)
	PendingQueue(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByDate(ctx context.Context, date string) ([]*BookingView, error) {
	day, err := booking.ParseDate(date)
	if err != nil {
		return nil, errs.Wrap(err, "invalid date")
	}
	return q.readStore.ListByDate(ctx, day)
}

func (q *bookingQueriesImpl) PendingQueue(ctx context.Context) ([]*BookingView, error) {
	return q.readStore.ListPending(ctx)
}
