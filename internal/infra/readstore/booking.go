package readstore

import (
	"context"

	"barberbook/internal/domain/booking"
	"barberbook/internal/infra"
	"barberbook/internal/infra/repository/converter"
	"barberbook/internal/pkg/pgconv"
	"barberbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, date, start_minute, customer_name, customer_phone, barber,
	service_name, status, created_at, invoice_id, discount_minor, final_minor, cancel_reason`

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var row converter.BookingRow
	err := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id).Scan(
		&row.ID, &row.Date, &row.StartMinute, &row.CustomerName, &row.CustomerPhone, &row.Barber,
		&row.ServiceName, &row.Status, &row.CreatedAt, &row.InvoiceID, &row.DiscountMinor, &row.FinalMinor, &row.CancelReason,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return converter.BookingToView(row), nil
}

func (r *BookingReadStore) ListByDate(ctx context.Context, date booking.Date) ([]*queries.BookingView, error) {
	return r.list(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE date = $1
		ORDER BY start_minute, created_at`,
		date.String(),
	)
}

func (r *BookingReadStore) ListActiveByBarberDate(ctx context.Context, barber string, date booking.Date) ([]*queries.BookingView, error) {
	return r.list(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE barber = $1 AND date = $2 AND status <> 'Batal'
		ORDER BY start_minute`,
		barber, date.String(),
	)
}

func (r *BookingReadStore) ListPending(ctx context.Context) ([]*queries.BookingView, error) {
	return r.list(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE status = 'Pending'
		ORDER BY date, start_minute, created_at`,
	)
}

func (r *BookingReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		var row converter.BookingRow
		if err := rows.Scan(
			&row.ID, &row.Date, &row.StartMinute, &row.CustomerName, &row.CustomerPhone, &row.Barber,
			&row.ServiceName, &row.Status, &row.CreatedAt, &row.InvoiceID, &row.DiscountMinor, &row.FinalMinor, &row.CancelReason,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, converter.BookingToView(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return views, nil
}
