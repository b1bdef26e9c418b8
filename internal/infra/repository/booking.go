package repository

import (
	"context"

	"barberbook/internal/domain/booking"
	"barberbook/internal/infra"
	"barberbook/internal/infra/repository/converter"
	"barberbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, date, start_minute, customer_name, customer_phone, barber,
	service_name, status, created_at, invoice_id, discount_minor, final_minor, cancel_reason`

// BookingRepository is both the write-side repository and the read store for
// bookings.
type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	row := converter.BookingToRow(b)
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		row.ID, row.Date, row.StartMinute, row.CustomerName, row.CustomerPhone, row.Barber,
		row.ServiceName, row.Status, row.CreatedAt, row.InvoiceID, row.DiscountMinor, row.FinalMinor, row.CancelReason,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("booking already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// Update persists a transition out of Pending. The status predicate makes the
// write first-writer-wins: a row that was settled or cancelled in the meantime
// matches nothing and the caller gets a conflict instead of a second transition.
func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	row := converter.BookingToRow(b)
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET status = $2, invoice_id = $3, discount_minor = $4, final_minor = $5, cancel_reason = $6
		WHERE id = $1 AND status = 'Pending'`,
		row.ID, row.Status, row.InvoiceID, row.DiscountMinor, row.FinalMinor, row.CancelReason,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking is no longer pending", pgx.ErrNoRows, infra.KindConflict)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.scanOne(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return converter.BookingToDomain(row), nil
}

func (r *BookingRepository) ListActiveByBarberDate(ctx context.Context, barber string, date booking.Date) ([]*booking.Booking, error) {
	rows, err := r.scanMany(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE barber = $1 AND date = $2 AND status <> 'Batal'
		ORDER BY start_minute`,
		barber, date.String(),
	)
	if err != nil {
		return nil, err
	}
	result := make([]*booking.Booking, len(rows))
	for i, row := range rows {
		result[i] = converter.BookingToDomain(row)
	}
	return result, nil
}

func (r *BookingRepository) scanOne(ctx context.Context, query string, args ...any) (converter.BookingRow, error) {
	var row converter.BookingRow
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&row.ID, &row.Date, &row.StartMinute, &row.CustomerName, &row.CustomerPhone, &row.Barber,
		&row.ServiceName, &row.Status, &row.CreatedAt, &row.InvoiceID, &row.DiscountMinor, &row.FinalMinor, &row.CancelReason,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return row, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return row, infra.WrapRepoErr("failed to find booking", err)
	}
	return row, nil
}

func (r *BookingRepository) scanMany(ctx context.Context, query string, args ...any) ([]converter.BookingRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []converter.BookingRow
	for rows.Next() {
		var row converter.BookingRow
		if err := rows.Scan(
			&row.ID, &row.Date, &row.StartMinute, &row.CustomerName, &row.CustomerPhone, &row.Barber,
			&row.ServiceName, &row.Status, &row.CreatedAt, &row.InvoiceID, &row.DiscountMinor, &row.FinalMinor, &row.CancelReason,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return result, nil
}
