package converter

import (
	"time"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/invoice"
	"barberbook/internal/pkg/pgconv"
	"barberbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingRow mirrors the bookings table.
type BookingRow struct {
	ID            uuid.UUID
	Date          time.Time
	StartMinute   int
	CustomerName  string
	CustomerPhone string
	Barber        string
	ServiceName   string
	Status        string
	CreatedAt     time.Time
	InvoiceID     pgtype.Text
	DiscountMinor pgtype.Int8
	FinalMinor    pgtype.Int8
	CancelReason  pgtype.Text
}

func BookingToRow(b *booking.Booking) BookingRow {
	loc := b.CreatedAt().Location()
	row := BookingRow{
		ID:            b.ID(),
		Date:          b.Date().At(loc),
		StartMinute:   b.Start().Minute(),
		CustomerName:  b.CustomerName(),
		CustomerPhone: b.CustomerPhone(),
		Barber:        b.Barber(),
		ServiceName:   b.ServiceName(),
		Status:        b.Status().String(),
		CreatedAt:     b.CreatedAt(),
		DiscountMinor: pgconv.Int64PtrToPgtype(b.DiscountMinor()),
		FinalMinor:    pgconv.Int64PtrToPgtype(b.FinalPriceMinor()),
		CancelReason:  pgconv.StringPtrToPgtype(b.CancelReason()),
	}
	if id := b.InvoiceID(); id != nil {
		row.InvoiceID = pgconv.StringToPgtype(id.String())
	}
	return row
}

func BookingToDomain(row BookingRow) *booking.Booking {
	start, err := booking.NewTimeOfDay(row.StartMinute)
	if err != nil {
		start = 0
	}
	var invoiceID *invoice.ID
	if s := pgconv.StringPtrFromPgtype(row.InvoiceID); s != nil {
		if id, parseErr := invoice.ParseID(*s); parseErr == nil {
			invoiceID = &id
		}
	}
	return booking.Reconstruct(
		row.ID,
		booking.DateOf(row.Date),
		start,
		row.CustomerName,
		row.CustomerPhone,
		row.Barber,
		row.ServiceName,
		booking.Status(row.Status),
		row.CreatedAt,
		invoiceID,
		pgconv.Int64PtrFromPgtype(row.DiscountMinor),
		pgconv.Int64PtrFromPgtype(row.FinalMinor),
		pgconv.StringPtrFromPgtype(row.CancelReason),
	)
}

func BookingToView(row BookingRow) *queries.BookingView {
	start, err := booking.NewTimeOfDay(row.StartMinute)
	if err != nil {
		start = 0
	}
	return &queries.BookingView{
		ID:              row.ID,
		Date:            booking.DateOf(row.Date).String(),
		Start:           start.String(),
		CustomerName:    row.CustomerName,
		CustomerPhone:   row.CustomerPhone,
		Barber:          row.Barber,
		ServiceName:     row.ServiceName,
		Status:          row.Status,
		CreatedAt:       row.CreatedAt,
		InvoiceID:       pgconv.StringPtrFromPgtype(row.InvoiceID),
		DiscountMinor:   pgconv.Int64PtrFromPgtype(row.DiscountMinor),
		FinalPriceMinor: pgconv.Int64PtrFromPgtype(row.FinalMinor),
		CancelReason:    pgconv.StringPtrFromPgtype(row.CancelReason),
	}
}
