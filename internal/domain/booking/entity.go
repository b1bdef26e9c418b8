package booking

import (
	"errors"
	"strings"
	"time"

	"barberbook/internal/domain/invoice"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
	ErrEmptyPhone        = errors.New("customer phone cannot be empty")
	ErrEmptyBarber       = errors.New("barber cannot be empty")
	ErrEmptyService      = errors.New("service cannot be empty")
	ErrAlreadySettled    = errors.New("booking already settled")
	ErrEmptyCancelReason = errors.New("cancellation reason cannot be empty")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
)

// Booking is one row of the booking ledger. It is never physically deleted;
// cancellation is a status change.
type Booking struct {
	id            uuid.UUID
	date          Date
	start         TimeOfDay
	customerName  string
	customerPhone string
	barber        string
	serviceName   string
	status        Status
	createdAt     time.Time
	invoiceID     *invoice.ID
	discountMinor *int64
	finalMinor    *int64
	cancelReason  *string
}

func NewBooking(
	date Date,
	start TimeOfDay,
	customerName, customerPhone, barber, serviceName string,
	createdAt time.Time,
) (*Booking, error) {
	customerName = strings.TrimSpace(customerName)
	customerPhone = strings.TrimSpace(customerPhone)
	barber = strings.TrimSpace(barber)
	serviceName = strings.TrimSpace(serviceName)

	switch {
	case customerName == "":
		return nil, ErrEmptyCustomerName
	case customerPhone == "":
		return nil, ErrEmptyPhone
	case barber == "":
		return nil, ErrEmptyBarber
	case serviceName == "":
		return nil, ErrEmptyService
	}

	return &Booking{
		id:            uuid.New(),
		date:          date,
		start:         start,
		customerName:  customerName,
		customerPhone: customerPhone,
		barber:        barber,
		serviceName:   serviceName,
		status:        StatusPending,
		createdAt:     createdAt,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	date Date,
	start TimeOfDay,
	customerName, customerPhone, barber, serviceName string,
	status Status,
	createdAt time.Time,
	invoiceID *invoice.ID,
	discountMinor, finalMinor *int64,
	cancelReason *string,
) *Booking {
	return &Booking{
		id:            id,
		date:          date,
		start:         start,
		customerName:  customerName,
		customerPhone: customerPhone,
		barber:        barber,
		serviceName:   serviceName,
		status:        status,
		createdAt:     createdAt,
		invoiceID:     invoiceID,
		discountMinor: discountMinor,
		finalMinor:    finalMinor,
		cancelReason:  cancelReason,
	}
}

// Complete transitions Pending→Selesai and stamps the settlement values.
func (b *Booking) Complete(id invoice.ID, discountMinor, finalMinor int64) error {
	if !b.status.CanTransitionTo(StatusSelesai) {
		return ErrAlreadySettled
	}
	if discountMinor < 0 || finalMinor < 0 {
		return ErrNegativeAmount
	}
	b.status = StatusSelesai
	b.invoiceID = &id
	b.discountMinor = &discountMinor
	b.finalMinor = &finalMinor
	return nil
}

// Cancel transitions Pending→Batal. The reason is mandatory and no financial
// rows are ever written for a cancellation.
func (b *Booking) Cancel(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrEmptyCancelReason
	}
	if !b.status.CanTransitionTo(StatusBatal) {
		return ErrAlreadySettled
	}
	b.status = StatusBatal
	b.cancelReason = &reason
	return nil
}

// Occupies reports whether the booking blocks slots: Pending and Selesai
// bookings hold their interval, cancelled ones do not.
func (b *Booking) Occupies() bool {
	return b.status != StatusBatal
}

// Interval is the busy window [start, start+duration) given the resolved
// service duration.
func (b *Booking) Interval(durationMinutes int) Interval {
	return Interval{Start: b.start.Minute(), End: b.start.Minute() + durationMinutes}
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) Date() Date              { return b.date }
func (b *Booking) Start() TimeOfDay        { return b.start }
func (b *Booking) CustomerName() string    { return b.customerName }
func (b *Booking) CustomerPhone() string   { return b.customerPhone }
func (b *Booking) Barber() string          { return b.barber }
func (b *Booking) ServiceName() string     { return b.serviceName }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) InvoiceID() *invoice.ID  { return b.invoiceID }
func (b *Booking) DiscountMinor() *int64   { return b.discountMinor }
func (b *Booking) FinalPriceMinor() *int64 { return b.finalMinor }
func (b *Booking) CancelReason() *string   { return b.cancelReason }
