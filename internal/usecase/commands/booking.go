package commands

import (
	"context"
	"log/slog"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/customer"
	"barberbook/internal/domain/schedule"
	reqdto "barberbook/internal/handler/dto/request"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/config"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/usecase/queries"
	"barberbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrUnknownBarber    = errs.New("unknown barber")
	ErrServiceNotFound  = errs.New("service not found")
	ErrSlotTaken        = errs.New("slot already taken")
	ErrSlotOutsideHours = errs.New("slot outside opening hours")
	ErrSlotInPast       = errs.New("slot already passed")
	ErrAlreadySettled   = errs.New("booking already settled")
	ErrDomainValidation = errs.New("domain validation error")
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	Cancel(ctx context.Context, id uuid.UUID, req reqdto.CancelBookingRequest) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings  BookingRepository
	customers CustomerRepository
	catalog   queries.CatalogQueries
	shop      config.ShopConfig
	clock     clock.Clock
	slotLocks *shared.KeyedMutex
}

func NewBookingCommands(
	bookings BookingRepository,
	customers CustomerRepository,
	catalog queries.CatalogQueries,
	shop config.ShopConfig,
	clock clock.Clock,
	slotLocks *shared.KeyedMutex,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:  bookings,
		customers: customers,
		catalog:   catalog,
		shop:      shop,
		clock:     clock,
		slotLocks: slotLocks,
	}
}

func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	day, err := booking.ParseDate(req.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	start, err := booking.ParseTimeOfDay(req.Start)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	win, err := b.window(req.Barber)
	if err != nil {
		return nil, err
	}

	duration := b.shop.DefaultDuration
	loaded, err := b.catalog.Snapshot(ctx)
	if err != nil {
		// Catalog outage must not block booking; price resolution happens at
		// checkout anyway.
		slog.Warn("catalog unreadable during booking, using default duration", "error", err.Error())
		loaded = nil
	} else {
		def, lookupErr := loaded.Lookup(req.Service)
		if lookupErr != nil {
			return nil, errs.Mark(lookupErr, ErrServiceNotFound)
		}
		duration = def.DurationMinutes
	}

	// Slot check and insert are one critical section per (barber, date).
	unlock := b.slotLocks.Lock(req.Barber + "|" + day.String())
	defer unlock()

	var busy []booking.Interval
	rows, err := b.bookings.ListActiveByBarberDate(ctx, req.Barber, day)
	if err != nil {
		// Degraded mode keeps booking possible; the conflict check is skipped
		// and only window and past-time rules apply.
		slog.Error("booking store unreadable, skipping conflict check",
			"barber", req.Barber, "date", day.String(), "error", err.Error())
	} else {
		for _, row := range rows {
			// Cancelled rows never block a slot, however the store filtered.
			if !row.Occupies() {
				continue
			}
			rowDuration := b.shop.DefaultDuration
			if loaded != nil {
				rowDuration = loaded.DurationOrDefault(row.ServiceName(), b.shop.DefaultDuration)
			}
			busy = append(busy, row.Interval(rowDuration))
		}
	}

	now := b.clock.Now().In(b.shop.Location())
	if err := checkSlot(win, duration, busy, booking.DateOf(now).Equal(day), now.Hour()*60+now.Minute(), start); err != nil {
		return nil, err
	}

	entity, err := booking.NewBooking(day, start, req.CustomerName, req.CustomerPhone, req.Barber, req.Service, b.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := b.bookings.Create(ctx, entity); err != nil {
		return nil, errs.Wrap(err, "failed to create booking")
	}

	b.syncCustomer(ctx, req.CustomerPhone, req.CustomerName, req.Barber)

	return bookingToView(entity), nil
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, req reqdto.CancelBookingRequest) (*queries.BookingView, error) {
	entity, err := b.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	if err := entity.Cancel(req.Reason); err != nil {
		switch err {
		case booking.ErrEmptyCancelReason:
			return nil, errs.Mark(err, ErrDomainValidation)
		default:
			return nil, errs.Mark(err, ErrAlreadySettled)
		}
	}
	if err := b.bookings.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrAlreadySettled)
		}
		return nil, errs.Wrap(err, "failed to cancel booking")
	}
	return bookingToView(entity), nil
}

// syncCustomer refreshes the returning-customer directory. Failures are
// logged, never surfaced: the booking already exists.
func (b *bookingCommandsImpl) syncCustomer(ctx context.Context, phone, name, barber string) {
	cust, err := customer.New(phone, name, barber)
	if err != nil {
		slog.Warn("customer directory entry invalid", "error", err.Error())
		return
	}
	if err := b.customers.Upsert(ctx, cust); err != nil {
		slog.Warn("customer directory sync failed", "phone", cust.PhoneLocal, "error", err.Error())
	}
}

func (b *bookingCommandsImpl) window(barber string) (schedule.Window, error) {
	windows, err := b.shop.Windows()
	if err != nil {
		return schedule.Window{}, errs.Wrap(err, "shop hours misconfigured")
	}
	w, ok := windows[barber]
	if !ok {
		return schedule.Window{}, ErrUnknownBarber
	}
	return schedule.NewWindow(w.OpenMinute, w.CloseMinute)
}

// checkSlot validates one requested start against the opening window, the
// grid, same-day cutoff and existing busy intervals, in that order.
func checkSlot(win schedule.Window, durationMinutes int, busy []booking.Interval, sameDay bool, nowMinute int, start booking.TimeOfDay) error {
	startMin := start.Minute()
	if startMin < win.OpenMinute || startMin+durationMinutes > win.CloseMinute {
		return ErrSlotOutsideHours
	}
	if (startMin-win.OpenMinute)%schedule.SlotStepMinutes != 0 {
		return ErrSlotOutsideHours
	}
	if sameDay && startMin <= nowMinute {
		return ErrSlotInPast
	}
	candidate := booking.Interval{Start: startMin, End: startMin + durationMinutes}
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return ErrSlotTaken
		}
	}
	return nil
}

func customerFromBooking(b *booking.Booking) (customer.Customer, error) {
	return customer.New(b.CustomerPhone(), b.CustomerName(), b.Barber())
}

func bookingToView(b *booking.Booking) *queries.BookingView {
	view := &queries.BookingView{
		ID:            b.ID(),
		Date:          b.Date().String(),
		Start:         b.Start().String(),
		CustomerName:  b.CustomerName(),
		CustomerPhone: b.CustomerPhone(),
		Barber:        b.Barber(),
		ServiceName:   b.ServiceName(),
		Status:        b.Status().String(),
		CreatedAt:     b.CreatedAt(),
		DiscountMinor: b.DiscountMinor(),
		CancelReason:  b.CancelReason(),
	}
	if id := b.InvoiceID(); id != nil {
		s := id.String()
		view.InvoiceID = &s
	}
	view.FinalPriceMinor = b.FinalPriceMinor()
	return view
}
