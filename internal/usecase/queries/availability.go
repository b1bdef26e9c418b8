package queries

import (
	"context"
	"log/slog"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/schedule"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/config"
	"barberbook/internal/pkg/errs"
)

var (
	ErrUnknownBarber = errs.New("unknown barber")
	ErrInvalidDate   = errs.New("invalid date")
)

// fallbackSlotCount caps the degraded answer offered when existing bookings
// cannot be read.
const fallbackSlotCount = 6

type AvailabilityQueries interface {
	AvailableSlots(ctx context.Context, date, barber, service string) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	bookings BookingReadStore
	catalog  CatalogQueries
	shop     config.ShopConfig
	clock    clock.Clock
}

func NewAvailabilityQueries(
	bookings BookingReadStore,
	catalog CatalogQueries,
	shop config.ShopConfig,
	clock clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		bookings: bookings,
		catalog:  catalog,
		shop:     shop,
		clock:    clock,
	}
}

func (q *availabilityQueriesImpl) AvailableSlots(ctx context.Context, date, barber, service string) (*AvailabilityView, error) {
	day, err := booking.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}
	win, err := q.window(barber)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{Date: day.String(), Barber: barber, Service: service, Slots: []string{}}

	// A stale or unreadable catalog must not block booking; durations fall
	// back to the configured default.
	duration := q.shop.DefaultDuration
	loaded, err := q.catalog.Snapshot(ctx)
	if err != nil {
		slog.Warn("catalog unreadable, using default durations", "error", err.Error())
		loaded = nil
	} else {
		duration = loaded.DurationOrDefault(service, q.shop.DefaultDuration)
	}

	rows, err := q.bookings.ListActiveByBarberDate(ctx, barber, day)
	if err != nil {
		slog.Error("booking store unreadable, serving fallback slots",
			"barber", barber, "date", day.String(), "error", err.Error())
		view.Degraded = true
		for _, slot := range schedule.FallbackSlots(win, fallbackSlotCount) {
			view.Slots = append(view.Slots, slot.String())
		}
		return view, nil
	}

	busy := make([]booking.Interval, 0, len(rows))
	for _, row := range rows {
		start, parseErr := booking.ParseTimeOfDay(row.Start)
		if parseErr != nil {
			continue
		}
		rowDuration := q.shop.DefaultDuration
		if loaded != nil {
			rowDuration = loaded.DurationOrDefault(row.ServiceName, q.shop.DefaultDuration)
		}
		busy = append(busy, booking.Interval{Start: start.Minute(), End: start.Minute() + rowDuration})
	}

	now := q.clock.Now().In(q.shop.Location())
	req := schedule.Request{
		Window:          win,
		DurationMinutes: duration,
		Busy:            busy,
		SameDay:         booking.DateOf(now).Equal(day),
		NowMinute:       now.Hour()*60 + now.Minute(),
	}
	slots, err := schedule.AvailableSlots(req)
	if err != nil {
		return nil, errs.Wrap(err, "availability computation failed")
	}
	for _, slot := range slots {
		view.Slots = append(view.Slots, slot.String())
	}
	return view, nil
}

func (q *availabilityQueriesImpl) window(barber string) (schedule.Window, error) {
	windows, err := q.shop.Windows()
	if err != nil {
		return schedule.Window{}, errs.Wrap(err, "shop hours misconfigured")
	}
	w, ok := windows[barber]
	if !ok {
		return schedule.Window{}, ErrUnknownBarber
	}
	return schedule.NewWindow(w.OpenMinute, w.CloseMinute)
}
