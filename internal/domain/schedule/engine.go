package schedule

import (
	"errors"

	"barberbook/internal/domain/booking"
)

var (
	ErrInvalidWindow   = errors.New("invalid opening window")
	ErrInvalidDuration = errors.New("duration must be positive")
)

// SlotStepMinutes is the booking grid: candidate start times are offered at
// this fixed granularity across the opening window.
const SlotStepMinutes = 15

// Window is a barber's opening hours [OpenMinute, CloseMinute) in minutes of
// day. Per-barber windows are business configuration; 24:00 (1440) is a valid
// closing minute.
type Window struct {
	OpenMinute  int
	CloseMinute int
}

func NewWindow(openMinute, closeMinute int) (Window, error) {
	if openMinute < 0 || closeMinute > 24*60 || closeMinute <= openMinute {
		return Window{}, ErrInvalidWindow
	}
	return Window{OpenMinute: openMinute, CloseMinute: closeMinute}, nil
}

// Request describes one availability computation. NowMinute is only consulted
// when SameDay is set: candidates whose start has already passed the current
// business-local minute are dropped.
type Request struct {
	Window          Window
	DurationMinutes int
	Busy            []booking.Interval
	SameDay         bool
	NowMinute       int
}

// AvailableSlots returns bookable start times in chronological order. An
// empty result means fully booked, not an error.
func AvailableSlots(req Request) ([]booking.TimeOfDay, error) {
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if _, err := NewWindow(req.Window.OpenMinute, req.Window.CloseMinute); err != nil {
		return nil, err
	}

	var slots []booking.TimeOfDay
	for start := req.Window.OpenMinute; start < req.Window.CloseMinute; start += SlotStepMinutes {
		end := start + req.DurationMinutes
		if end > req.Window.CloseMinute {
			continue
		}
		if req.SameDay && start <= req.NowMinute {
			continue
		}
		candidate := booking.Interval{Start: start, End: end}
		conflict := false
		for _, busy := range req.Busy {
			if candidate.Overlaps(busy) {
				conflict = true
				break
			}
		}
		if !conflict {
			slots = append(slots, booking.TimeOfDay(start))
		}
	}
	return slots, nil
}

// Fits reports whether a specific start time is bookable under the request.
func Fits(req Request, start booking.TimeOfDay) bool {
	slots, err := AvailableSlots(req)
	if err != nil {
		return false
	}
	for _, s := range slots {
		if s == start {
			return true
		}
	}
	return false
}

// FallbackSlots is the degraded answer when existing bookings cannot be read:
// a conservative handful of hourly starts from opening, so booking stays
// possible during a store outage instead of blocking entirely. Callers must
// log the degradation.
func FallbackSlots(win Window, count int) []booking.TimeOfDay {
	var slots []booking.TimeOfDay
	for start := win.OpenMinute; start < win.CloseMinute && len(slots) < count; start += 60 {
		slots = append(slots, booking.TimeOfDay(start))
	}
	return slots
}
