package commands

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/invoice"
	"barberbook/internal/domain/ledger"
	"barberbook/internal/domain/policy"
	"barberbook/internal/domain/report"
	"barberbook/internal/domain/schedule"
	reqdto "barberbook/internal/handler/dto/request"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/config"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrDiscountLocked       = errs.New("discount policy is locked")
	ErrDowngradeNotAllowed  = errs.New("service downgrade not allowed")
	ErrInvalidLineItem      = errs.New("invalid line item")
	ErrInvalidPaymentMethod = errs.New("invalid payment method")
	ErrLedgerWriteFailed    = errs.New("ledger write failed")
)

type CheckoutResult struct {
	InvoiceID     string
	Booking       *queries.BookingView
	GrossMinor    int64
	DiscountMinor int64
	FinalMinor    int64
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, bookingID uuid.UUID, req reqdto.CheckoutRequest) (*CheckoutResult, error)
	CheckoutWalkIn(ctx context.Context, req reqdto.WalkInCheckoutRequest) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	bookings  BookingRepository
	ledger    LedgerRepository
	policies  PolicyRepository
	customers CustomerRepository
	catalog   queries.CatalogQueries
	shop      config.ShopConfig
	clock     clock.Clock

	// settleMu serializes invoice allocation and the ledger append so two
	// concurrent checkouts cannot read the same max sequence.
	settleMu sync.Mutex
}

func NewCheckoutCommands(
	bookings BookingRepository,
	ledger LedgerRepository,
	policies PolicyRepository,
	customers CustomerRepository,
	catalog queries.CatalogQueries,
	shop config.ShopConfig,
	clock clock.Clock,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		bookings:  bookings,
		ledger:    ledger,
		policies:  policies,
		customers: customers,
		catalog:   catalog,
		shop:      shop,
		clock:     clock,
	}
}

func (c *checkoutCommandsImpl) Checkout(ctx context.Context, bookingID uuid.UUID, req reqdto.CheckoutRequest) (*CheckoutResult, error) {
	entity, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	if entity.Status() != booking.StatusPending {
		return nil, ErrAlreadySettled
	}
	return c.settle(ctx, entity, req)
}

// CheckoutWalkIn records an off-schedule customer and settles in one step: the
// booking is created at the current business time and immediately completed.
func (c *checkoutCommandsImpl) CheckoutWalkIn(ctx context.Context, req reqdto.WalkInCheckoutRequest) (*CheckoutResult, error) {
	now := c.clock.Now().In(c.shop.Location())
	minute := now.Hour()*60 + now.Minute()
	minute -= minute % schedule.SlotStepMinutes
	start, err := booking.NewTimeOfDay(minute)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := booking.NewBooking(
		booking.DateOf(now), start,
		req.CustomerName, req.CustomerPhone, req.Barber, req.Service,
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.bookings.Create(ctx, entity); err != nil {
		return nil, errs.Wrap(err, "failed to record walk-in")
	}
	return c.settle(ctx, entity, req.Checkout)
}

type lineSpec struct {
	label  string
	amount int64
}

func (c *checkoutCommandsImpl) settle(ctx context.Context, entity *booking.Booking, req reqdto.CheckoutRequest) (*CheckoutResult, error) {
	method := strings.TrimSpace(req.PaymentMethod)
	if method != report.MethodCash && method != report.MethodQRIS {
		return nil, ErrInvalidPaymentMethod
	}

	specs, err := c.buildLines(ctx, entity, req)
	if err != nil {
		return nil, err
	}

	var gross int64
	for _, s := range specs {
		gross += s.amount
	}

	discount, err := c.resolveDiscount(ctx, req, gross)
	if err != nil {
		return nil, err
	}
	final := gross - discount

	c.settleMu.Lock()
	defer c.settleMu.Unlock()

	now := c.clock.Now().In(c.shop.Location())
	id, err := c.nextInvoiceID(ctx, now)
	if err != nil {
		return nil, err
	}

	if err := entity.Complete(id, discount, final); err != nil {
		return nil, errs.Mark(err, ErrAlreadySettled)
	}
	if err := c.bookings.Update(ctx, entity); err != nil {
		// The update is conditional on the row still being Pending, so a
		// checkout racing on a stale snapshot loses here, before any ledger
		// row is written.
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrAlreadySettled)
		}
		return nil, errs.Wrap(err, "failed to complete booking")
	}

	// The booking is already Selesai at this point. An interrupted append
	// under-reports the invoice group; reports tolerate that, a duplicated
	// settlement they would not.
	lines := make([]ledger.LineItem, 0, len(specs)+1)
	for _, s := range specs {
		line, lineErr := ledger.NewServiceLine(now, s.label, s.amount, id, entity.CustomerName(), method, entity.Barber())
		if lineErr != nil {
			return nil, errs.Mark(lineErr, ErrInvalidLineItem)
		}
		lines = append(lines, line)
	}
	if discount > 0 {
		line, lineErr := ledger.NewDiscountLine(now, discount, id, entity.Barber())
		if lineErr != nil {
			return nil, errs.Mark(lineErr, ErrInvalidLineItem)
		}
		lines = append(lines, line)
	}
	if err := c.ledger.Append(ctx, lines); err != nil {
		return nil, errs.Mark(err, ErrLedgerWriteFailed)
	}

	c.syncWalkInCustomer(ctx, entity)

	return &CheckoutResult{
		InvoiceID:     id.String(),
		Booking:       bookingToView(entity),
		GrossMinor:    gross,
		DiscountMinor: discount,
		FinalMinor:    final,
	}, nil
}

// buildLines prices the settlement: the base service (possibly re-labeled by
// an upgrade plus a fee row), catalog add-ons and free-form extra items.
func (c *checkoutCommandsImpl) buildLines(ctx context.Context, entity *booking.Booking, req reqdto.CheckoutRequest) ([]lineSpec, error) {
	loaded, err := c.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	base, err := loaded.Lookup(entity.ServiceName())
	if err != nil {
		return nil, errs.Mark(err, ErrServiceNotFound)
	}

	baseLabel := ledger.ServiceLabel(base.Name)
	baseAmount := base.PriceMinor
	var specs []lineSpec

	if req.UpgradeTo != nil {
		target := strings.TrimSpace(*req.UpgradeTo)
		if target != "" && !strings.EqualFold(target, base.Name) {
			upgraded, lookupErr := loaded.Lookup(target)
			if lookupErr != nil {
				return nil, errs.Mark(lookupErr, ErrServiceNotFound)
			}
			delta := upgraded.PriceMinor - base.PriceMinor
			switch {
			case delta < 0:
				return nil, ErrDowngradeNotAllowed
			case delta > 0:
				baseLabel = ledger.UpgradedServiceLabel(upgraded.Name, base.Name)
				specs = append(specs, lineSpec{label: ledger.UpgradeFeeLabel, amount: delta})
			}
			// Equal price: the original line stands unchanged.
		}
	}
	if baseAmount <= 0 {
		return nil, ErrInvalidLineItem
	}
	specs = append([]lineSpec{{label: baseLabel, amount: baseAmount}}, specs...)

	for _, name := range req.AddOns {
		addOn, lookupErr := loaded.Lookup(name)
		if lookupErr != nil {
			return nil, errs.Mark(lookupErr, ErrServiceNotFound)
		}
		if addOn.PriceMinor <= 0 {
			return nil, ErrInvalidLineItem
		}
		specs = append(specs, lineSpec{label: ledger.AddOnLabel(addOn.Name), amount: addOn.PriceMinor})
	}

	for _, item := range req.ExtraItems {
		label := strings.TrimSpace(item.Label)
		if label == "" || item.AmountMinor <= 0 {
			return nil, ErrInvalidLineItem
		}
		specs = append(specs, lineSpec{label: label, amount: item.AmountMinor})
	}
	return specs, nil
}

// resolveDiscount computes the requested discount, enforces the owner policy
// and clamps to the gross so the final price never goes negative.
func (c *checkoutCommandsImpl) resolveDiscount(ctx context.Context, req reqdto.CheckoutRequest, gross int64) (int64, error) {
	if req.DiscountMinor < 0 || req.DiscountPercent < 0 {
		return 0, ErrInvalidLineItem
	}
	discount := req.DiscountMinor
	if req.DiscountPercent > 0 {
		discount = int64(math.Round(float64(gross) * req.DiscountPercent / 100))
	}
	if discount == 0 {
		return 0, nil
	}

	current, err := c.policies.GetDiscountPolicy(ctx)
	if err != nil {
		// Unreadable policy falls back to the documented default rather than
		// blocking every discounted checkout.
		slog.Warn("discount policy unreadable, defaulting to unlocked", "error", err.Error())
		current = policy.Unlocked
	}
	if !current.AllowsDiscount() {
		return 0, ErrDiscountLocked
	}
	if discount > gross {
		discount = gross
	}
	return discount, nil
}

// nextInvoiceID scans the current business month's ledger for issued ids and
// allocates max+1. Callers hold settleMu.
func (c *checkoutCommandsImpl) nextInvoiceID(ctx context.Context, now time.Time) (invoice.ID, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, c.shop.Location())
	monthLines, err := c.ledger.ListBetween(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return "", errs.Mark(err, ErrLedgerWriteFailed)
	}
	issued := make([]invoice.ID, 0, len(monthLines))
	notes := make([]string, 0, len(monthLines))
	for _, line := range monthLines {
		issued = append(issued, line.InvoiceID)
		notes = append(notes, line.Note)
	}
	id, err := invoice.NextInMonth(invoice.MonthPrefix(now), issued, notes)
	if err != nil {
		return "", errs.Wrap(err, "invoice allocation failed")
	}
	return id, nil
}

func (c *checkoutCommandsImpl) syncWalkInCustomer(ctx context.Context, entity *booking.Booking) {
	cust, err := customerFromBooking(entity)
	if err != nil {
		return
	}
	if err := c.customers.Upsert(ctx, cust); err != nil {
		slog.Warn("customer directory sync failed", "phone", cust.PhoneLocal, "error", err.Error())
	}
}
