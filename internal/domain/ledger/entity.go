package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"barberbook/internal/domain/invoice"
)

var (
	ErrEmptyLabel   = errors.New("line item label cannot be empty")
	ErrNonPositive  = errors.New("line item amount must be positive")
	ErrZeroDiscount = errors.New("discount line amount must be positive")
)

// LineItem is one signed row of the append-only financial ledger, the sole
// source of financial truth. Negative amounts are discounts. The invoice id
// is stored structurally and additionally embedded in the note so historic
// report tooling keeps working.
type LineItem struct {
	OccurredAt  time.Time
	Label       string
	Note        string
	AmountMinor int64
	InvoiceID   invoice.ID
	Barber      string
}

// NewServiceLine builds a positive revenue row.
func NewServiceLine(at time.Time, label string, amountMinor int64, id invoice.ID, customer, method, barber string) (LineItem, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return LineItem{}, ErrEmptyLabel
	}
	if amountMinor <= 0 {
		return LineItem{}, ErrNonPositive
	}
	return LineItem{
		OccurredAt:  at,
		Label:       label,
		Note:        EncodeNote(id, customer, method, barber),
		AmountMinor: amountMinor,
		InvoiceID:   id,
		Barber:      barber,
	}, nil
}

// NewDiscountLine builds the single negative row of a discounted checkout.
func NewDiscountLine(at time.Time, discountMinor int64, id invoice.ID, barber string) (LineItem, error) {
	if discountMinor <= 0 {
		return LineItem{}, ErrZeroDiscount
	}
	return LineItem{
		OccurredAt:  at,
		Label:       DiscountLabel,
		Note:        fmt.Sprintf("[%s] Promo/Diskon - %s", id, barber),
		AmountMinor: -discountMinor,
		InvoiceID:   id,
		Barber:      barber,
	}, nil
}

// EncodeNote renders the legacy note form "[id] customer (method) - barber".
func EncodeNote(id invoice.ID, customer, method, barber string) string {
	return fmt.Sprintf("[%s] %s (%s) - %s", id, customer, method, barber)
}

// ResolveInvoiceID prefers the structured column, falling back to the
// bracket-embedded note for rows written before the column existed.
func (l LineItem) ResolveInvoiceID() (invoice.ID, bool) {
	if l.InvoiceID != "" {
		return l.InvoiceID, true
	}
	return invoice.FromNote(l.Note)
}

// BelongsTo reports whether the row is attributed to the barber, checking the
// structured column first and the "- <barber>" note suffix for legacy rows.
// The suffix is anchored so a barber whose name prefixes another's cannot
// claim the longer name's rows.
func (l LineItem) BelongsTo(barber string) bool {
	if l.Barber != "" {
		return strings.EqualFold(l.Barber, barber)
	}
	note := strings.ToLower(strings.TrimSpace(l.Note))
	return strings.HasSuffix(note, strings.ToLower("- "+barber))
}

// PaidWith reports whether the note records the given payment method.
func (l LineItem) PaidWith(method string) bool {
	return strings.Contains(strings.ToLower(l.Note), strings.ToLower(method))
}
