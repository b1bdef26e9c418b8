package finance

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyItem         = errors.New("item name cannot be empty")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// OwnerNotePrefix tags expense rows entered by the owner rather than the
// cashier, so the daily drawer count and the owner ledger stay separable.
const OwnerNotePrefix = "[OWNER] "

// Expense is one outgoing row of the expense ledger.
type Expense struct {
	OccurredAt  time.Time
	Item        string
	Note        string
	AmountMinor int64
}

func NewExpense(at time.Time, item, note string, amountMinor int64) (Expense, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return Expense{}, ErrEmptyItem
	}
	if amountMinor <= 0 {
		return Expense{}, ErrNonPositiveAmount
	}
	return Expense{OccurredAt: at, Item: item, Note: strings.TrimSpace(note), AmountMinor: amountMinor}, nil
}

// NewOwnerExpense tags the note with the owner prefix.
func NewOwnerExpense(at time.Time, item, note string, amountMinor int64) (Expense, error) {
	e, err := NewExpense(at, item, note, amountMinor)
	if err != nil {
		return Expense{}, err
	}
	e.Note = OwnerNotePrefix + e.Note
	return e, nil
}

// ProductSale is one over-the-counter retail sale (pomade etc.), recorded
// outside the service ledger.
type ProductSale struct {
	OccurredAt  time.Time
	Product     string
	Note        string
	AmountMinor int64
}

func NewProductSale(at time.Time, product, note string, amountMinor int64) (ProductSale, error) {
	product = strings.TrimSpace(product)
	if product == "" {
		return ProductSale{}, ErrEmptyItem
	}
	if amountMinor <= 0 {
		return ProductSale{}, ErrNonPositiveAmount
	}
	return ProductSale{OccurredAt: at, Product: product, Note: strings.TrimSpace(note), AmountMinor: amountMinor}, nil
}
