package converter

import (
	"time"

	"barberbook/internal/domain/customer"
	"barberbook/internal/domain/finance"
	"barberbook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ExpenseRow struct {
	OccurredAt  time.Time
	Item        string
	Note        string
	AmountMinor int64
}

type ProductSaleRow struct {
	OccurredAt  time.Time
	Product     string
	Note        string
	AmountMinor int64
}

type CustomerRow struct {
	PhoneRaw   string
	PhoneLocal string
	PhoneIntl  string
	Name       string
	LastBarber string
}

func ExpenseToDomain(row ExpenseRow) finance.Expense {
	var e finance.Expense
	_ = copier.Copy(&e, &row)
	return e
}

func ExpenseToView(row ExpenseRow) *queries.ExpenseView {
	view := &queries.ExpenseView{}
	_ = copier.Copy(view, &row)
	return view
}

func ProductSaleToDomain(row ProductSaleRow) finance.ProductSale {
	var s finance.ProductSale
	_ = copier.Copy(&s, &row)
	return s
}

func ProductSaleToView(row ProductSaleRow) *queries.ProductSaleView {
	view := &queries.ProductSaleView{}
	_ = copier.Copy(view, &row)
	return view
}

func CustomerToDomain(row CustomerRow) customer.Customer {
	var c customer.Customer
	_ = copier.Copy(&c, &row)
	return c
}

func CustomerToView(row CustomerRow) *queries.CustomerView {
	view := &queries.CustomerView{}
	_ = copier.Copy(view, &row)
	return view
}
