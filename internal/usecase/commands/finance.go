package commands

import (
	"context"
	"time"

	"barberbook/internal/domain/finance"
	reqdto "barberbook/internal/handler/dto/request"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/config"
	"barberbook/internal/pkg/errs"
)

var ErrInvalidEntry = errs.New("invalid financial entry")

type FinanceCommands interface {
	RecordExpense(ctx context.Context, req reqdto.ExpenseRequest) error
	RecordOwnerExpense(ctx context.Context, req reqdto.ExpenseRequest) error
	RecordSale(ctx context.Context, req reqdto.ProductSaleRequest) error
}

type financeCommandsImpl struct {
	expenses ExpenseRepository
	sales    SaleRepository
	shop     config.ShopConfig
	clock    clock.Clock
}

func NewFinanceCommands(expenses ExpenseRepository, sales SaleRepository, shop config.ShopConfig, clock clock.Clock) FinanceCommands {
	return &financeCommandsImpl{
		expenses: expenses,
		sales:    sales,
		shop:     shop,
		clock:    clock,
	}
}

func (f *financeCommandsImpl) RecordExpense(ctx context.Context, req reqdto.ExpenseRequest) error {
	e, err := finance.NewExpense(f.now(), req.Item, req.Note, req.AmountMinor)
	if err != nil {
		return errs.Mark(err, ErrInvalidEntry)
	}
	return f.expenses.Append(ctx, e)
}

func (f *financeCommandsImpl) RecordOwnerExpense(ctx context.Context, req reqdto.ExpenseRequest) error {
	e, err := finance.NewOwnerExpense(f.now(), req.Item, req.Note, req.AmountMinor)
	if err != nil {
		return errs.Mark(err, ErrInvalidEntry)
	}
	return f.expenses.Append(ctx, e)
}

func (f *financeCommandsImpl) RecordSale(ctx context.Context, req reqdto.ProductSaleRequest) error {
	s, err := finance.NewProductSale(f.now(), req.Product, req.Note, req.AmountMinor)
	if err != nil {
		return errs.Mark(err, ErrInvalidEntry)
	}
	return f.sales.Append(ctx, s)
}

func (f *financeCommandsImpl) now() time.Time {
	return f.clock.Now().In(f.shop.Location())
}
