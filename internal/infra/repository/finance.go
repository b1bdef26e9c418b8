package repository

import (
	"context"
	"time"

	"barberbook/internal/domain/finance"
	"barberbook/internal/infra"
	"barberbook/internal/infra/repository/converter"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExpenseRepository is the append-only expense ledger.
type ExpenseRepository struct {
	db *pgxpool.Pool
}

func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Append(ctx context.Context, e finance.Expense) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO expenses (occurred_at, item, note, amount_minor)
		VALUES ($1, $2, $3, $4)`,
		e.OccurredAt, e.Item, e.Note, e.AmountMinor,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append expense", err)
	}
	return nil
}

func (r *ExpenseRepository) ListBetween(ctx context.Context, from, to time.Time) ([]finance.Expense, error) {
	rows, err := r.db.Query(ctx, `
		SELECT occurred_at, item, note, amount_minor
		FROM expenses
		WHERE occurred_at >= $1 AND occurred_at < $2
		ORDER BY id`,
		from, to,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expenses", err)
	}
	defer rows.Close()

	expenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (finance.Expense, error) {
		var r converter.ExpenseRow
		if err := row.Scan(&r.OccurredAt, &r.Item, &r.Note, &r.AmountMinor); err != nil {
			return finance.Expense{}, err
		}
		return converter.ExpenseToDomain(r), nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan expenses", err)
	}
	return expenses, nil
}

// SaleRepository records over-the-counter product sales.
type SaleRepository struct {
	db *pgxpool.Pool
}

func NewSaleRepository(db *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) Append(ctx context.Context, s finance.ProductSale) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO product_sales (occurred_at, product, note, amount_minor)
		VALUES ($1, $2, $3, $4)`,
		s.OccurredAt, s.Product, s.Note, s.AmountMinor,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append product sale", err)
	}
	return nil
}

func (r *SaleRepository) ListBetween(ctx context.Context, from, to time.Time) ([]finance.ProductSale, error) {
	rows, err := r.db.Query(ctx, `
		SELECT occurred_at, product, note, amount_minor
		FROM product_sales
		WHERE occurred_at >= $1 AND occurred_at < $2
		ORDER BY id`,
		from, to,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product sales", err)
	}
	defer rows.Close()

	sales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (finance.ProductSale, error) {
		var r converter.ProductSaleRow
		if err := row.Scan(&r.OccurredAt, &r.Product, &r.Note, &r.AmountMinor); err != nil {
			return finance.ProductSale{}, err
		}
		return converter.ProductSaleToDomain(r), nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan product sales", err)
	}
	return sales, nil
}
