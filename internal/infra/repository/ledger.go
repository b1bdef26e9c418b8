package repository

import (
	"context"
	"time"

	"barberbook/internal/domain/invoice"
	"barberbook/internal/domain/ledger"
	"barberbook/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ledgerColumns = `occurred_at, label, note, amount_minor, invoice_id, barber`

// LedgerRepository is the append-only store of financial truth. It implements
// both the write-side repository and the read store.
type LedgerRepository struct {
	db *pgxpool.Pool
}

func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Append writes all lines of one settlement in a single transaction so a
// partial append cannot split an invoice group.
func (r *LedgerRepository) Append(ctx context.Context, lines []ledger.LineItem) error {
	if len(lines) == 0 {
		return nil
	}
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin ledger append", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, line := range lines {
		if _, err := tx.Exec(ctx, `
			INSERT INTO ledger_lines (`+ledgerColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			line.OccurredAt, line.Label, line.Note, line.AmountMinor, line.InvoiceID.String(), line.Barber,
		); err != nil {
			return infra.WrapRepoErr("failed to append ledger line", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit ledger append", err)
	}
	return nil
}

func (r *LedgerRepository) ListBetween(ctx context.Context, from, to time.Time) ([]ledger.LineItem, error) {
	return r.list(ctx, `
		SELECT `+ledgerColumns+` FROM ledger_lines
		WHERE occurred_at >= $1 AND occurred_at < $2
		ORDER BY id`,
		from, to,
	)
}

func (r *LedgerRepository) ListByInvoice(ctx context.Context, id invoice.ID) ([]ledger.LineItem, error) {
	return r.list(ctx, `
		SELECT `+ledgerColumns+` FROM ledger_lines
		WHERE invoice_id = $1 OR note LIKE '%[' || $1 || ']%'
		ORDER BY id`,
		id.String(),
	)
}

func (r *LedgerRepository) list(ctx context.Context, query string, args ...any) ([]ledger.LineItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger lines", err)
	}
	defer rows.Close()

	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (ledger.LineItem, error) {
		var line ledger.LineItem
		var invoiceID string
		if err := row.Scan(&line.OccurredAt, &line.Label, &line.Note, &line.AmountMinor, &invoiceID, &line.Barber); err != nil {
			return line, err
		}
		line.InvoiceID = invoice.ID(invoiceID)
		return line, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan ledger lines", err)
	}
	return lines, nil
}
