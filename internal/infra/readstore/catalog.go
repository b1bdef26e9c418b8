package readstore

import (
	"context"

	"barberbook/internal/domain/catalog"
	"barberbook/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogReadStore serves raw service rows; price and duration stay free-text
// here and are parsed by the domain catalog.
type CatalogReadStore struct {
	db *pgxpool.Pool
}

func NewCatalogReadStore(db *pgxpool.Pool) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) ListServices(ctx context.Context) ([]catalog.RawService, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, price, duration, description
		FROM services
		ORDER BY position, name`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	services, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.RawService, error) {
		var s catalog.RawService
		err := row.Scan(&s.Name, &s.Price, &s.Duration, &s.Description)
		return s, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan services", err)
	}
	return services, nil
}
