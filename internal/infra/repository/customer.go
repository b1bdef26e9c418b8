package repository

import (
	"context"

	"barberbook/internal/domain/customer"
	"barberbook/internal/infra"
	"barberbook/internal/infra/repository/converter"
	"barberbook/internal/pkg/pgconv"
	"barberbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CustomerRepository maintains the returning-customer directory keyed by the
// local phone form.
type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Upsert(ctx context.Context, c customer.Customer) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO customers (phone_local, phone_raw, phone_intl, name, last_barber, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (phone_local)
		DO UPDATE SET phone_raw = $2, phone_intl = $3, name = $4, last_barber = $5, updated_at = now()`,
		c.PhoneLocal, c.PhoneRaw, c.PhoneIntl, c.Name, c.LastBarber,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert customer", err)
	}
	return nil
}

func (r *CustomerRepository) FindByPhone(ctx context.Context, phoneLocal string) (*queries.CustomerView, error) {
	var row converter.CustomerRow
	err := r.db.QueryRow(ctx, `
		SELECT phone_raw, phone_local, phone_intl, name, last_barber
		FROM customers WHERE phone_local = $1`,
		phoneLocal,
	).Scan(&row.PhoneRaw, &row.PhoneLocal, &row.PhoneIntl, &row.Name, &row.LastBarber)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return converter.CustomerToView(row), nil
}
