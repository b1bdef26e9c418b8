package repository

import (
	"context"

	"barberbook/internal/domain/policy"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

const discountPolicyKey = "discount_policy"

// AppConfigRepository persists runtime toggles as key-value rows.
type AppConfigRepository struct {
	db *pgxpool.Pool
}

func NewAppConfigRepository(db *pgxpool.Pool) *AppConfigRepository {
	return &AppConfigRepository{db: db}
}

// GetDiscountPolicy returns the stored policy. An absent row is not an error:
// it parses to the documented default.
func (r *AppConfigRepository) GetDiscountPolicy(ctx context.Context) (policy.DiscountPolicy, error) {
	var value string
	err := r.db.QueryRow(ctx, `SELECT value FROM app_config WHERE key = $1`, discountPolicyKey).Scan(&value)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return policy.Parse(""), nil
		}
		return "", infra.WrapRepoErr("failed to read discount policy", err)
	}
	return policy.Parse(value), nil
}

func (r *AppConfigRepository) SetDiscountPolicy(ctx context.Context, p policy.DiscountPolicy) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO app_config (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = $2`,
		discountPolicyKey, p.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to persist discount policy", err)
	}
	return nil
}
