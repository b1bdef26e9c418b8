package components

import (
	"barberbook/internal/infra/cache"
	"barberbook/internal/infra/readstore"
	"barberbook/internal/infra/repository"
	"barberbook/internal/pkg/config"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewLedgerRepository,
			fx.As(new(commands.LedgerRepository)),
			fx.As(new(queries.LedgerReadStore)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			repository.NewExpenseRepository,
			fx.As(new(commands.ExpenseRepository)),
			fx.As(new(queries.ExpenseReadStore)),
		),
		fx.Annotate(
			repository.NewSaleRepository,
			fx.As(new(commands.SaleRepository)),
			fx.As(new(queries.SaleReadStore)),
		),
		fx.Annotate(
			repository.NewAppConfigRepository,
			fx.As(new(commands.PolicyRepository)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		NewCatalogStore,
	),
)

// NewCatalogStore fronts the database catalog with redis when available.
func NewCatalogStore(pool *pgxpool.Pool, client *redis.Client, cfg config.Config) queries.CatalogReadStore {
	base := readstore.NewCatalogReadStore(pool)
	if client == nil {
		return base
	}
	return cache.NewCachedCatalogReadStore(base, client, cfg.Redis.CatalogTTL)
}
