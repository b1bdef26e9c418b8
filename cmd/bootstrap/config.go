package bootstrap

import (
	"barberbook/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.ShopConfig {
			return cfg.Shop
		},
	),
)
