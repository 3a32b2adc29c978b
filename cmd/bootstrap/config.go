package bootstrap

import (
	"oficina-criativa/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.HotmartConfig { return cfg.Hotmart },
		func(cfg config.Config) config.OneSignalConfig { return cfg.OneSignal },
		func(cfg config.Config) config.AIConfig { return cfg.AI },
	),
)
