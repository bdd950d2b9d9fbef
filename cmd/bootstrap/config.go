package bootstrap

import (
	"workshop-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)

// ConfigSections exposes the sections components depend on directly.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.LogConfig { return cfg.Log },
	func(cfg config.Config) config.RateLimitConfig { return cfg.RateLimit },
)
