package components

import (
	"oficina-criativa/internal/infra/readstore"
	"oficina-criativa/internal/infra/redis"
	repo_impl "oficina-criativa/internal/infra/repository"
	"oficina-criativa/internal/usecase/commands"
	"oficina-criativa/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewPurchaseRepository,
			fx.As(new(commands.PurchaseRepository)),
			fx.As(new(commands.PurchaseAdminRepository)),
		),
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
		),
		fx.Annotate(
			repo_impl.NewDeliverableRepository,
			fx.As(new(commands.DeliverableRepository)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		fx.Annotate(
			repo_impl.NewAnalyticsRepository,
			fx.As(new(commands.AnalyticsRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewPurchaseReadStore,
			fx.As(new(queries.PurchaseReadStore)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewDeliverableReadStore,
			fx.As(new(queries.DeliverableReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewAnalyticsReadStore,
			fx.As(new(queries.AnalyticsReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		// Redis-backed auth stores
		fx.Annotate(
			redis.NewLoginTokenStore,
			fx.As(new(commands.LoginTokenStore)),
		),
		fx.Annotate(
			redis.NewLoginRateLimiter,
			fx.As(new(commands.LoginRateLimiter)),
		),
	),
)
