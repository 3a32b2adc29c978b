package components

import (
	"oficina-criativa/internal/pkg/clock"
	"oficina-criativa/internal/usecase"
	"oficina-criativa/internal/usecase/commands"
	"oficina-criativa/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewWebhookCommands,
		commands.NewAuthCommands,
		commands.NewPurchaseCommands,
		commands.NewProductCommands,
		commands.NewDeliverableCommands,
		commands.NewNotificationCommands,
		commands.NewAnalyticsCommands,
		commands.NewAssistantCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewProductQueries,
		queries.NewPurchaseQueries,
		queries.NewDeliverableQueries,
		queries.NewAnalyticsQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
