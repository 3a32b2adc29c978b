package components

import (
	"oficina-criativa/internal/infra/gateway"
	"oficina-criativa/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			gateway.NewOneSignalClient,
			fx.As(new(commands.PushSender)),
			fx.As(new(commands.LoginLinkSender)),
		),
		fx.Annotate(
			gateway.NewAIClient,
			fx.As(new(commands.CompletionGateway)),
		),
	),
)
