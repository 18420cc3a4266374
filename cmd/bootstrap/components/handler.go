package components

import (
	"group-deal-engine/internal/handler"
	"group-deal-engine/internal/handler/api"
	"group-deal-engine/internal/handler/middleware"
	"group-deal-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			func(s *commands.CompletionSweeper) *commands.CompletionSweeper { return s },
			fx.As(new(api.Sweeper)),
		),
		api.NewDealHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
