package components

import (
	"group-deal-engine/internal/pkg/clock"
	"group-deal-engine/internal/pkg/config"
	"group-deal-engine/internal/pkg/metrics"
	"group-deal-engine/internal/usecase"
	"group-deal-engine/internal/usecase/commands"
	"group-deal-engine/internal/usecase/fanout"
	"group-deal-engine/internal/usecase/queries"
	"group-deal-engine/internal/usecase/shared"
	"group-deal-engine/internal/usecase/tasks"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseTasksModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	metrics.New,
	func(members shared.MembershipReader, sink shared.NotificationSink, cfg config.Config, m *metrics.Metrics) shared.Broadcaster {
		return fanout.New(members, sink, cfg.Deal.FanoutConcurrency, m)
	},
)

var usecaseTasksModule = fx.Module("usecase/tasks",
	fx.Provide(
		func(store shared.TaskStore, ledger shared.OrderLedger, b shared.Broadcaster, clk clock.Clock, cfg config.Config, m *metrics.Metrics) *tasks.Runner {
			return tasks.NewRunner(store, ledger, b, clk, cfg.Worker.RetryBackoff, m)
		},
		func(r *tasks.Runner) commands.TaskRunner { return r },
		func(store shared.TaskStore, r *tasks.Runner, clk clock.Clock, cfg config.Config) *tasks.Dispatcher {
			return tasks.NewDispatcher(store, r, clk, tasks.DispatcherOptions{
				BatchSize:   cfg.Worker.TaskBatchSize,
				MaxAttempts: cfg.Worker.TaskMaxAttempts,
				StaleAfter:  cfg.Worker.TaskStaleAfter,
			})
		},
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCompleter,
		func(c shared.CompletionCandidateReader, completer commands.Completer, clk clock.Clock, cfg config.Config) *commands.CompletionSweeper {
			return commands.NewCompletionSweeper(c, completer, clk, cfg.Worker.TaskBatchSize)
		},
		func(
			uow shared.UnitOfWork,
			members shared.MembershipReader,
			users shared.UserDirectory,
			ledger shared.OrderLedger,
			sink shared.NotificationSink,
			b shared.Broadcaster,
			completer commands.Completer,
			clk clock.Clock,
			cfg config.Config,
			m *metrics.Metrics,
		) commands.DealCommands {
			return commands.NewDealUseCase(uow, members, users, ledger, sink, b, completer, clk, commands.DealOptions{
				NearThresholdWindow: cfg.Deal.NearThresholdWindow,
				ReservationQuantity: cfg.Deal.ReservationQuantity,
			}, m)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDealQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
