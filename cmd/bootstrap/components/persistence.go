package components

import (
	"group-deal-engine/internal/infra/notify"
	"group-deal-engine/internal/infra/readstore"
	"group-deal-engine/internal/infra/repository"
	sqlc "group-deal-engine/internal/infra/sqlc/generated"
	"group-deal-engine/internal/infra/uow"
	"group-deal-engine/internal/pkg/clock"
	"group-deal-engine/internal/pkg/config"
	"group-deal-engine/internal/usecase/queries"
	"group-deal-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	notifyModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Deal
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DealViewQueries)),
		),
		fx.Annotate(
			readstore.NewDealReadStore,
			fx.As(new(queries.DealReadStore)),
			fx.As(new(shared.CompletionCandidateReader)),
		),
		// Membership
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MembershipViewQueries)),
		),
		fx.Annotate(
			readstore.NewMembershipReadStore,
			fx.As(new(shared.MembershipReader)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.UserQueries)),
		),
		fx.Annotate(
			repository.NewUserDirectory,
			fx.As(new(shared.UserDirectory)),
		),
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.OrderQueries)),
		),
		fx.Annotate(
			repository.NewOrderLedger,
			fx.As(new(shared.OrderLedger)),
		),
		// DealTask
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.DealTaskQueries)),
		),
		fx.Annotate(
			repository.NewDealTaskRepository,
			fx.As(new(shared.TaskStore)),
		),
	),
)

var notifyModule = fx.Module("persistence/notify",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(notify.NotificationWriteQueries)),
		),
		notify.NewPostgresSink,
		NewNotificationSink,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

// NewNotificationSink stores every notification and mirrors it to NATS when connected.
func NewNotificationSink(pg *notify.PostgresSink, conn *nats.Conn, cfg config.Config, clk clock.Clock) shared.NotificationSink {
	if conn == nil {
		return pg
	}
	return notify.NewMultiSink(pg, notify.NewNATSSink(conn, cfg.NATS.SubjectPrefix, clk))
}
