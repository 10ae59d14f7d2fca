package components

import (
	"atelier-store/internal/infra/db"
	"atelier-store/internal/infra/mailer"
	"atelier-store/internal/infra/readstore"
	"atelier-store/internal/infra/rediscache"
	"atelier-store/internal/infra/repository"
	"atelier-store/internal/infra/uow"
	"atelier-store/internal/pkg/config"
	"atelier-store/internal/usecase/commands"
	"atelier-store/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Hold views serve both the cart query side and the sweep/finalizer
		// lookups on the command side.
		fx.Annotate(
			readstore.NewHoldReadStore,
			fx.As(new(queries.HoldReadStore)),
			fx.As(new(commands.HoldFinder)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			rediscache.NewAvailabilityMirror,
			fx.As(new(commands.AvailabilityMirror)),
			fx.As(new(queries.AvailabilityMirrorReader)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.HoldRepository)),
		),
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		NewMailer,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewMailer(cfg config.Config) commands.Mailer {
	return mailer.NewHTTPMailer(cfg.Notify.EmailEndpoint)
}
