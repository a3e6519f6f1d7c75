package components

import (
	"circulation/internal/infra/db"
	"circulation/internal/infra/readstore"
	"circulation/internal/infra/uow"
	"circulation/internal/usecase/commands"
	"circulation/internal/usecase/queries"
	"circulation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		NewCommandReads,
		// Read stores
		fx.Annotate(
			readstore.NewBorrowReadStore,
			fx.As(new(queries.BorrowReadStore)),
			fx.As(new(commands.OverdueScanner)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(commands.ExpiryScanner)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCommandReads(u shared.UnitOfWork) shared.CommandReads {
	return u.CommandReads()
}
