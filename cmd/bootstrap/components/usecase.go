package components

import (
	"circulation/internal/domain/policy"
	"circulation/internal/pkg/clock"
	"circulation/internal/pkg/config"
	"circulation/internal/usecase"
	"circulation/internal/usecase/commands"
	"circulation/internal/usecase/queries"
	"circulation/internal/usecase/shared"

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
	NewPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		fx.Annotate(
			commands.NewReservationUseCase,
			fx.As(new(commands.ReservationCommands)),
			fx.As(new(commands.Promoter)),
		),
		commands.NewLendingUseCase,
		commands.NewOverdueUseCase,
		NewCatalogCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBorrowQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPolicy(cfg config.Config) (policy.Policy, error) {
	rate, err := cfg.Circulation.FineRate()
	if err != nil {
		return policy.Policy{}, err
	}

	return policy.Policy{
		MaxActiveBorrows: cfg.Circulation.MaxActiveBorrows,
		MaxRenewals:      cfg.Circulation.MaxRenewals,
		DailyFineRate:    rate,
		DefaultLoanDays:  cfg.Circulation.DefaultLoanDays,
		DefaultRenewDays: cfg.Circulation.DefaultRenewDays,
		PickupWindow:     cfg.Circulation.PickupWindow,
		QueueWindow:      cfg.Circulation.QueueWindow,
	}, nil
}

func NewCatalogCommands(uow shared.UnitOfWork, reads shared.CommandReads, cfg config.Config) commands.CatalogCommands {
	return commands.NewCatalogUseCase(uow, reads, cfg.Circulation.SyncBatchSize)
}
