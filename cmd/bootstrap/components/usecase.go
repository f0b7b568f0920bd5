package components

import (
	"log/slog"

	"tastybite-booking/internal/infra/notify"
	"tastybite-booking/internal/pkg/clock"
	"tastybite-booking/internal/usecase"
	"tastybite-booking/internal/usecase/commands"
	"tastybite-booking/internal/usecase/queries"

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
	fx.Annotate(
		func(logger *slog.Logger) *notify.SlogSink {
			return notify.NewSlogSink(logger)
		},
		fx.As(new(commands.NotificationSink)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSessionQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		fx.Annotate(
			usecase.NewTokenValidator,
			fx.As(new(usecase.TokenValidator)),
			fx.As(new(commands.IdentityProvider)),
		),
	),
)
