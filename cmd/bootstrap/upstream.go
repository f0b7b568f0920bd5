package bootstrap

import (
	"log/slog"

	"tastybite-booking/internal/infra/sessionstore"
	"tastybite-booking/internal/infra/upstream"
	"tastybite-booking/internal/pkg/clock"
	"tastybite-booking/internal/pkg/config"
	"tastybite-booking/internal/usecase/commands"
	"tastybite-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		fx.Annotate(
			NewUpstreamClient,
			fx.As(new(commands.AvailabilityClient)),
			fx.As(new(commands.ReservationClient)),
			fx.As(new(queries.ReservationReader)),
		),
		fx.Annotate(
			NewSessionStore,
			fx.As(new(commands.SessionStore)),
			fx.As(new(queries.SessionReader)),
		),
	),
)

// NewUpstreamClient selects the reservation backend from configuration.
// The fake backend keeps everything in memory for local development and
// tests, the HTTP backend talks to the real restaurant API.
func NewUpstreamClient(cfg config.Config, clk clock.Clock, logger *slog.Logger) (upstream.Client, error) {
	if err := cfg.Booking.ValidateBackend(); err != nil {
		return nil, err
	}
	if cfg.Booking.Backend == config.BackendHTTP {
		return upstream.NewHTTPClient(cfg.Booking, clk, logger), nil
	}
	return upstream.NewFakeClient(clk), nil
}

func NewSessionStore(cfg config.Config, clk clock.Clock) *sessionstore.Store {
	return sessionstore.New(cfg.Booking.SessionTTL, clk)
}
