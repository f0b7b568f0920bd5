package bootstrap

import (
	"tastybite-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	UpstreamModule,
	components.UseCaseModule,
	components.HandlerModule,
)
