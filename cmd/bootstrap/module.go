package bootstrap

import (
	"circulation/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule wires everything short of the HTTP surface. The sweep CLI
// runs on this alone.
var CoreModule = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	components.HandlerModule,
)
