package fx

import "go.uber.org/fx"

// AppModule assembles the whole application graph.
var AppModule = fx.Options(
	ConfigModule,
	InfrastructureModule,
	DomainModule,
	MiddlewareModule,
	RoutesModule,
	JobsModule,
	ServerModule,
)
