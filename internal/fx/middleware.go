package fx

import (
	"go.uber.org/fx"

	"github.com/bharath-541/FinSight/config"
	"github.com/bharath-541/FinSight/internal/domain/user"
	"github.com/bharath-541/FinSight/internal/middleware"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config, userSvc *user.Service) (*middleware.JwtService, error) {
	return middleware.NewJwtService(cfg.JWT, userSvc)
}
