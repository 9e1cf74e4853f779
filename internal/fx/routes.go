package fx

import (
	"time"

	"go.uber.org/fx"

	"github.com/bharath-541/FinSight/internal/domain/asset"
	"github.com/bharath-541/FinSight/internal/domain/auth"
	"github.com/bharath-541/FinSight/internal/domain/debt"
	"github.com/bharath-541/FinSight/internal/domain/expense"
	"github.com/bharath-541/FinSight/internal/domain/networth"
	"github.com/bharath-541/FinSight/internal/domain/summary"
	"github.com/bharath-541/FinSight/internal/domain/user"
	"github.com/bharath-541/FinSight/internal/middleware"
	"github.com/bharath-541/FinSight/internal/routes"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	userSvc *user.Service,
	authSvc *auth.Service,
	jwtSvc *middleware.JwtService,
	expenseSvc *expense.Service,
	assetSvc *asset.Service,
	debtSvc *debt.Service,
	netWorthSvc *networth.Service,
	summarySvc *summary.Service,
) *routes.Handler {
	return &routes.Handler{
		UserService:     userSvc,
		AuthService:     authSvc,
		JwtService:      jwtSvc,
		ExpenseService:  expenseSvc,
		AssetService:    assetSvc,
		DebtService:     debtSvc,
		NetWorthService: netWorthSvc,
		SummaryService:  summarySvc,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
