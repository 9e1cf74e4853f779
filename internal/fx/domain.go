package fx

import (
	"go.uber.org/fx"

	"github.com/bharath-541/FinSight/internal/domain/asset"
	"github.com/bharath-541/FinSight/internal/domain/auth"
	"github.com/bharath-541/FinSight/internal/domain/budget"
	"github.com/bharath-541/FinSight/internal/domain/debt"
	"github.com/bharath-541/FinSight/internal/domain/expense"
	"github.com/bharath-541/FinSight/internal/domain/insight"
	"github.com/bharath-541/FinSight/internal/domain/networth"
	"github.com/bharath-541/FinSight/internal/domain/shared"
	"github.com/bharath-541/FinSight/internal/domain/summary"
	"github.com/bharath-541/FinSight/internal/domain/user"
	"github.com/bharath-541/FinSight/internal/infrastructure"
	"github.com/bharath-541/FinSight/internal/middleware"
)

// DomainModule provides every domain service.
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newUserCheckerService,
		newAuthService,
		newExpenseService,
		newAssetService,
		newDebtService,
		newBudgetService,
		newInsightService,
		newNetWorthService,
		newSummaryService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newUserCheckerService(userSvc *user.Service) *shared.UserCheckerService {
	return shared.NewUserCheckerService(userSvc)
}

func newAuthService(
	repo *infrastructure.UserRepository,
	jwtSvc *middleware.JwtService,
) *auth.Service {
	return auth.NewService(repo, jwtSvc)
}

func newExpenseService(
	repo *infrastructure.ExpenseRepository,
	userChecker *shared.UserCheckerService,
) *expense.Service {
	return expense.NewService(repo, userChecker)
}

func newAssetService(
	repo *infrastructure.AssetRepository,
	userChecker *shared.UserCheckerService,
) *asset.Service {
	return asset.NewService(repo, userChecker)
}

func newDebtService(
	repo *infrastructure.DebtRepository,
	expenseRepo *infrastructure.ExpenseRepository,
	transactor *infrastructure.GormTransactor,
	userChecker *shared.UserCheckerService,
) *debt.Service {
	return debt.NewService(repo, expenseRepo, transactor, userChecker)
}

func newBudgetService(repo *infrastructure.ExpenseRepository) *budget.Service {
	return budget.NewService(repo)
}

func newInsightService(repo *infrastructure.ExpenseRepository) *insight.Service {
	return insight.NewService(repo)
}

func newNetWorthService(
	assetRepo *infrastructure.AssetRepository,
	debtRepo *infrastructure.DebtRepository,
	snapshotRepo *infrastructure.SnapshotRepository,
) *networth.Service {
	return networth.NewService(assetRepo, debtRepo, snapshotRepo)
}

func newSummaryService(
	userSvc *user.Service,
	budgetSvc *budget.Service,
	insightSvc *insight.Service,
	netWorthSvc *networth.Service,
) *summary.Service {
	return summary.NewService(userSvc, budgetSvc, insightSvc, netWorthSvc)
}
