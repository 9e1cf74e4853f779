package fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/bharath-541/FinSight/config"
	"github.com/bharath-541/FinSight/internal/infrastructure"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newTransactor,
		newUserRepository,
		newExpenseRepository,
		newAssetRepository,
		newDebtRepository,
		newSnapshotRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newTransactor(db *gorm.DB) *infrastructure.GormTransactor {
	return &infrastructure.GormTransactor{DB: db}
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newExpenseRepository(db *gorm.DB) *infrastructure.ExpenseRepository {
	return &infrastructure.ExpenseRepository{DB: db}
}

func newAssetRepository(db *gorm.DB) *infrastructure.AssetRepository {
	return &infrastructure.AssetRepository{DB: db}
}

func newDebtRepository(db *gorm.DB) *infrastructure.DebtRepository {
	return &infrastructure.DebtRepository{DB: db}
}

func newSnapshotRepository(db *gorm.DB) *infrastructure.SnapshotRepository {
	return &infrastructure.SnapshotRepository{DB: db}
}
