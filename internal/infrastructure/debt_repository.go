package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/bharath-541/FinSight/internal/domain/debt"
	"github.com/bharath-541/FinSight/internal/pkg"
)

type DebtRepository struct {
	DB *gorm.DB
}

type debtDB struct {
	Id               string    `gorm:"type:varchar(26);primaryKey"`
	UserId           string    `gorm:"type:varchar(26);index:idx_debts_user;not null"`
	Name             string    `gorm:"type:varchar(120);not null"`
	Principal        float64   `gorm:"type:decimal(15,2);not null"`
	RemainingBalance float64   `gorm:"type:decimal(15,2);not null"`
	InterestRate     float64   `gorm:"type:decimal(5,2);not null"`
	MonthlyEMI       float64   `gorm:"type:decimal(15,2);not null"`
	Description      string    `gorm:"type:varchar(500)"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (debtDB) TableName() string {
	return "debts"
}

func toDomainDebt(ddb *debtDB) (*debt.Debt, error) {
	id, err := pkg.ParseULID(ddb.Id)
	if err != nil {
		return nil, err
	}

	userID, err := pkg.ParseULID(ddb.UserId)
	if err != nil {
		return nil, err
	}

	return &debt.Debt{
		Id:               id,
		UserId:           userID,
		Name:             ddb.Name,
		Principal:        ddb.Principal,
		RemainingBalance: ddb.RemainingBalance,
		InterestRate:     ddb.InterestRate,
		MonthlyEMI:       ddb.MonthlyEMI,
		Description:      ddb.Description,
		CreatedAt:        ddb.CreatedAt,
		UpdatedAt:        ddb.UpdatedAt,
	}, nil
}

func toDBDebt(d *debt.Debt) *debtDB {
	return &debtDB{
		Id:               d.Id.String(),
		UserId:           d.UserId.String(),
		Name:             d.Name,
		Principal:        d.Principal,
		RemainingBalance: d.RemainingBalance,
		InterestRate:     d.InterestRate,
		MonthlyEMI:       d.MonthlyEMI,
		Description:      d.Description,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func (r *DebtRepository) Create(ctx context.Context, d *debt.Debt) error {
	return dbFromContext(ctx, r.DB).Create(toDBDebt(d)).Error
}

func (r *DebtRepository) Update(ctx context.Context, d *debt.Debt) error {
	return dbFromContext(ctx, r.DB).Model(&debtDB{}).Where("id = ?", d.Id.String()).Updates(toDBDebt(d)).Error
}

func (r *DebtRepository) Delete(ctx context.Context, debtID ulid.ULID) error {
	return dbFromContext(ctx, r.DB).Where("id = ?", debtID.String()).Delete(&debtDB{}).Error
}

func (r *DebtRepository) GetById(ctx context.Context, debtID ulid.ULID) (*debt.Debt, error) {
	var ddb debtDB
	err := dbFromContext(ctx, r.DB).Where("id = ?", debtID.String()).First(&ddb).Error
	if err != nil {
		return nil, err
	}
	return toDomainDebt(&ddb)
}

func (r *DebtRepository) GetByUserId(ctx context.Context, userID ulid.ULID) ([]*debt.Debt, error) {
	var rows []debtDB
	err := dbFromContext(ctx, r.DB).
		Where("user_id = ?", userID.String()).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	debts := make([]*debt.Debt, 0, len(rows))
	for i := range rows {
		d, err := toDomainDebt(&rows[i])
		if err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}
	return debts, nil
}

// UpdateBalance joins the transaction carried in ctx, if any, so the EMI flow
// can pair it atomically with the expense insert.
func (r *DebtRepository) UpdateBalance(ctx context.Context, debtID ulid.ULID, newBalance float64) error {
	return dbFromContext(ctx, r.DB).Model(&debtDB{}).
		Where("id = ?", debtID.String()).
		Updates(map[string]interface{}{
			"remaining_balance": newBalance,
			"updated_at":        time.Now(),
		}).Error
}
