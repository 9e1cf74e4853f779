package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/bharath-541/FinSight/internal/domain/expense"
	"github.com/bharath-541/FinSight/internal/pkg"
)

type ExpenseRepository struct {
	DB *gorm.DB
}

type expenseDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	UserId    string    `gorm:"type:varchar(26);index:idx_expenses_user_date;not null"`
	Amount    float64   `gorm:"type:decimal(15,2);not null"`
	Category  string    `gorm:"type:varchar(120);not null"`
	Bucket    string    `gorm:"type:varchar(10);not null"`
	Note      string    `gorm:"type:varchar(500)"`
	Date      time.Time `gorm:"index:idx_expenses_user_date;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (expenseDB) TableName() string {
	return "expenses"
}

func toDomainExpense(edb *expenseDB) (*expense.Expense, error) {
	id, err := pkg.ParseULID(edb.Id)
	if err != nil {
		return nil, err
	}

	userID, err := pkg.ParseULID(edb.UserId)
	if err != nil {
		return nil, err
	}

	return &expense.Expense{
		Id:        id,
		UserId:    userID,
		Amount:    edb.Amount,
		Category:  edb.Category,
		Bucket:    expense.Bucket(edb.Bucket),
		Note:      edb.Note,
		Date:      edb.Date,
		CreatedAt: edb.CreatedAt,
		UpdatedAt: edb.UpdatedAt,
	}, nil
}

func toDBExpense(e *expense.Expense) *expenseDB {
	return &expenseDB{
		Id:        e.Id.String(),
		UserId:    e.UserId.String(),
		Amount:    e.Amount,
		Category:  e.Category,
		Bucket:    string(e.Bucket),
		Note:      e.Note,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toDomainExpenses(rows []expenseDB) ([]*expense.Expense, error) {
	expenses := make([]*expense.Expense, 0, len(rows))
	for i := range rows {
		e, err := toDomainExpense(&rows[i])
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	return dbFromContext(ctx, r.DB).Create(toDBExpense(e)).Error
}

func (r *ExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	return dbFromContext(ctx, r.DB).Model(&expenseDB{}).Where("id = ?", e.Id.String()).Updates(toDBExpense(e)).Error
}

func (r *ExpenseRepository) Delete(ctx context.Context, expenseID ulid.ULID) error {
	return dbFromContext(ctx, r.DB).Where("id = ?", expenseID.String()).Delete(&expenseDB{}).Error
}

func (r *ExpenseRepository) GetById(ctx context.Context, expenseID ulid.ULID) (*expense.Expense, error) {
	var edb expenseDB
	err := dbFromContext(ctx, r.DB).Where("id = ?", expenseID.String()).First(&edb).Error
	if err != nil {
		return nil, err
	}
	return toDomainExpense(&edb)
}

func (r *ExpenseRepository) GetByMonth(ctx context.Context, userID ulid.ULID, month pkg.Month) ([]*expense.Expense, error) {
	var rows []expenseDB
	err := dbFromContext(ctx, r.DB).
		Where("user_id = ? AND date >= ? AND date < ?", userID.String(), month.Start(), month.Next().Start()).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainExpenses(rows)
}

func (r *ExpenseRepository) GetByUserId(ctx context.Context, userID ulid.ULID, filters *expense.Filters, pagination *pkg.PaginationParams) ([]*expense.Expense, int64, error) {
	query := dbFromContext(ctx, r.DB).Model(&expenseDB{}).Where("user_id = ?", userID.String())

	if filters != nil {
		if filters.Month != nil {
			query = query.Where("date >= ? AND date < ?", filters.Month.Start(), filters.Month.Next().Start())
		}
		if filters.Bucket != nil {
			query = query.Where("bucket = ?", string(*filters.Bucket))
		}
		if filters.Category != nil {
			query = query.Where("category = ?", *filters.Category)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if pagination != nil {
		query = query.Offset(pagination.Offset()).Limit(pagination.Limit)
	}

	var rows []expenseDB
	if err := query.Order("date DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	expenses, err := toDomainExpenses(rows)
	if err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}
