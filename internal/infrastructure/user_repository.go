package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/bharath-541/FinSight/internal/domain/user"
	"github.com/bharath-541/FinSight/internal/pkg"
)

type UserRepository struct {
	DB *gorm.DB
}

type userDB struct {
	Id            string    `gorm:"type:varchar(26);primaryKey"`
	Name          string    `gorm:"type:varchar(120);not null"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	Password      string    `gorm:"type:varchar(72);not null"`
	MonthlyIncome float64   `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (userDB) TableName() string {
	return "users"
}

func toDomainUser(udb *userDB) (*user.User, error) {
	id, err := pkg.ParseULID(udb.Id)
	if err != nil {
		return nil, err
	}

	return &user.User{
		Id:            id,
		Name:          udb.Name,
		Email:         udb.Email,
		Password:      udb.Password,
		MonthlyIncome: udb.MonthlyIncome,
		CreatedAt:     udb.CreatedAt,
		UpdatedAt:     udb.UpdatedAt,
	}, nil
}

func toDBUser(u *user.User) *userDB {
	return &userDB{
		Id:            u.Id.String(),
		Name:          u.Name,
		Email:         u.Email,
		Password:      u.Password,
		MonthlyIncome: u.MonthlyIncome,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	return dbFromContext(ctx, r.DB).Create(toDBUser(u)).Error
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	return dbFromContext(ctx, r.DB).Model(&userDB{}).Where("id = ?", u.Id.String()).Updates(toDBUser(u)).Error
}

func (r *UserRepository) Delete(ctx context.Context, userID ulid.ULID) error {
	return dbFromContext(ctx, r.DB).Where("id = ?", userID.String()).Delete(&userDB{}).Error
}

func (r *UserRepository) GetById(ctx context.Context, userID ulid.ULID) (*user.User, error) {
	var udb userDB
	err := dbFromContext(ctx, r.DB).Where("id = ?", userID.String()).First(&udb).Error
	if err != nil {
		return nil, err
	}
	return toDomainUser(&udb)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var udb userDB
	err := dbFromContext(ctx, r.DB).Where("email = ?", email).First(&udb).Error
	if err != nil {
		return nil, err
	}
	return toDomainUser(&udb)
}

func (r *UserRepository) ListIds(ctx context.Context) ([]ulid.ULID, error) {
	var rawIds []string
	err := dbFromContext(ctx, r.DB).Model(&userDB{}).Pluck("id", &rawIds).Error
	if err != nil {
		return nil, err
	}

	ids := make([]ulid.ULID, 0, len(rawIds))
	for _, raw := range rawIds {
		id, err := pkg.ParseULID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
