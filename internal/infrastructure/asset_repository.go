package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/bharath-541/FinSight/internal/domain/asset"
	"github.com/bharath-541/FinSight/internal/pkg"
)

type AssetRepository struct {
	DB *gorm.DB
}

type assetDB struct {
	Id           string    `gorm:"type:varchar(26);primaryKey"`
	UserId       string    `gorm:"type:varchar(26);index:idx_assets_user;not null"`
	Type         string    `gorm:"type:varchar(20);not null"`
	Name         string    `gorm:"type:varchar(120);not null"`
	CurrentValue float64   `gorm:"type:decimal(15,2);not null"`
	Description  string    `gorm:"type:varchar(500)"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (assetDB) TableName() string {
	return "assets"
}

func toDomainAsset(adb *assetDB) (*asset.Asset, error) {
	id, err := pkg.ParseULID(adb.Id)
	if err != nil {
		return nil, err
	}

	userID, err := pkg.ParseULID(adb.UserId)
	if err != nil {
		return nil, err
	}

	return &asset.Asset{
		Id:           id,
		UserId:       userID,
		Type:         asset.Type(adb.Type),
		Name:         adb.Name,
		CurrentValue: adb.CurrentValue,
		Description:  adb.Description,
		CreatedAt:    adb.CreatedAt,
		UpdatedAt:    adb.UpdatedAt,
	}, nil
}

func toDBAsset(a *asset.Asset) *assetDB {
	return &assetDB{
		Id:           a.Id.String(),
		UserId:       a.UserId.String(),
		Type:         string(a.Type),
		Name:         a.Name,
		CurrentValue: a.CurrentValue,
		Description:  a.Description,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	return dbFromContext(ctx, r.DB).Create(toDBAsset(a)).Error
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	return dbFromContext(ctx, r.DB).Model(&assetDB{}).Where("id = ?", a.Id.String()).Updates(toDBAsset(a)).Error
}

func (r *AssetRepository) Delete(ctx context.Context, assetID ulid.ULID) error {
	return dbFromContext(ctx, r.DB).Where("id = ?", assetID.String()).Delete(&assetDB{}).Error
}

func (r *AssetRepository) GetById(ctx context.Context, assetID ulid.ULID) (*asset.Asset, error) {
	var adb assetDB
	err := dbFromContext(ctx, r.DB).Where("id = ?", assetID.String()).First(&adb).Error
	if err != nil {
		return nil, err
	}
	return toDomainAsset(&adb)
}

func (r *AssetRepository) GetByUserId(ctx context.Context, userID ulid.ULID) ([]*asset.Asset, error) {
	var rows []assetDB
	err := dbFromContext(ctx, r.DB).
		Where("user_id = ?", userID.String()).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	assets := make([]*asset.Asset, 0, len(rows))
	for i := range rows {
		a, err := toDomainAsset(&rows[i])
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, nil
}
