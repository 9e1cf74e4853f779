package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bharath-541/FinSight/internal/domain/networth"
	"github.com/bharath-541/FinSight/internal/pkg"
)

type SnapshotRepository struct {
	DB *gorm.DB
}

type snapshotDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey"`
	UserId      string    `gorm:"type:varchar(26);uniqueIndex:idx_snapshots_user_month;not null"`
	Month       string    `gorm:"type:varchar(7);uniqueIndex:idx_snapshots_user_month;not null"`
	TotalAssets float64   `gorm:"type:decimal(15,2);not null"`
	TotalDebts  float64   `gorm:"type:decimal(15,2);not null"`
	NetWorth    float64   `gorm:"type:decimal(15,2);not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (snapshotDB) TableName() string {
	return "net_worth_snapshots"
}

func toDomainSnapshot(sdb *snapshotDB) (*networth.Snapshot, error) {
	id, err := pkg.ParseULID(sdb.Id)
	if err != nil {
		return nil, err
	}

	userID, err := pkg.ParseULID(sdb.UserId)
	if err != nil {
		return nil, err
	}

	return &networth.Snapshot{
		Id:          id,
		UserId:      userID,
		Month:       sdb.Month,
		TotalAssets: sdb.TotalAssets,
		TotalDebts:  sdb.TotalDebts,
		NetWorth:    sdb.NetWorth,
		CreatedAt:   sdb.CreatedAt,
		UpdatedAt:   sdb.UpdatedAt,
	}, nil
}

func toDBSnapshot(s *networth.Snapshot) *snapshotDB {
	return &snapshotDB{
		Id:          s.Id.String(),
		UserId:      s.UserId.String(),
		Month:       s.Month,
		TotalAssets: s.TotalAssets,
		TotalDebts:  s.TotalDebts,
		NetWorth:    s.NetWorth,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// Upsert relies on the (user_id, month) unique index: a conflicting write
// overwrites the stored figures instead of failing, so re-running a month's
// snapshot is idempotent.
func (r *SnapshotRepository) Upsert(ctx context.Context, s *networth.Snapshot) error {
	return dbFromContext(ctx, r.DB).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_assets", "total_debts", "net_worth", "updated_at",
		}),
	}).Create(toDBSnapshot(s)).Error
}

func (r *SnapshotRepository) GetByUserAndMonth(ctx context.Context, userID ulid.ULID, month string) (*networth.Snapshot, error) {
	var sdb snapshotDB
	err := dbFromContext(ctx, r.DB).
		Where("user_id = ? AND month = ?", userID.String(), month).
		First(&sdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainSnapshot(&sdb)
}

func (r *SnapshotRepository) GetHistory(ctx context.Context, userID ulid.ULID, limit int) ([]*networth.Snapshot, error) {
	var rows []snapshotDB
	err := dbFromContext(ctx, r.DB).
		Where("user_id = ?", userID.String()).
		Order("month DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	snapshots := make([]*networth.Snapshot, 0, len(rows))
	for i := range rows {
		s, err := toDomainSnapshot(&rows[i])
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, nil
}
