package networth

import (
	"context"
	"math"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bharath-541/FinSight/internal/domain/asset"
	"github.com/bharath-541/FinSight/internal/domain/debt"
	appErrors "github.com/bharath-541/FinSight/internal/errors"
	"github.com/bharath-541/FinSight/internal/pkg"
)

const defaultHistoryLimit = 12

type Service struct {
	Assets    asset.Reader
	Debts     debt.Reader
	Snapshots SnapshotRepository
}

func NewService(assets asset.Reader, debts debt.Reader, snapshots SnapshotRepository) *Service {
	return &Service{Assets: assets, Debts: debts, Snapshots: snapshots}
}

type Current struct {
	TotalAssets    float64                `json:"totalAssets"`
	TotalDebts     float64                `json:"totalDebts"`
	NetWorth       float64                `json:"netWorth"`
	AssetBreakdown map[asset.Type]float64 `json:"assetBreakdown"`
	AssetCount     int                    `json:"assetCount"`
	DebtCount      int                    `json:"debtCount"`
}

// CalculateNetWorth derives net worth live from current assets and debts.
// Intermediate sums keep full precision; rounding happens once at the output
// boundary. A month's remaining cash never enters this figure.
func (s *Service) CalculateNetWorth(ctx context.Context, userID ulid.ULID) (*Current, error) {
	assets, debts, totalAssets, totalDebts, err := s.totals(ctx, userID)
	if err != nil {
		return nil, err
	}

	breakdown := map[asset.Type]float64{
		asset.TypeCash:       0,
		asset.TypeInvestment: 0,
		asset.TypeProperty:   0,
		asset.TypeOther:      0,
	}
	for _, a := range assets {
		breakdown[a.Type] += a.CurrentValue
	}
	for t, v := range breakdown {
		breakdown[t] = pkg.Round2(v)
	}

	return &Current{
		TotalAssets:    pkg.Round2(totalAssets),
		TotalDebts:     pkg.Round2(totalDebts),
		NetWorth:       pkg.Round2(totalAssets - totalDebts),
		AssetBreakdown: breakdown,
		AssetCount:     len(assets),
		DebtCount:      len(debts),
	}, nil
}

// SaveSnapshot recomputes the current figures and upserts the snapshot for
// (user, month). Idempotent: repeated calls with unchanged assets and debts
// yield the same record.
func (s *Service) SaveSnapshot(ctx context.Context, userID ulid.ULID, month pkg.Month) (*Snapshot, error) {
	_, _, totalAssets, totalDebts, err := s.totals(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	snapshot := &Snapshot{
		Id:          pkg.GenerateULIDObject(),
		UserId:      userID,
		Month:       month.String(),
		TotalAssets: pkg.Round2(totalAssets),
		TotalDebts:  pkg.Round2(totalDebts),
		NetWorth:    pkg.Round2(totalAssets - totalDebts),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Snapshots.Upsert(ctx, snapshot); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return snapshot, nil
}

func (s *Service) GetSnapshot(ctx context.Context, userID ulid.ULID, month pkg.Month) (*Snapshot, error) {
	snapshot, err := s.Snapshots.GetByUserAndMonth(ctx, userID, month.String())
	if err != nil {
		return nil, appErrors.ErrNotFound.WithError(err)
	}
	return snapshot, nil
}

type Trend struct {
	Change           float64 `json:"change"`
	PercentageChange float64 `json:"percentageChange"`
	Direction        string  `json:"direction"`
}

type History struct {
	Snapshots []*Snapshot `json:"snapshots"`
	Trend     *Trend      `json:"trend"`
}

// GetHistory returns the most recent snapshots (default 12) newest first,
// with a trend comparing the two latest when both exist.
func (s *Service) GetHistory(ctx context.Context, userID ulid.ULID, limit int) (*History, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	snapshots, err := s.Snapshots.GetHistory(ctx, userID, limit)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	var trend *Trend
	if len(snapshots) >= 2 {
		latest, previous := snapshots[0], snapshots[1]
		change := latest.NetWorth - previous.NetWorth

		percentageChange := 0.0
		if previous.NetWorth != 0 {
			percentageChange = change / math.Abs(previous.NetWorth) * 100
		}

		direction := "up"
		if change < 0 {
			direction = "down"
		}

		trend = &Trend{
			Change:           pkg.Round2(change),
			PercentageChange: pkg.Round2(percentageChange),
			Direction:        direction,
		}
	}

	return &History{Snapshots: snapshots, Trend: trend}, nil
}

func (s *Service) totals(ctx context.Context, userID ulid.ULID) ([]*asset.Asset, []*debt.Debt, float64, float64, error) {
	assets, err := s.Assets.GetByUserId(ctx, userID)
	if err != nil {
		return nil, nil, 0, 0, appErrors.NewDatabaseError(err)
	}

	debts, err := s.Debts.GetByUserId(ctx, userID)
	if err != nil {
		return nil, nil, 0, 0, appErrors.NewDatabaseError(err)
	}

	var totalAssets, totalDebts float64
	for _, a := range assets {
		totalAssets += a.CurrentValue
	}
	for _, d := range debts {
		totalDebts += d.RemainingBalance
	}

	return assets, debts, totalAssets, totalDebts, nil
}
