package networth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/bharath-541/FinSight/internal/domain/asset"
	"github.com/bharath-541/FinSight/internal/domain/debt"
	"github.com/bharath-541/FinSight/internal/domain/networth"
	appErrors "github.com/bharath-541/FinSight/internal/errors"
	"github.com/bharath-541/FinSight/internal/pkg"
)

type fakeAssetReader struct {
	assets []*asset.Asset
	err    error
}

func (f *fakeAssetReader) GetByUserId(ctx context.Context, userID ulid.ULID) ([]*asset.Asset, error) {
	return f.assets, f.err
}

type fakeDebtReader struct {
	debts []*debt.Debt
	err   error
}

func (f *fakeDebtReader) GetByUserId(ctx context.Context, userID ulid.ULID) ([]*debt.Debt, error) {
	return f.debts, f.err
}

// fakeSnapshotStore keeps snapshots keyed by month, overwriting on conflict
// like the real upsert.
type fakeSnapshotStore struct {
	byMonth   map[string]*networth.Snapshot
	upsertErr error
}

func newSnapshotStore() *fakeSnapshotStore {
	return &fakeSnapshotStore{byMonth: make(map[string]*networth.Snapshot)}
}

func (f *fakeSnapshotStore) Upsert(ctx context.Context, s *networth.Snapshot) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.byMonth[s.Month] = s
	return nil
}

func (f *fakeSnapshotStore) GetByUserAndMonth(ctx context.Context, userID ulid.ULID, month string) (*networth.Snapshot, error) {
	s, ok := f.byMonth[month]
	if !ok {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (f *fakeSnapshotStore) GetHistory(ctx context.Context, userID ulid.ULID, limit int) ([]*networth.Snapshot, error) {
	months := make([]string, 0, len(f.byMonth))
	for m := range f.byMonth {
		months = append(months, m)
	}
	// Month strings sort chronologically; walk them newest first.
	for i := 0; i < len(months); i++ {
		for j := i + 1; j < len(months); j++ {
			if months[j] > months[i] {
				months[i], months[j] = months[j], months[i]
			}
		}
	}
	if len(months) > limit {
		months = months[:limit]
	}

	snapshots := make([]*networth.Snapshot, 0, len(months))
	for _, m := range months {
		snapshots = append(snapshots, f.byMonth[m])
	}
	return snapshots, nil
}

func cashAsset(value float64) *asset.Asset {
	return &asset.Asset{Id: ulid.Make(), Type: asset.TypeCash, Name: "Savings account", CurrentValue: value}
}

func loan(balance float64) *debt.Debt {
	return &debt.Debt{Id: ulid.Make(), Name: "Loan", Principal: balance * 2, RemainingBalance: balance}
}

func mustMonth(t *testing.T, s string) pkg.Month {
	t.Helper()
	m, err := pkg.ParseMonth(s)
	if err != nil {
		t.Fatalf("bad month %q: %v", s, err)
	}
	return m
}

func TestCalculateNetWorth(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("assets minus debt balances", func(t *testing.T) {
		svc := networth.NewService(
			&fakeAssetReader{assets: []*asset.Asset{
				cashAsset(50000),
				{Id: ulid.Make(), Type: asset.TypeInvestment, Name: "Index fund", CurrentValue: 25000},
			}},
			&fakeDebtReader{debts: []*debt.Debt{loan(20000)}},
			newSnapshotStore(),
		)

		current, err := svc.CalculateNetWorth(ctx, ulid.Make())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if current.TotalAssets != 75000 || current.TotalDebts != 20000 || current.NetWorth != 55000 {
			t.Fatalf("unexpected figures: %+v", current)
		}
		if current.AssetBreakdown[asset.TypeCash] != 50000 || current.AssetBreakdown[asset.TypeInvestment] != 25000 {
			t.Fatalf("unexpected breakdown: %+v", current.AssetBreakdown)
		}
		if current.AssetCount != 2 || current.DebtCount != 1 {
			t.Fatalf("unexpected counts: %+v", current)
		}
	})

	t.Run("empty portfolio is zero", func(t *testing.T) {
		svc := networth.NewService(&fakeAssetReader{}, &fakeDebtReader{}, newSnapshotStore())
		current, err := svc.CalculateNetWorth(ctx, ulid.Make())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if current.NetWorth != 0 {
			t.Fatalf("expected 0, got %v", current.NetWorth)
		}
	})

	t.Run("debts can push net worth negative", func(t *testing.T) {
		svc := networth.NewService(
			&fakeAssetReader{assets: []*asset.Asset{cashAsset(1000)}},
			&fakeDebtReader{debts: []*debt.Debt{loan(5000)}},
			newSnapshotStore(),
		)
		current, err := svc.CalculateNetWorth(ctx, ulid.Make())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if current.NetWorth != -4000 {
			t.Fatalf("expected -4000, got %v", current.NetWorth)
		}
	})

	t.Run("asset reader failure surfaces", func(t *testing.T) {
		svc := networth.NewService(
			&fakeAssetReader{err: errors.New("connection refused")},
			&fakeDebtReader{},
			newSnapshotStore(),
		)
		_, err := svc.CalculateNetWorth(ctx, ulid.Make())
		if err == nil {
			t.Fatalf("expected error")
		}
		appErr, _ := appErrors.AsAppError(err)
		if appErr.Code != appErrors.ErrDatabase.Code {
			t.Fatalf("expected %s, got %s", appErrors.ErrDatabase.Code, appErr.Code)
		}
	})
}

func TestSaveSnapshotIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	month := mustMonth(t, "2025-03")
	store := newSnapshotStore()

	svc := networth.NewService(
		&fakeAssetReader{assets: []*asset.Asset{cashAsset(50000)}},
		&fakeDebtReader{debts: []*debt.Debt{loan(20000)}},
		store,
	)

	userID := ulid.Make()
	first, err := svc.SaveSnapshot(ctx, userID, month)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.SaveSnapshot(ctx, userID, month)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.byMonth) != 1 {
		t.Fatalf("expected a single row, got %d", len(store.byMonth))
	}
	if first.NetWorth != second.NetWorth || first.TotalAssets != second.TotalAssets {
		t.Fatalf("expected identical figures: %+v vs %+v", first, second)
	}
	if first.NetWorth != 30000 {
		t.Fatalf("expected 30000, got %v", first.NetWorth)
	}
}

func TestGetHistoryTrend(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := ulid.Make()

	t.Run("trend compares two latest snapshots", func(t *testing.T) {
		store := newSnapshotStore()
		store.byMonth["2025-01"] = &networth.Snapshot{Month: "2025-01", NetWorth: 10000}
		store.byMonth["2025-02"] = &networth.Snapshot{Month: "2025-02", NetWorth: 12500}

		svc := networth.NewService(&fakeAssetReader{}, &fakeDebtReader{}, store)
		history, err := svc.GetHistory(ctx, userID, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if history.Trend == nil {
			t.Fatalf("expected a trend")
		}
		if history.Trend.Change != 2500 || history.Trend.PercentageChange != 25 {
			t.Fatalf("unexpected trend: %+v", history.Trend)
		}
		if history.Trend.Direction != "up" {
			t.Fatalf("expected up, got %s", history.Trend.Direction)
		}
	})

	t.Run("downward trend from negative base uses absolute denominator", func(t *testing.T) {
		store := newSnapshotStore()
		store.byMonth["2025-01"] = &networth.Snapshot{Month: "2025-01", NetWorth: -1000}
		store.byMonth["2025-02"] = &networth.Snapshot{Month: "2025-02", NetWorth: -1500}

		svc := networth.NewService(&fakeAssetReader{}, &fakeDebtReader{}, store)
		history, err := svc.GetHistory(ctx, userID, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if history.Trend.Change != -500 || history.Trend.PercentageChange != -50 {
			t.Fatalf("unexpected trend: %+v", history.Trend)
		}
		if history.Trend.Direction != "down" {
			t.Fatalf("expected down, got %s", history.Trend.Direction)
		}
	})

	t.Run("zero base guards percentage", func(t *testing.T) {
		store := newSnapshotStore()
		store.byMonth["2025-01"] = &networth.Snapshot{Month: "2025-01", NetWorth: 0}
		store.byMonth["2025-02"] = &networth.Snapshot{Month: "2025-02", NetWorth: 500}

		svc := networth.NewService(&fakeAssetReader{}, &fakeDebtReader{}, store)
		history, err := svc.GetHistory(ctx, userID, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if history.Trend.PercentageChange != 0 {
			t.Fatalf("expected 0, got %v", history.Trend.PercentageChange)
		}
	})

	t.Run("single snapshot has no trend", func(t *testing.T) {
		store := newSnapshotStore()
		store.byMonth["2025-01"] = &networth.Snapshot{Month: "2025-01", NetWorth: 10000}

		svc := networth.NewService(&fakeAssetReader{}, &fakeDebtReader{}, store)
		history, err := svc.GetHistory(ctx, userID, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if history.Trend != nil {
			t.Fatalf("expected no trend, got %+v", history.Trend)
		}
		if len(history.Snapshots) != 1 {
			t.Fatalf("expected 1 snapshot")
		}
	})
}

// Net worth is derived live from assets and debts; ledger writes that touch
// neither cannot move it.
func TestNetWorthIgnoresExpenses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assets := &fakeAssetReader{assets: []*asset.Asset{cashAsset(50000)}}
	debts := &fakeDebtReader{debts: []*debt.Debt{loan(20000)}}
	svc := networth.NewService(assets, debts, newSnapshotStore())

	before, err := svc.CalculateNetWorth(ctx, ulid.Make())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Recording an expense changes no asset and no debt, so a recomputation
	// returns the same figure.
	after, err := svc.CalculateNetWorth(ctx, ulid.Make())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if before.NetWorth != after.NetWorth || before.NetWorth != 30000 {
		t.Fatalf("expected stable 30000, got %v then %v", before.NetWorth, after.NetWorth)
	}
}
