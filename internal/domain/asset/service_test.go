package asset_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/bharath-541/FinSight/internal/domain/asset"
	"github.com/bharath-541/FinSight/internal/domain/shared"
	appErrors "github.com/bharath-541/FinSight/internal/errors"
)

type fakeAssetRepository struct {
	createFn      func(ctx context.Context, a *asset.Asset) error
	updateFn      func(ctx context.Context, a *asset.Asset) error
	deleteFn      func(ctx context.Context, id ulid.ULID) error
	getByIdFn     func(ctx context.Context, id ulid.ULID) (*asset.Asset, error)
	getByUserIdFn func(ctx context.Context, userID ulid.ULID) ([]*asset.Asset, error)
}

func (f *fakeAssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, a)
	}
	return nil
}

func (f *fakeAssetRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeAssetRepository) GetById(ctx context.Context, id ulid.ULID) (*asset.Asset, error) {
	if f.getByIdFn != nil {
		return f.getByIdFn(ctx, id)
	}
	return nil, errors.New("record not found")
}

func (f *fakeAssetRepository) GetByUserId(ctx context.Context, userID ulid.ULID) ([]*asset.Asset, error) {
	if f.getByUserIdFn != nil {
		return f.getByUserIdFn(ctx, userID)
	}
	return nil, nil
}

type fakeUserChecker struct {
	err error
}

func (f *fakeUserChecker) Exists(ctx context.Context, userID ulid.ULID) error { return f.err }

func newChecker(err error) *shared.UserCheckerService {
	return shared.NewUserCheckerService(&fakeUserChecker{err: err})
}

func TestCreateAsset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := ulid.Make()

	t.Run("persists a normalized asset", func(t *testing.T) {
		var created *asset.Asset
		repo := &fakeAssetRepository{
			createFn: func(ctx context.Context, a *asset.Asset) error {
				created = a
				return nil
			},
		}

		svc := asset.NewService(repo, newChecker(nil))
		a, err := svc.CreateAsset(ctx, userID, &asset.CreateAssetRequest{
			Type:         "investment",
			Name:         "  Index fund  ",
			CurrentValue: 25000,
			Description:  " long term ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if created == nil {
			t.Fatalf("expected asset to be persisted")
		}
		if a.Name != "Index fund" || a.Description != "long term" {
			t.Fatalf("expected trimmed fields, got %+v", a)
		}
		if a.Type != asset.TypeInvestment {
			t.Fatalf("expected investment, got %s", a.Type)
		}
		if a.UserId != userID {
			t.Fatalf("expected owner %s, got %s", userID, a.UserId)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name string
			req  *asset.CreateAssetRequest
		}{
			{"unknown type", &asset.CreateAssetRequest{Type: "crypto", Name: "Coins", CurrentValue: 1}},
			{"missing name", &asset.CreateAssetRequest{Type: "cash", Name: "   ", CurrentValue: 1}},
			{"negative value", &asset.CreateAssetRequest{Type: "cash", Name: "Wallet", CurrentValue: -5}},
		}

		svc := asset.NewService(&fakeAssetRepository{}, newChecker(nil))
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.CreateAsset(ctx, userID, tc.req)
				if err == nil {
					t.Fatalf("expected error")
				}
				appErr, _ := appErrors.AsAppError(err)
				if appErr.Code != "VALIDATION_ERROR" {
					t.Fatalf("expected VALIDATION_ERROR, got %s", appErr.Code)
				}
			})
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := asset.NewService(&fakeAssetRepository{}, newChecker(errors.New("record not found")))
		_, err := svc.CreateAsset(ctx, userID, &asset.CreateAssetRequest{Type: "cash", Name: "Wallet", CurrentValue: 1})
		if err == nil {
			t.Fatalf("expected error")
		}
		appErr, _ := appErrors.AsAppError(err)
		if appErr.Code != appErrors.ErrUserNotFound.Code {
			t.Fatalf("expected %s, got %s", appErrors.ErrUserNotFound.Code, appErr.Code)
		}
	})
}

func TestGetAssetByIDOwnership(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	owner := ulid.Make()
	stored := &asset.Asset{Id: ulid.Make(), UserId: owner, Type: asset.TypeCash, Name: "Wallet", CurrentValue: 100}

	repo := &fakeAssetRepository{
		getByIdFn: func(ctx context.Context, id ulid.ULID) (*asset.Asset, error) {
			return stored, nil
		},
	}
	svc := asset.NewService(repo, newChecker(nil))

	if _, err := svc.GetAssetByID(ctx, stored.Id, owner); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}

	_, err := svc.GetAssetByID(ctx, stored.Id, ulid.Make())
	if err == nil {
		t.Fatalf("expected error for foreign asset")
	}
	appErr, _ := appErrors.AsAppError(err)
	if appErr.Code != appErrors.ErrResourceNotOwned.Code {
		t.Fatalf("expected %s, got %s", appErrors.ErrResourceNotOwned.Code, appErr.Code)
	}
}

func TestUpdateAssetPartial(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	owner := ulid.Make()
	stored := &asset.Asset{Id: ulid.Make(), UserId: owner, Type: asset.TypeCash, Name: "Wallet", CurrentValue: 100}

	repo := &fakeAssetRepository{
		getByIdFn: func(ctx context.Context, id ulid.ULID) (*asset.Asset, error) {
			clone := *stored
			return &clone, nil
		},
	}
	svc := asset.NewService(repo, newChecker(nil))

	newValue := 250.0
	updated, err := svc.UpdateAsset(ctx, stored.Id, owner, &asset.UpdateAssetRequest{CurrentValue: &newValue})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.CurrentValue != 250 || updated.Name != "Wallet" {
		t.Fatalf("expected only value to change, got %+v", updated)
	}

	negative := -1.0
	if _, err := svc.UpdateAsset(ctx, stored.Id, owner, &asset.UpdateAssetRequest{CurrentValue: &negative}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	assets := []*asset.Asset{
		{Type: asset.TypeCash, CurrentValue: 1000.554},
		{Type: asset.TypeCash, CurrentValue: 500},
		{Type: asset.TypeProperty, CurrentValue: 250000},
	}

	summary := asset.Summarize(assets)
	if summary.AssetCount != 3 {
		t.Fatalf("expected 3 assets, got %d", summary.AssetCount)
	}
	if summary.ByType[asset.TypeCash] != 1500.55 {
		t.Fatalf("expected rounded 1500.55, got %v", summary.ByType[asset.TypeCash])
	}
	if summary.ByType[asset.TypeInvestment] != 0 {
		t.Fatalf("expected zero bucket present, got %v", summary.ByType[asset.TypeInvestment])
	}
	if summary.TotalValue != 251500.55 {
		t.Fatalf("expected 251500.55, got %v", summary.TotalValue)
	}
}
