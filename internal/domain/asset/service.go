package asset

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bharath-541/FinSight/internal/domain/shared"
	appErrors "github.com/bharath-541/FinSight/internal/errors"
	"github.com/bharath-541/FinSight/internal/pkg"
)

type Service struct {
	Repository  Repository
	UserChecker *shared.UserCheckerService
}

func NewService(repository Repository, userChecker *shared.UserCheckerService) *Service {
	return &Service{Repository: repository, UserChecker: userChecker}
}

type CreateAssetRequest struct {
	Type         string
	Name         string
	CurrentValue float64
	Description  string
}

func (s *Service) CreateAsset(ctx context.Context, userID ulid.ULID, req *CreateAssetRequest) (*Asset, error) {
	if err := s.UserChecker.EnsureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	assetType, ok := ParseType(req.Type)
	if !ok {
		return nil, appErrors.NewValidationError("type", "must be one of: cash, investment, property, other")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "is required")
	}

	if req.CurrentValue < 0 {
		return nil, appErrors.NewValidationError("current_value", "must be greater than or equal to zero")
	}

	now := time.Now()
	a := &Asset{
		Id:           pkg.GenerateULIDObject(),
		UserId:       userID,
		Type:         assetType,
		Name:         name,
		CurrentValue: req.CurrentValue,
		Description:  strings.TrimSpace(req.Description),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repository.Create(ctx, a); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return a, nil
}

func (s *Service) ListAssets(ctx context.Context, userID ulid.ULID) ([]*Asset, *Summary, error) {
	if err := s.UserChecker.EnsureUserExists(ctx, userID); err != nil {
		return nil, nil, err
	}

	assets, err := s.Repository.GetByUserId(ctx, userID)
	if err != nil {
		return nil, nil, appErrors.NewDatabaseError(err)
	}

	return assets, Summarize(assets), nil
}

func (s *Service) GetAssetByID(ctx context.Context, assetID, userID ulid.ULID) (*Asset, error) {
	a, err := s.Repository.GetById(ctx, assetID)
	if err != nil {
		return nil, appErrors.ErrAssetNotFound.WithError(err)
	}

	if a.UserId != userID {
		return nil, appErrors.ErrResourceNotOwned
	}

	return a, nil
}

type UpdateAssetRequest struct {
	Type         *string
	Name         *string
	CurrentValue *float64
	Description  *string
}

func (s *Service) UpdateAsset(ctx context.Context, assetID, userID ulid.ULID, req *UpdateAssetRequest) (*Asset, error) {
	a, err := s.GetAssetByID(ctx, assetID, userID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		assetType, ok := ParseType(*req.Type)
		if !ok {
			return nil, appErrors.NewValidationError("type", "must be one of: cash, investment, property, other")
		}
		a.Type = assetType
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "cannot be empty")
		}
		a.Name = name
	}

	if req.CurrentValue != nil {
		if *req.CurrentValue < 0 {
			return nil, appErrors.NewValidationError("current_value", "must be greater than or equal to zero")
		}
		a.CurrentValue = *req.CurrentValue
	}

	if req.Description != nil {
		a.Description = strings.TrimSpace(*req.Description)
	}

	a.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, a); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return a, nil
}

func (s *Service) DeleteAsset(ctx context.Context, assetID, userID ulid.ULID) error {
	if _, err := s.GetAssetByID(ctx, assetID, userID); err != nil {
		return err
	}

	if err := s.Repository.Delete(ctx, assetID); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

type Summary struct {
	TotalValue float64          `json:"totalValue"`
	ByType     map[Type]float64 `json:"byType"`
	AssetCount int              `json:"assetCount"`
}

func Summarize(assets []*Asset) *Summary {
	byType := map[Type]float64{
		TypeCash:       0,
		TypeInvestment: 0,
		TypeProperty:   0,
		TypeOther:      0,
	}

	total := 0.0
	for _, a := range assets {
		byType[a.Type] += a.CurrentValue
		total += a.CurrentValue
	}

	for t, v := range byType {
		byType[t] = pkg.Round2(v)
	}

	return &Summary{
		TotalValue: pkg.Round2(total),
		ByType:     byType,
		AssetCount: len(assets),
	}
}
