package user

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	appErrors "github.com/bharath-541/FinSight/internal/errors"
)

type Service struct {
	Repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{Repository: repository}
}

func (s *Service) GetByID(ctx context.Context, userID ulid.ULID) (*User, error) {
	u, err := s.Repository.GetById(ctx, userID)
	if err != nil {
		return nil, appErrors.ErrUserNotFound.WithError(err)
	}
	return u, nil
}

func (s *Service) Exists(ctx context.Context, userID ulid.ULID) error {
	_, err := s.Repository.GetById(ctx, userID)
	return err
}

// UpdateIncome sets the monthly income driving all budget percentage targets.
func (s *Service) UpdateIncome(ctx context.Context, userID ulid.ULID, monthlyIncome float64) (*User, error) {
	if monthlyIncome < 0 {
		return nil, appErrors.NewValidationError("monthly_income", "must be greater than or equal to zero")
	}

	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	u.MonthlyIncome = monthlyIncome
	u.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, u); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return u, nil
}

func (s *Service) ListIds(ctx context.Context) ([]ulid.ULID, error) {
	ids, err := s.Repository.ListIds(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return ids, nil
}
