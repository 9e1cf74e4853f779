package expense

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

func (s *Service) CreateExpense(ctx context.Context, userID ulid.ULID, in ClassifyInput) (*Expense, error) {
	if err := s.UserChecker.EnsureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	e, err := Classify(in, time.Now())
	if err != nil {
		return nil, err
	}
	e.UserId = userID

	if err := s.Repository.Create(ctx, e); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return e, nil
}

func (s *Service) ListExpenses(ctx context.Context, userID ulid.ULID, filters *Filters, pagination *pkg.PaginationParams) ([]*Expense, int64, error) {
	if err := s.UserChecker.EnsureUserExists(ctx, userID); err != nil {
		return nil, 0, err
	}

	return s.Repository.GetByUserId(ctx, userID, filters, pagination)
}

func (s *Service) GetExpenseByID(ctx context.Context, expenseID, userID ulid.ULID) (*Expense, error) {
	e, err := s.Repository.GetById(ctx, expenseID)
	if err != nil {
		return nil, appErrors.ErrExpenseNotFound.WithError(err)
	}

	if e.UserId != userID {
		return nil, appErrors.ErrResourceNotOwned
	}

	return e, nil
}

type UpdateExpenseRequest struct {
	Amount   *float64
	Category *string
	Bucket   *string
	Note     *string
	Date     *time.Time
}

func (s *Service) UpdateExpense(ctx context.Context, expenseID, userID ulid.ULID, req *UpdateExpenseRequest) (*Expense, error) {
	e, err := s.GetExpenseByID(ctx, expenseID, userID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, appErrors.NewValidationError("amount", "must be a positive number")
		}
		e.Amount = *req.Amount
	}

	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			return nil, appErrors.NewValidationError("category", "cannot be empty")
		}
		e.Category = category
	}

	if req.Bucket != nil {
		bucket, ok := ParseBucket(*req.Bucket)
		if !ok {
			return nil, appErrors.NewValidationError("bucket", "must be one of: needs, wants, savings")
		}
		e.Bucket = bucket
	}

	if req.Note != nil {
		e.Note = strings.TrimSpace(*req.Note)
	}

	if req.Date != nil {
		e.Date = *req.Date
	}

	e.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, e); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return e, nil
}

func (s *Service) DeleteExpense(ctx context.Context, expenseID, userID ulid.ULID) error {
	if _, err := s.GetExpenseByID(ctx, expenseID, userID); err != nil {
		return err
	}

	if err := s.Repository.Delete(ctx, expenseID); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}
