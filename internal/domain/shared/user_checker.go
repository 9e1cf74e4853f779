package shared

import (
	"context"

	"github.com/oklog/ulid/v2"

	appErrors "github.com/bharath-541/FinSight/internal/errors"
)

type UserCheckerService struct {
	userChecker UserChecker
}

func NewUserCheckerService(userChecker UserChecker) *UserCheckerService {
	return &UserCheckerService{userChecker: userChecker}
}

func (s *UserCheckerService) EnsureUserExists(ctx context.Context, userID ulid.ULID) error {
	if s.userChecker == nil {
		return appErrors.ErrInternalServer
	}

	if err := s.userChecker.Exists(ctx, userID); err != nil {
		return appErrors.ErrUserNotFound.WithError(err)
	}

	return nil
}
