package auth

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/bharath-541/FinSight/internal/domain/user"
	appErrors "github.com/bharath-541/FinSight/internal/errors"
	"github.com/bharath-541/FinSight/internal/pkg"
)

// TokenIssuer abstracts JWT creation; the middleware package owns the
// concrete implementation.
type TokenIssuer interface {
	GenerateToken(userID ulid.ULID) (string, error)
}

type Service struct {
	Repository user.Repository
	Tokens     TokenIssuer
}

func NewService(repository user.Repository, tokens TokenIssuer) *Service {
	return &Service{Repository: repository, Tokens: tokens}
}

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

type AuthResult struct {
	User  *user.User `json:"user"`
	Token string     `json:"token"`
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "is required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, appErrors.NewValidationError("email", "is required")
	}

	if len(req.Password) < 8 {
		return nil, appErrors.NewValidationError("password", "must have at least 8 characters")
	}

	if existing, _ := s.Repository.GetByEmail(ctx, email); existing != nil {
		return nil, appErrors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	now := time.Now()
	u := &user.User{
		Id:        pkg.GenerateULIDObject(),
		Name:      name,
		Email:     email,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, u); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	token, err := s.Tokens.GenerateToken(u.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &AuthResult{User: u, Token: token}, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.Repository.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := s.Tokens.GenerateToken(u.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &AuthResult{User: u, Token: token}, nil
}
