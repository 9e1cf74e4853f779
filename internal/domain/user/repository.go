package user

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, userID ulid.ULID) error
	GetById(ctx context.Context, userID ulid.ULID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListIds(ctx context.Context) ([]ulid.ULID, error)
}
