package asset

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// Reader is the slice the net worth aggregator depends on.
type Reader interface {
	GetByUserId(ctx context.Context, userID ulid.ULID) ([]*Asset, error)
}

type Repository interface {
	Reader
	Create(ctx context.Context, a *Asset) error
	Update(ctx context.Context, a *Asset) error
	Delete(ctx context.Context, assetID ulid.ULID) error
	GetById(ctx context.Context, assetID ulid.ULID) (*Asset, error)
}
