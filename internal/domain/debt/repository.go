package debt

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// Reader is the slice the net worth aggregator depends on.
type Reader interface {
	GetByUserId(ctx context.Context, userID ulid.ULID) ([]*Debt, error)
}

type Repository interface {
	Reader
	Create(ctx context.Context, d *Debt) error
	Update(ctx context.Context, d *Debt) error
	Delete(ctx context.Context, debtID ulid.ULID) error
	GetById(ctx context.Context, debtID ulid.ULID) (*Debt, error)
	// UpdateBalance persists a new remaining balance. It must honor a
	// transaction carried in ctx so the EMI flow can pair it atomically
	// with the expense insert.
	UpdateBalance(ctx context.Context, debtID ulid.ULID, newBalance float64) error
}
