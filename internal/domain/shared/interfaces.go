package shared

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type UserChecker interface {
	Exists(ctx context.Context, userID ulid.ULID) error
}

// Transactor runs fn atomically: every repository call made with the ctx it
// passes to fn commits or rolls back as one unit. Operations that perform
// multiple writes (EMI payment writes an expense and updates a debt) must go
// through it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
