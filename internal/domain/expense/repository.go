package expense

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/bharath-541/FinSight/internal/pkg"
)

type Filters struct {
	Month    *pkg.Month
	Bucket   *Bucket
	Category *string
}

// Reader is the read-only slice of the repository the budget and insight
// calculators depend on.
type Reader interface {
	GetByMonth(ctx context.Context, userID ulid.ULID, month pkg.Month) ([]*Expense, error)
}

// Writer is the slice the debt amortization engine needs to record an EMI
// payment as an expense.
type Writer interface {
	Create(ctx context.Context, e *Expense) error
}

type Repository interface {
	Reader
	Writer
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, expenseID ulid.ULID) error
	GetById(ctx context.Context, expenseID ulid.ULID) (*Expense, error)
	GetByUserId(ctx context.Context, userID ulid.ULID, filters *Filters, pagination *pkg.PaginationParams) ([]*Expense, int64, error)
}
