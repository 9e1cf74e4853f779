package expense

import (
	"strings"
	"time"

	appErrors "github.com/bharath-541/FinSight/internal/errors"
	"github.com/bharath-541/FinSight/internal/pkg"
)

type ClassifyInput struct {
	Amount   float64
	Category string
	Bucket   string
	Note     string
	Date     *time.Time
}

// Classify validates and normalizes a raw expense entry: amount must be
// positive, the bucket must be one of the three 50/30/20 buckets, category is
// required. Category and note are trimmed, the bucket lower-cased, and the
// date defaults to submission time. Persistence is the caller's job.
func Classify(in ClassifyInput, now time.Time) (*Expense, error) {
	if in.Amount <= 0 {
		return nil, appErrors.NewValidationError("amount", "must be a positive number")
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, appErrors.NewValidationError("category", "is required")
	}

	bucket, ok := ParseBucket(in.Bucket)
	if !ok {
		return nil, appErrors.NewValidationError("bucket", "must be one of: needs, wants, savings")
	}

	date := now
	if in.Date != nil {
		date = *in.Date
	}

	return &Expense{
		Id:        pkg.GenerateULIDObject(),
		Amount:    in.Amount,
		Category:  category,
		Bucket:    bucket,
		Note:      strings.TrimSpace(in.Note),
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
