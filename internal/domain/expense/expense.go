package expense

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Bucket is one of the 50/30/20 budget categories an expense falls into.
type Bucket string

const (
	BucketNeeds   Bucket = "needs"
	BucketWants   Bucket = "wants"
	BucketSavings Bucket = "savings"
)

func (b Bucket) IsValid() bool {
	switch b {
	case BucketNeeds, BucketWants, BucketSavings:
		return true
	}
	return false
}

// ParseBucket normalizes the wire value; buckets are stored lower-case.
func ParseBucket(s string) (Bucket, bool) {
	b := Bucket(strings.ToLower(strings.TrimSpace(s)))
	return b, b.IsValid()
}

type Expense struct {
	Id        ulid.ULID `json:"id"`
	UserId    ulid.ULID `json:"userId"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Bucket    Bucket    `json:"bucket"`
	Note      string    `json:"note,omitempty"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
