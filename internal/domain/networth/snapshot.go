package networth

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// Snapshot is a persisted point-in-time copy of net-worth figures, one per
// (user, month). It is a derived cache: live net worth is always recomputed
// from current assets and debts, never read back from a snapshot.
type Snapshot struct {
	Id          ulid.ULID `json:"id"`
	UserId      ulid.ULID `json:"userId"`
	Month       string    `json:"month"`
	TotalAssets float64   `json:"totalAssets"`
	TotalDebts  float64   `json:"totalDebts"`
	NetWorth    float64   `json:"netWorth"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SnapshotRepository interface {
	// Upsert writes the snapshot for (user, month), replacing any existing
	// row atomically. Last write wins.
	Upsert(ctx context.Context, s *Snapshot) error
	GetByUserAndMonth(ctx context.Context, userID ulid.ULID, month string) (*Snapshot, error)
	// GetHistory returns up to limit snapshots ordered by month descending.
	GetHistory(ctx context.Context, userID ulid.ULID, limit int) ([]*Snapshot, error)
}
