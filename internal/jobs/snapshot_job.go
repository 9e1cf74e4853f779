package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bharath-541/FinSight/internal/domain/networth"
	"github.com/bharath-541/FinSight/internal/domain/user"
	"github.com/bharath-541/FinSight/internal/logger"
	"github.com/bharath-541/FinSight/internal/pkg"
)

const snapshotJobTimeout = 5 * time.Minute

// SnapshotScheduler closes each calendar month by persisting a net-worth
// snapshot for every user. It runs shortly after midnight on the 1st and
// snapshots the month that just ended, so on-demand saves during the month
// are simply overwritten with the final figures.
type SnapshotScheduler struct {
	Users    *user.Service
	NetWorth *networth.Service

	cron *cron.Cron
}

func NewSnapshotScheduler(users *user.Service, netWorth *networth.Service) *SnapshotScheduler {
	return &SnapshotScheduler{
		Users:    users,
		NetWorth: netWorth,
		cron:     cron.New(),
	}
}

func (s *SnapshotScheduler) Start() error {
	_, err := s.cron.AddFunc("10 0 1 * *", s.run)
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info().Str("schedule", "10 0 1 * *").Msg("Snapshot scheduler started")
	return nil
}

func (s *SnapshotScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("Snapshot scheduler stopped")
}

func (s *SnapshotScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotJobTimeout)
	defer cancel()

	month := pkg.MonthOf(time.Now().UTC()).Prev()
	if err := s.SnapshotAllUsers(ctx, month); err != nil {
		logger.Error().Err(err).Str("month", month.String()).Msg("Monthly snapshot run failed")
	}
}

// SnapshotAllUsers saves the given month's snapshot for every registered
// user. One user's failure does not stop the rest.
func (s *SnapshotScheduler) SnapshotAllUsers(ctx context.Context, month pkg.Month) error {
	ids, err := s.Users.ListIds(ctx)
	if err != nil {
		return err
	}

	failed := 0
	for _, id := range ids {
		if _, err := s.NetWorth.SaveSnapshot(ctx, id, month); err != nil {
			failed++
			logger.Warn().
				Err(err).
				Str("user_id", id.String()).
				Str("month", month.String()).
				Msg("Snapshot save failed for user")
		}
	}

	logger.Info().
		Str("month", month.String()).
		Int("users", len(ids)).
		Int("failed", failed).
		Msg("Monthly snapshot run completed")
	return nil
}
