package fx

import (
	"context"

	"go.uber.org/fx"

	"github.com/bharath-541/FinSight/internal/domain/networth"
	"github.com/bharath-541/FinSight/internal/domain/user"
	"github.com/bharath-541/FinSight/internal/jobs"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		newSnapshotScheduler,
	),
	fx.Invoke(
		startSnapshotScheduler,
	),
)

func newSnapshotScheduler(userSvc *user.Service, netWorthSvc *networth.Service) *jobs.SnapshotScheduler {
	return jobs.NewSnapshotScheduler(userSvc, netWorthSvc)
}

func startSnapshotScheduler(lc fx.Lifecycle, scheduler *jobs.SnapshotScheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return scheduler.Start()
		},
		OnStop: func(ctx context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}
