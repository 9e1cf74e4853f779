package summary

import (
	"context"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/bharath-541/FinSight/internal/domain/budget"
	"github.com/bharath-541/FinSight/internal/domain/insight"
	"github.com/bharath-541/FinSight/internal/domain/networth"
	"github.com/bharath-541/FinSight/internal/domain/user"
	appErrors "github.com/bharath-541/FinSight/internal/errors"
	"github.com/bharath-541/FinSight/internal/logger"
	"github.com/bharath-541/FinSight/internal/pkg"
)

type Service struct {
	Users    *user.Service
	Budget   *budget.Service
	Insights *insight.Service
	NetWorth *networth.Service
}

func NewService(users *user.Service, budgetSvc *budget.Service, insightSvc *insight.Service, netWorthSvc *networth.Service) *Service {
	return &Service{
		Users:    users,
		Budget:   budgetSvc,
		Insights: insightSvc,
		NetWorth: netWorthSvc,
	}
}

type Summary struct {
	Month    string            `json:"month"`
	Budget   *budget.Result    `json:"budget"`
	Insights *insight.Insights `json:"insights"`
	NetWorth *networth.Current `json:"netWorth"`
}

// GetMonthlySummary fans out the three read-only calculators in parallel and
// then persists a net-worth snapshot for the month. The snapshot save is
// best-effort: its failure is logged, never surfaced.
func (s *Service) GetMonthlySummary(ctx context.Context, userID ulid.ULID, month pkg.Month) (*Summary, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !u.HasIncome() {
		return nil, appErrors.ErrIncomeNotSet
	}

	var (
		budgetResult *budget.Result
		insights     *insight.Insights
		current      *networth.Current
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgetResult, err = s.Budget.Calculate(gCtx, userID, u.MonthlyIncome, month)
		return err
	})
	g.Go(func() error {
		var err error
		insights, err = s.Insights.Calculate(gCtx, userID, u.MonthlyIncome, month)
		return err
	})
	g.Go(func() error {
		var err error
		current, err = s.NetWorth.CalculateNetWorth(gCtx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if _, err := s.NetWorth.SaveSnapshot(ctx, userID, month); err != nil {
		logger.Warn().
			Err(err).
			Str("user_id", userID.String()).
			Str("month", month.String()).
			Msg("snapshot save failed, summary still served")
	}

	return &Summary{
		Month:    month.String(),
		Budget:   budgetResult,
		Insights: insights,
		NetWorth: current,
	}, nil
}
