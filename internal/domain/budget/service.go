package budget

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/bharath-541/FinSight/internal/domain/expense"
	appErrors "github.com/bharath-541/FinSight/internal/errors"
	"github.com/bharath-541/FinSight/internal/pkg"
)

type Service struct {
	Expenses expense.Reader
}

func NewService(expenses expense.Reader) *Service {
	return &Service{Expenses: expenses}
}

// Calculate aggregates one month of expenses into the 50/30/20 report.
// Percentages are amount/income with no normalization, so they need not sum
// to 100. The status ladder evaluates needs, then wants, then savings; wants
// and savings breaches only upgrade an on_track status to warning, while any
// hard breach forces off_track.
func (s *Service) Calculate(ctx context.Context, userID ulid.ULID, monthlyIncome float64, month pkg.Month) (*Result, error) {
	expenses, err := s.Expenses.GetByMonth(ctx, userID, month)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	var needsTotal, wantsTotal, savingsTotal float64
	for _, e := range expenses {
		switch e.Bucket {
		case expense.BucketNeeds:
			needsTotal += e.Amount
		case expense.BucketWants:
			wantsTotal += e.Amount
		case expense.BucketSavings:
			savingsTotal += e.Amount
		}
	}
	totalSpent := needsTotal + wantsTotal + savingsTotal

	var needsPct, wantsPct, savingsPct float64
	if monthlyIncome > 0 {
		needsPct = needsTotal / monthlyIncome * 100
		wantsPct = wantsTotal / monthlyIncome * 100
		savingsPct = savingsTotal / monthlyIncome * 100
	}

	status := StatusOnTrack
	var warnings []string

	// An untouched month stays on_track; the savings floor only starts to
	// apply once something has been spent.
	if totalSpent > 0 {
		status, warnings = deriveStatus(needsPct, wantsPct, savingsPct, monthlyIncome)
	}

	return &Result{
		Income:     monthlyIncome,
		TotalSpent: pkg.Round2(totalSpent),
		Needs: Allocation{
			Amount:     pkg.Round2(needsTotal),
			Percentage: pkg.Round2(needsPct),
			Limit:      pkg.Round2(monthlyIncome * 0.5),
		},
		Wants: Allocation{
			Amount:     pkg.Round2(wantsTotal),
			Percentage: pkg.Round2(wantsPct),
			Limit:      pkg.Round2(monthlyIncome * 0.3),
		},
		Savings: SavingsAllocation{
			Amount:     pkg.Round2(savingsTotal),
			Percentage: pkg.Round2(savingsPct),
			Target:     pkg.Round2(monthlyIncome * 0.2),
		},
		Status:   status,
		Warnings: warnings,
	}, nil
}

// deriveStatus walks the three rules in order. Needs and wants hard breaches
// force off_track; soft breaches and the savings floor only upgrade an
// on_track month to warning.
func deriveStatus(needsPct, wantsPct, savingsPct, monthlyIncome float64) (Status, []string) {
	status := StatusOnTrack
	var warnings []string

	if needsPct > 50 {
		if needsPct > 60 {
			status = StatusOffTrack
		} else {
			status = StatusWarning
		}
		warnings = append(warnings, "Needs spending exceeds 50%")
	}
	if wantsPct > 30 {
		if wantsPct > 40 {
			status = StatusOffTrack
		} else if status == StatusOnTrack {
			status = StatusWarning
		}
		warnings = append(warnings, "Wants spending exceeds 30%")
	}
	if savingsPct < 20 && monthlyIncome > 0 {
		if savingsPct < 10 {
			status = StatusOffTrack
		} else if status == StatusOnTrack {
			status = StatusWarning
		}
		warnings = append(warnings, "Savings below 20%")
	}

	return status, warnings
}
