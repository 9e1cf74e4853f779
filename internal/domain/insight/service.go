package insight

import (
	"context"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bharath-541/FinSight/internal/domain/expense"
	appErrors "github.com/bharath-541/FinSight/internal/errors"
	"github.com/bharath-541/FinSight/internal/pkg"
)

const topCategoryCount = 3

type Service struct {
	Expenses expense.Reader
	// Now bounds the streak scan; injectable for tests.
	Now func() time.Time
}

func NewService(expenses expense.Reader) *Service {
	return &Service{Expenses: expenses, Now: time.Now}
}

// Calculate derives the secondary monthly metrics. It re-fetches expenses
// independently of the budget calculator; both are read-only and safe to run
// concurrently.
func (s *Service) Calculate(ctx context.Context, userID ulid.ULID, monthlyIncome float64, month pkg.Month) (*Insights, error) {
	expenses, err := s.Expenses.GetByMonth(ctx, userID, month)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	prevExpenses, err := s.Expenses.GetByMonth(ctx, userID, month.Prev())
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	var needsSpent, currentTotal float64
	for _, e := range expenses {
		currentTotal += e.Amount
		if e.Bucket == expense.BucketNeeds {
			needsSpent += e.Amount
		}
	}

	safeToSpend := monthlyIncome - needsSpent - monthlyIncome*0.2
	if safeToSpend < 0 {
		safeToSpend = 0
	}

	var prevTotal float64
	for _, e := range prevExpenses {
		prevTotal += e.Amount
	}

	changePercentage := 0.0
	if prevTotal > 0 {
		changePercentage = (currentTotal - prevTotal) / prevTotal * 100
	}

	days := month.Days()
	dailyAverage := currentTotal / float64(days)

	return &Insights{
		SafeToSpend:   pkg.Round2(safeToSpend),
		TopCategories: topCategories(expenses),
		DailyAverage:  pkg.Round2(dailyAverage),
		MonthlyComparison: MonthlyComparison{
			CurrentMonth:     pkg.Round2(currentTotal),
			PreviousMonth:    pkg.Round2(prevTotal),
			ChangePercentage: pkg.Round2(changePercentage),
		},
		ExpenseStreak: s.expenseStreak(expenses, monthlyIncome, month),
	}, nil
}

// topCategories groups by category and keeps the three largest totals. The
// sort is stable, so equal totals keep first-encountered order.
func topCategories(expenses []*expense.Expense) []CategoryTotal {
	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, e := range expenses {
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] += e.Amount
	}

	ranked := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		ranked = append(ranked, CategoryTotal{Category: category, Amount: totals[category]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount > ranked[j].Amount
	})

	if len(ranked) > topCategoryCount {
		ranked = ranked[:topCategoryCount]
	}
	for i := range ranked {
		ranked[i].Amount = pkg.Round2(ranked[i].Amount)
	}
	return ranked
}

// expenseStreak walks every calendar day from the start of the month through
// min(today, month end), counting days whose spend stays within the daily
// budget and resetting to zero on any day that exceeds it. The counter runs
// over the whole elapsed range rather than measuring a trailing streak from
// today backward; that is the established behavior and is kept as-is.
func (s *Service) expenseStreak(expenses []*expense.Expense, monthlyIncome float64, month pkg.Month) int {
	days := month.Days()
	dailyBudget := monthlyIncome / float64(days)

	byDay := make(map[string]float64)
	for _, e := range expenses {
		byDay[e.Date.UTC().Format("2006-01-02")] += e.Amount
	}

	today := s.Now()
	streak := 0
	start := month.Start()
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		if day.After(today) {
			break
		}

		if byDay[day.Format("2006-01-02")] <= dailyBudget {
			streak++
		} else {
			streak = 0
		}
	}
	return streak
}
