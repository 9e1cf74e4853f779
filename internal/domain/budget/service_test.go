package budget_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bharath-541/FinSight/internal/domain/budget"
	"github.com/bharath-541/FinSight/internal/domain/expense"
	appErrors "github.com/bharath-541/FinSight/internal/errors"
	"github.com/bharath-541/FinSight/internal/pkg"
)

type fakeExpenseReader struct {
	expenses map[string][]*expense.Expense
	err      error
}

func (f *fakeExpenseReader) GetByMonth(ctx context.Context, userID ulid.ULID, month pkg.Month) ([]*expense.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.expenses[month.String()], nil
}

func spend(bucket expense.Bucket, amount float64) *expense.Expense {
	return &expense.Expense{
		Id:       ulid.Make(),
		Amount:   amount,
		Category: "misc",
		Bucket:   bucket,
		Date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func mustMonth(t *testing.T, s string) pkg.Month {
	t.Helper()
	m, err := pkg.ParseMonth(s)
	if err != nil {
		t.Fatalf("bad month %q: %v", s, err)
	}
	return m
}

func TestCalculateEmptyMonthIsOnTrack(t *testing.T) {
	t.Parallel()

	svc := budget.NewService(&fakeExpenseReader{})
	result, err := svc.Calculate(context.Background(), ulid.Make(), 5000, mustMonth(t, "2025-03"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// An untouched month reads as healthy; the savings floor does not fail a
	// month with no activity at all.
	if result.Status != budget.StatusOnTrack {
		t.Fatalf("expected on_track, got %s", result.Status)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
	if result.TotalSpent != 0 {
		t.Fatalf("expected zero spend, got %v", result.TotalSpent)
	}
	if result.Savings.Target != 1000 {
		t.Fatalf("expected savings target 1000, got %v", result.Savings.Target)
	}
}

func TestCalculateStatusLadder(t *testing.T) {
	t.Parallel()

	month := mustMonth(t, "2025-03")
	income := 10000.0

	tests := []struct {
		name         string
		needs        float64
		wants        float64
		savings      float64
		wantStatus   budget.Status
		wantWarnings []string
	}{
		{
			name:       "ideal split",
			needs:      5000,
			wants:      3000,
			savings:    2000,
			wantStatus: budget.StatusOnTrack,
		},
		{
			name:         "needs slightly over",
			needs:        5500,
			wants:        2000,
			savings:      2500,
			wantStatus:   budget.StatusWarning,
			wantWarnings: []string{"Needs spending exceeds 50%"},
		},
		{
			name:         "needs far over",
			needs:        6500,
			wants:        1000,
			savings:      2500,
			wantStatus:   budget.StatusOffTrack,
			wantWarnings: []string{"Needs spending exceeds 50%"},
		},
		{
			name:         "wants slightly over",
			needs:        4000,
			wants:        3500,
			savings:      2500,
			wantStatus:   budget.StatusWarning,
			wantWarnings: []string{"Wants spending exceeds 30%"},
		},
		{
			name:         "wants far over",
			needs:        4000,
			wants:        4500,
			savings:      2000,
			wantStatus:   budget.StatusOffTrack,
			wantWarnings: []string{"Wants spending exceeds 30%"},
		},
		{
			name:         "savings low",
			needs:        4000,
			wants:        3000,
			savings:      1500,
			wantStatus:   budget.StatusWarning,
			wantWarnings: []string{"Savings below 20%"},
		},
		{
			name:         "savings critically low",
			needs:        4000,
			wants:        3000,
			savings:      500,
			wantStatus:   budget.StatusOffTrack,
			wantWarnings: []string{"Savings below 20%"},
		},
		{
			name:       "wants breach cannot downgrade needs off_track",
			needs:      6500,
			wants:      3500,
			savings:    2500,
			wantStatus: budget.StatusOffTrack,
			wantWarnings: []string{
				"Needs spending exceeds 50%",
				"Wants spending exceeds 30%",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			reader := &fakeExpenseReader{expenses: map[string][]*expense.Expense{
				month.String(): {
					spend(expense.BucketNeeds, tt.needs),
					spend(expense.BucketWants, tt.wants),
					spend(expense.BucketSavings, tt.savings),
				},
			}}

			svc := budget.NewService(reader)
			result, err := svc.Calculate(context.Background(), ulid.Make(), income, month)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Status != tt.wantStatus {
				t.Fatalf("expected status %s, got %s (warnings %v)", tt.wantStatus, result.Status, result.Warnings)
			}
			if len(result.Warnings) != len(tt.wantWarnings) {
				t.Fatalf("expected warnings %v, got %v", tt.wantWarnings, result.Warnings)
			}
			for i := range tt.wantWarnings {
				if result.Warnings[i] != tt.wantWarnings[i] {
					t.Fatalf("expected warning %q, got %q", tt.wantWarnings[i], result.Warnings[i])
				}
			}
		})
	}
}

func TestCalculatePercentagesNotNormalized(t *testing.T) {
	t.Parallel()

	month := mustMonth(t, "2025-03")
	reader := &fakeExpenseReader{expenses: map[string][]*expense.Expense{
		month.String(): {
			spend(expense.BucketNeeds, 8000),
			spend(expense.BucketWants, 5000),
			spend(expense.BucketSavings, 1000),
		},
	}}

	svc := budget.NewService(reader)
	result, err := svc.Calculate(context.Background(), ulid.Make(), 10000, month)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 80 + 50 + 10 = 140; overspending is reported as-is.
	if result.Needs.Percentage != 80 || result.Wants.Percentage != 50 || result.Savings.Percentage != 10 {
		t.Fatalf("unexpected percentages: %+v", result)
	}
	if result.TotalSpent != 14000 {
		t.Fatalf("expected total 14000, got %v", result.TotalSpent)
	}
}

func TestCalculateZeroIncome(t *testing.T) {
	t.Parallel()

	month := mustMonth(t, "2025-03")
	reader := &fakeExpenseReader{expenses: map[string][]*expense.Expense{
		month.String(): {spend(expense.BucketNeeds, 500)},
	}}

	svc := budget.NewService(reader)
	result, err := svc.Calculate(context.Background(), ulid.Make(), 0, month)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Zero income yields zero percentages and skips the savings floor rule.
	if result.Needs.Percentage != 0 {
		t.Fatalf("expected zero percentage, got %v", result.Needs.Percentage)
	}
	if result.Status != budget.StatusOnTrack {
		t.Fatalf("expected on_track, got %s", result.Status)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
}

func TestCalculateRepositoryError(t *testing.T) {
	t.Parallel()

	svc := budget.NewService(&fakeExpenseReader{err: errors.New("connection refused")})
	_, err := svc.Calculate(context.Background(), ulid.Make(), 5000, mustMonth(t, "2025-03"))
	if err == nil {
		t.Fatalf("expected error")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != appErrors.ErrDatabase.Code {
		t.Fatalf("expected %s, got %s", appErrors.ErrDatabase.Code, appErr.Code)
	}
}
