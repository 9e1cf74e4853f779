package debt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bharath-541/FinSight/internal/domain/expense"
	"github.com/bharath-541/FinSight/internal/domain/shared"
	appErrors "github.com/bharath-541/FinSight/internal/errors"
	"github.com/bharath-541/FinSight/internal/pkg"
)

const emiCategory = "EMI"

type Service struct {
	Repository  Repository
	Expenses    expense.Writer
	Transactor  shared.Transactor
	UserChecker *shared.UserCheckerService
}

func NewService(repository Repository, expenses expense.Writer, transactor shared.Transactor, userChecker *shared.UserCheckerService) *Service {
	return &Service{
		Repository:  repository,
		Expenses:    expenses,
		Transactor:  transactor,
		UserChecker: userChecker,
	}
}

type CreateDebtRequest struct {
	Name             string
	Principal        float64
	RemainingBalance float64
	InterestRate     float64
	MonthlyEMI       float64
	Description      string
}

func (s *Service) CreateDebt(ctx context.Context, userID ulid.ULID, req *CreateDebtRequest) (*Debt, error) {
	if err := s.UserChecker.EnsureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "is required")
	}
	if req.Principal < 0 {
		return nil, appErrors.NewValidationError("principal", "must be greater than or equal to zero")
	}
	if req.RemainingBalance < 0 {
		return nil, appErrors.NewValidationError("remaining_balance", "must be greater than or equal to zero")
	}
	if req.RemainingBalance > req.Principal {
		return nil, appErrors.NewValidationError("remaining_balance", "cannot exceed principal amount")
	}
	if req.InterestRate < 0 || req.InterestRate > 100 {
		return nil, appErrors.NewValidationError("interest_rate", "must be between 0 and 100")
	}
	if req.MonthlyEMI < 0 {
		return nil, appErrors.NewValidationError("monthly_emi", "must be greater than or equal to zero")
	}

	now := time.Now()
	d := &Debt{
		Id:               pkg.GenerateULIDObject(),
		UserId:           userID,
		Name:             name,
		Principal:        req.Principal,
		RemainingBalance: req.RemainingBalance,
		InterestRate:     req.InterestRate,
		MonthlyEMI:       req.MonthlyEMI,
		Description:      strings.TrimSpace(req.Description),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.Repository.Create(ctx, d); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return d, nil
}

func (s *Service) ListDebts(ctx context.Context, userID ulid.ULID) ([]*Debt, *Summary, error) {
	if err := s.UserChecker.EnsureUserExists(ctx, userID); err != nil {
		return nil, nil, err
	}

	debts, err := s.Repository.GetByUserId(ctx, userID)
	if err != nil {
		return nil, nil, appErrors.NewDatabaseError(err)
	}

	return debts, Summarize(debts), nil
}

func (s *Service) GetDebtByID(ctx context.Context, debtID, userID ulid.ULID) (*Debt, error) {
	d, err := s.Repository.GetById(ctx, debtID)
	if err != nil {
		return nil, appErrors.ErrDebtNotFound.WithError(err)
	}

	if d.UserId != userID {
		return nil, appErrors.ErrResourceNotOwned
	}

	return d, nil
}

type UpdateDebtRequest struct {
	Name             *string
	Principal        *float64
	RemainingBalance *float64
	InterestRate     *float64
	MonthlyEMI       *float64
	Description      *string
}

func (s *Service) UpdateDebt(ctx context.Context, debtID, userID ulid.ULID, req *UpdateDebtRequest) (*Debt, error) {
	d, err := s.GetDebtByID(ctx, debtID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "cannot be empty")
		}
		d.Name = name
	}

	if req.Principal != nil {
		if *req.Principal < 0 {
			return nil, appErrors.NewValidationError("principal", "must be greater than or equal to zero")
		}
		d.Principal = *req.Principal
	}

	if req.RemainingBalance != nil {
		if *req.RemainingBalance < 0 {
			return nil, appErrors.NewValidationError("remaining_balance", "must be greater than or equal to zero")
		}
		d.RemainingBalance = *req.RemainingBalance
	}

	if req.InterestRate != nil {
		if *req.InterestRate < 0 || *req.InterestRate > 100 {
			return nil, appErrors.NewValidationError("interest_rate", "must be between 0 and 100")
		}
		d.InterestRate = *req.InterestRate
	}

	if req.MonthlyEMI != nil {
		if *req.MonthlyEMI < 0 {
			return nil, appErrors.NewValidationError("monthly_emi", "must be greater than or equal to zero")
		}
		d.MonthlyEMI = *req.MonthlyEMI
	}

	if req.Description != nil {
		d.Description = strings.TrimSpace(*req.Description)
	}

	// The invariant holds across any combination of field updates.
	if d.RemainingBalance > d.Principal {
		return nil, appErrors.NewValidationError("remaining_balance", "cannot exceed principal amount")
	}

	d.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, d); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return d, nil
}

func (s *Service) DeleteDebt(ctx context.Context, debtID, userID ulid.ULID) error {
	if _, err := s.GetDebtByID(ctx, debtID, userID); err != nil {
		return err
	}

	if err := s.Repository.Delete(ctx, debtID); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

type PayEMIRequest struct {
	Date *time.Time
	Note string
}

type PaymentResult struct {
	Debt      PaymentDebt      `json:"debt"`
	Expense   PaymentExpense   `json:"expense"`
	Breakdown PaymentBreakdown `json:"breakdown"`
}

type PaymentDebt struct {
	Id              ulid.ULID `json:"id"`
	Name            string    `json:"name"`
	PreviousBalance float64   `json:"previousBalance"`
	NewBalance      float64   `json:"newBalance"`
	FullyPaid       bool      `json:"fullyPaid"`
}

type PaymentExpense struct {
	Id       ulid.ULID      `json:"id"`
	Amount   float64        `json:"amount"`
	Category string         `json:"category"`
	Bucket   expense.Bucket `json:"bucket"`
	Date     time.Time      `json:"date"`
}

type PaymentBreakdown struct {
	TotalEMI           float64 `json:"totalEMI"`
	InterestComponent  float64 `json:"interestComponent"`
	PrincipalComponent float64 `json:"principalComponent"`
}

// PayEMI applies one monthly installment: the full EMI is recorded as a
// needs expense, while only the principal component reduces the remaining
// balance. No asset is ever created from principal repayment; net worth
// rises because the debt balance falls. The expense insert and the balance
// update run in one transaction.
//
// The paid-off guard tests for exactly zero, and a principal component that
// comes out negative (EMI smaller than accrued interest) silently grows the
// balance; both behaviors are deliberate and covered by tests.
func (s *Service) PayEMI(ctx context.Context, debtID, userID ulid.ULID, req *PayEMIRequest) (*PaymentResult, error) {
	d, err := s.GetDebtByID(ctx, debtID, userID)
	if err != nil {
		return nil, err
	}

	if d.RemainingBalance == 0 {
		return nil, appErrors.ErrDebtAlreadyPaid
	}

	emiAmount := d.MonthlyEMI
	interestComponent := d.RemainingBalance * d.MonthlyInterestRate()
	principalComponent := emiAmount - interestComponent

	newBalance := d.RemainingBalance - principalComponent
	if newBalance < 0 {
		newBalance = 0
	}

	now := time.Now()
	date := now
	if req != nil && req.Date != nil {
		date = *req.Date
	}

	note := ""
	if req != nil {
		note = strings.TrimSpace(req.Note)
	}
	if note == "" {
		note = fmt.Sprintf("EMI payment for %s", d.Name)
	}

	e := &expense.Expense{
		Id:        pkg.GenerateULIDObject(),
		UserId:    userID,
		Amount:    emiAmount,
		Category:  emiCategory,
		Bucket:    expense.BucketNeeds,
		Note:      note,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.Transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.Expenses.Create(txCtx, e); err != nil {
			return err
		}
		return s.Repository.UpdateBalance(txCtx, d.Id, newBalance)
	})
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return &PaymentResult{
		Debt: PaymentDebt{
			Id:              d.Id,
			Name:            d.Name,
			PreviousBalance: pkg.Round2(d.RemainingBalance),
			NewBalance:      pkg.Round2(newBalance),
			FullyPaid:       newBalance == 0,
		},
		Expense: PaymentExpense{
			Id:       e.Id,
			Amount:   e.Amount,
			Category: e.Category,
			Bucket:   e.Bucket,
			Date:     e.Date,
		},
		Breakdown: PaymentBreakdown{
			TotalEMI:           emiAmount,
			InterestComponent:  pkg.Round2(interestComponent),
			PrincipalComponent: pkg.Round2(principalComponent),
		},
	}, nil
}

type Summary struct {
	TotalPrincipal        float64 `json:"totalPrincipal"`
	TotalRemainingBalance float64 `json:"totalRemainingBalance"`
	TotalMonthlyEMI       float64 `json:"totalMonthlyEMI"`
	DebtCount             int     `json:"debtCount"`
}

func Summarize(debts []*Debt) *Summary {
	summary := &Summary{DebtCount: len(debts)}
	for _, d := range debts {
		summary.TotalPrincipal += d.Principal
		summary.TotalRemainingBalance += d.RemainingBalance
		summary.TotalMonthlyEMI += d.MonthlyEMI
	}

	summary.TotalPrincipal = pkg.Round2(summary.TotalPrincipal)
	summary.TotalRemainingBalance = pkg.Round2(summary.TotalRemainingBalance)
	summary.TotalMonthlyEMI = pkg.Round2(summary.TotalMonthlyEMI)
	return summary
}
