package contracts

import (
	"time"

	"github.com/bharath-541/FinSight/internal/domain/debt"
)

type DebtCreateRequest struct {
	Name             string  `json:"name" binding:"required,max=120"`
	Principal        float64 `json:"principal" binding:"gte=0"`
	RemainingBalance float64 `json:"remaining_balance" binding:"gte=0"`
	InterestRate     float64 `json:"interest_rate" binding:"gte=0,lte=100"`
	MonthlyEMI       float64 `json:"monthly_emi" binding:"gte=0"`
	Description      string  `json:"description" binding:"omitempty,max=500"`
}

type DebtUpdateRequest struct {
	Name             *string  `json:"name" binding:"omitempty,max=120"`
	Principal        *float64 `json:"principal" binding:"omitempty,gte=0"`
	RemainingBalance *float64 `json:"remaining_balance" binding:"omitempty,gte=0"`
	InterestRate     *float64 `json:"interest_rate" binding:"omitempty,gte=0,lte=100"`
	MonthlyEMI       *float64 `json:"monthly_emi" binding:"omitempty,gte=0"`
	Description      *string  `json:"description" binding:"omitempty,max=500"`
}

type DebtPayEMIRequest struct {
	Date *time.Time `json:"date" binding:"omitempty"`
	Note string     `json:"note" binding:"omitempty,max=500"`
}

type DebtCreateResponse struct {
	Message string     `json:"message"`
	Debt    *debt.Debt `json:"debt"`
}

type DebtSingleResponse struct {
	Debt *debt.Debt `json:"debt"`
}

type DebtListResponse struct {
	Debts   []*debt.Debt  `json:"debts"`
	Summary *debt.Summary `json:"summary"`
}

type DebtPaymentResponse struct {
	Message string              `json:"message"`
	Payment *debt.PaymentResult `json:"payment"`
}
