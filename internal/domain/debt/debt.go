package debt

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Debt lifecycle: active (remainingBalance > 0) shrinks through EMI payments
// until paid_off (remainingBalance == 0), which blocks further payments.
type Debt struct {
	Id               ulid.ULID `json:"id"`
	UserId           ulid.ULID `json:"userId"`
	Name             string    `json:"name"`
	Principal        float64   `json:"principal"`
	RemainingBalance float64   `json:"remainingBalance"`
	InterestRate     float64   `json:"interestRate"`
	MonthlyEMI       float64   `json:"monthlyEMI"`
	Description      string    `json:"description,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// MonthlyInterestRate converts the annual percentage rate to a monthly
// multiplier.
func (d *Debt) MonthlyInterestRate() float64 {
	return d.InterestRate / 12 / 100
}

func (d *Debt) IsPaidOff() bool {
	return d.RemainingBalance == 0
}
