package user

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type User struct {
	Id            ulid.ULID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	MonthlyIncome float64   `json:"monthlyIncome"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// HasIncome reports whether budget summaries can be computed for the user.
// MonthlyIncome is the sole driver of the 50/30/20 targets.
func (u *User) HasIncome() bool {
	return u.MonthlyIncome > 0
}
