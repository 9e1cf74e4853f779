package contracts

import "github.com/bharath-541/FinSight/internal/domain/user"

type UpdateIncomeRequest struct {
	MonthlyIncome float64 `json:"monthly_income" binding:"required,gte=0"`
}

type UserResponse struct {
	User *user.User `json:"user"`
}
