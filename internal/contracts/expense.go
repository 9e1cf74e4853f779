package contracts

import (
	"time"

	"github.com/bharath-541/FinSight/internal/domain/expense"
)

type ExpenseCreateRequest struct {
	Amount   float64    `json:"amount" binding:"required,gt=0"`
	Category string     `json:"category" binding:"required,max=120"`
	Bucket   string     `json:"bucket" binding:"required,oneof=needs wants savings"`
	Note     string     `json:"note" binding:"omitempty,max=500"`
	Date     *time.Time `json:"date" binding:"omitempty"`
}

type ExpenseUpdateRequest struct {
	Amount   *float64   `json:"amount" binding:"omitempty,gt=0"`
	Category *string    `json:"category" binding:"omitempty,max=120"`
	Bucket   *string    `json:"bucket" binding:"omitempty,oneof=needs wants savings"`
	Note     *string    `json:"note" binding:"omitempty,max=500"`
	Date     *time.Time `json:"date" binding:"omitempty"`
}

type ExpenseCreateResponse struct {
	Message string           `json:"message"`
	Expense *expense.Expense `json:"expense"`
}

type ExpenseSingleResponse struct {
	Expense *expense.Expense `json:"expense"`
}
