package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bharath-541/FinSight/internal/contracts"
	"github.com/bharath-541/FinSight/internal/domain/expense"
	appErrors "github.com/bharath-541/FinSight/internal/errors"
	"github.com/bharath-541/FinSight/internal/pkg"
)

func (h *Handler) CreateExpense(c *gin.Context) {
	var body contracts.ExpenseCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	e, err := h.ExpenseService.CreateExpense(ctx, userID, expense.ClassifyInput{
		Amount:   body.Amount,
		Category: body.Category,
		Bucket:   body.Bucket,
		Note:     body.Note,
		Date:     body.Date,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ExpenseCreateResponse{
		Message: "Expense recorded successfully",
		Expense: e,
	})
}

func (h *Handler) ListExpenses(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filters := &expense.Filters{}

	if monthStr := c.Query("month"); monthStr != "" {
		month, err := pkg.ParseMonth(monthStr)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("month", "must be in YYYY-MM format"))
			return
		}
		filters.Month = &month
	}

	if bucketStr := c.Query("bucket"); bucketStr != "" {
		bucket, ok := expense.ParseBucket(bucketStr)
		if !ok {
			h.respondError(c, appErrors.NewValidationError("bucket", "must be one of: needs, wants, savings"))
			return
		}
		filters.Bucket = &bucket
	}

	if category := c.Query("category"); category != "" {
		filters.Category = &category
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	expenses, total, err := h.ExpenseService.ListExpenses(ctx, userID, filters, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(expenses, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetExpense(c *gin.Context) {
	expenseID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid format"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	e, err := h.ExpenseService.GetExpenseByID(ctx, expenseID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ExpenseSingleResponse{Expense: e})
}

func (h *Handler) UpdateExpense(c *gin.Context) {
	expenseID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid format"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.ExpenseUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	e, err := h.ExpenseService.UpdateExpense(ctx, expenseID, userID, &expense.UpdateExpenseRequest{
		Amount:   body.Amount,
		Category: body.Category,
		Bucket:   body.Bucket,
		Note:     body.Note,
		Date:     body.Date,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ExpenseSingleResponse{Expense: e})
}

func (h *Handler) DeleteExpense(c *gin.Context) {
	expenseID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid format"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.ExpenseService.DeleteExpense(ctx, expenseID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Expense removed successfully"})
}
