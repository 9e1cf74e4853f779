package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bharath-541/FinSight/internal/contracts"
	"github.com/bharath-541/FinSight/internal/domain/debt"
	appErrors "github.com/bharath-541/FinSight/internal/errors"
	"github.com/bharath-541/FinSight/internal/pkg"
)

func (h *Handler) CreateDebt(c *gin.Context) {
	var body contracts.DebtCreateRequest
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
	d, err := h.DebtService.CreateDebt(ctx, userID, &debt.CreateDebtRequest{
		Name:             body.Name,
		Principal:        body.Principal,
		RemainingBalance: body.RemainingBalance,
		InterestRate:     body.InterestRate,
		MonthlyEMI:       body.MonthlyEMI,
		Description:      body.Description,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.DebtCreateResponse{
		Message: "Debt created successfully",
		Debt:    d,
	})
}

func (h *Handler) ListDebts(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	debts, summary, err := h.DebtService.ListDebts(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DebtListResponse{
		Debts:   debts,
		Summary: summary,
	})
}

func (h *Handler) GetDebt(c *gin.Context) {
	debtID, err := pkg.ParseULID(c.Param("id"))
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
	d, err := h.DebtService.GetDebtByID(ctx, debtID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DebtSingleResponse{Debt: d})
}

func (h *Handler) UpdateDebt(c *gin.Context) {
	debtID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid format"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.DebtUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	d, err := h.DebtService.UpdateDebt(ctx, debtID, userID, &debt.UpdateDebtRequest{
		Name:             body.Name,
		Principal:        body.Principal,
		RemainingBalance: body.RemainingBalance,
		InterestRate:     body.InterestRate,
		MonthlyEMI:       body.MonthlyEMI,
		Description:      body.Description,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DebtSingleResponse{Debt: d})
}

func (h *Handler) DeleteDebt(c *gin.Context) {
	debtID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.DebtService.DeleteDebt(ctx, debtID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Debt removed successfully"})
}

func (h *Handler) PayEMI(c *gin.Context) {
	debtID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid format"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// The body is optional: a bare POST pays with today's date.
	var body contracts.DebtPayEMIRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			h.respondError(c, appErrors.ErrBadRequest.WithError(err))
			return
		}
	}

	ctx := c.Request.Context()
	result, err := h.DebtService.PayEMI(ctx, debtID, userID, &debt.PayEMIRequest{
		Date: body.Date,
		Note: body.Note,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DebtPaymentResponse{
		Message: "EMI payment recorded successfully",
		Payment: result,
	})
}
