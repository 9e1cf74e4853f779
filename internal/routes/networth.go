package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bharath-541/FinSight/internal/contracts"
	appErrors "github.com/bharath-541/FinSight/internal/errors"
	"github.com/bharath-541/FinSight/internal/pkg"
)

func (h *Handler) GetNetWorth(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()

	// ?month= asks for the stored snapshot instead of the live figure.
	if monthStr := c.Query("month"); monthStr != "" {
		month, err := pkg.ParseMonth(monthStr)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("month", "must be in YYYY-MM format"))
			return
		}

		snapshot, err := h.NetWorthService.GetSnapshot(ctx, userID, month)
		if err != nil {
			h.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, contracts.SnapshotResponse{Snapshot: snapshot})
		return
	}

	current, err := h.NetWorthService.CalculateNetWorth(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.NetWorthResponse{NetWorth: current})
}

func (h *Handler) GetNetWorthHistory(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := pkg.ParseInt(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	ctx := c.Request.Context()
	history, err := h.NetWorthService.GetHistory(ctx, userID, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *Handler) SaveNetWorthSnapshot(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	month, err := h.parseMonth(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	snapshot, err := h.NetWorthService.SaveSnapshot(ctx, userID, month)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SnapshotResponse{
		Message:  "Snapshot saved successfully",
		Snapshot: snapshot,
	})
}
