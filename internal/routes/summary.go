package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetMonthlySummary(c *gin.Context) {
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
	result, err := h.SummaryService.GetMonthlySummary(ctx, userID, month)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
