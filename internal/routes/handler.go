package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/bharath-541/FinSight/internal/domain/asset"
	"github.com/bharath-541/FinSight/internal/domain/auth"
	"github.com/bharath-541/FinSight/internal/domain/debt"
	"github.com/bharath-541/FinSight/internal/domain/expense"
	"github.com/bharath-541/FinSight/internal/domain/networth"
	"github.com/bharath-541/FinSight/internal/domain/summary"
	"github.com/bharath-541/FinSight/internal/domain/user"
	appErrors "github.com/bharath-541/FinSight/internal/errors"
	"github.com/bharath-541/FinSight/internal/logger"
	"github.com/bharath-541/FinSight/internal/middleware"
	"github.com/bharath-541/FinSight/internal/pkg"
)

type Handler struct {
	UserService     *user.Service
	AuthService     *auth.Service
	JwtService      *middleware.JwtService
	ExpenseService  *expense.Service
	AssetService    *asset.Service
	DebtService     *debt.Service
	NetWorthService *networth.Service
	SummaryService  *summary.Service
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (ulid.ULID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	userID, err := pkg.ParseULID(userIDStr.(string))
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return userID, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "20")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 20
	}

	params := &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
	params.Normalize()
	return params
}

// parseMonth reads ?month=YYYY-MM, defaulting to the current month.
func (h *Handler) parseMonth(c *gin.Context) (pkg.Month, error) {
	monthStr := c.Query("month")
	if monthStr == "" {
		return pkg.MonthOf(time.Now().UTC()), nil
	}

	month, err := pkg.ParseMonth(monthStr)
	if err != nil {
		return pkg.Month{}, appErrors.NewValidationError("month", "must be in YYYY-MM format")
	}
	return month, nil
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
