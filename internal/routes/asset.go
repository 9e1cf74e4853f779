package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bharath-541/FinSight/internal/contracts"
	"github.com/bharath-541/FinSight/internal/domain/asset"
	appErrors "github.com/bharath-541/FinSight/internal/errors"
	"github.com/bharath-541/FinSight/internal/pkg"
)

func (h *Handler) CreateAsset(c *gin.Context) {
	var body contracts.AssetCreateRequest
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
	a, err := h.AssetService.CreateAsset(ctx, userID, &asset.CreateAssetRequest{
		Type:         body.Type,
		Name:         body.Name,
		CurrentValue: body.CurrentValue,
		Description:  body.Description,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AssetCreateResponse{
		Message: "Asset created successfully",
		Asset:   a,
	})
}

func (h *Handler) ListAssets(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	assets, summary, err := h.AssetService.ListAssets(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AssetListResponse{
		Assets:  assets,
		Summary: summary,
	})
}

func (h *Handler) GetAsset(c *gin.Context) {
	assetID, err := pkg.ParseULID(c.Param("id"))
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
	a, err := h.AssetService.GetAssetByID(ctx, assetID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AssetSingleResponse{Asset: a})
}

func (h *Handler) UpdateAsset(c *gin.Context) {
	assetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid format"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.AssetUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	a, err := h.AssetService.UpdateAsset(ctx, assetID, userID, &asset.UpdateAssetRequest{
		Type:         body.Type,
		Name:         body.Name,
		CurrentValue: body.CurrentValue,
		Description:  body.Description,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AssetSingleResponse{Asset: a})
}

func (h *Handler) DeleteAsset(c *gin.Context) {
	assetID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.AssetService.DeleteAsset(ctx, assetID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Asset removed successfully"})
}
