package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bharath-541/FinSight/internal/contracts"
	"github.com/bharath-541/FinSight/internal/domain/auth"
	appErrors "github.com/bharath-541/FinSight/internal/errors"
)

func (h *Handler) Registration(c *gin.Context) {
	var body contracts.RegisterRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	result, err := h.AuthService.Register(ctx, &auth.RegisterRequest{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AuthResponse{
		Message: "Account created successfully",
		Result:  result,
	})
}

func (h *Handler) Authenticate(c *gin.Context) {
	var body contracts.LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	result, err := h.AuthService.Login(ctx, body.Email, body.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AuthResponse{
		Message: "Authenticated successfully",
		Result:  result,
	})
}
