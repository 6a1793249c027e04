package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ardipermana59/hbus/internal/adapter/http/dto"
	"github.com/ardipermana59/hbus/internal/adapter/http/mapper"
	"github.com/ardipermana59/hbus/internal/adapter/http/middleware"
	"github.com/ardipermana59/hbus/internal/adapter/http/validation"
	"github.com/ardipermana59/hbus/internal/core/domain"
	"github.com/ardipermana59/hbus/internal/core/ports"
	"github.com/ardipermana59/hbus/pkg/apiresponse"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apiresponse.ErrorWithDetails(apiresponse.MsgValidationError, lang, validation.FieldErrors(err, lang)),
		)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		// An unknown email and a wrong password share the same message so
		// responses do not reveal which accounts exist.
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, apiresponse.Error(apiresponse.MsgLoginFailed, lang))
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, apiresponse.Error(apiresponse.MsgLoginFailed, lang))
		default:
			zap.L().Error("login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, apiresponse.Error(apiresponse.MsgInternalError, lang))
		}
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success(apiresponse.MsgLoginSuccess, lang, dto.LoginData{
		Token: token,
		User:  mapper.ToUserItem(user),
	}))
}
