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

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	lang := middleware.GetLang(c)

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apiresponse.Error(apiresponse.MsgFailListUsers, lang),
		)
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success(apiresponse.MsgUsersFetched, lang, mapper.ToUserItems(users)))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, apiresponse.Error(apiresponse.MsgUserNotFound, lang))
			return
		}

		zap.L().Error("failed to get user", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apiresponse.Error(apiresponse.MsgFailGetUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success(apiresponse.MsgUserFetched, lang, mapper.ToUserItem(user)))
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apiresponse.ErrorWithDetails(apiresponse.MsgValidationError, lang, validation.FieldErrors(err, lang)),
		)
		return
	}

	params := ports.CreateUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Role != nil {
		params.Role = domain.UserRole(*req.Role)
	}

	user, err := h.userService.CreateUser(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			h.emailTaken(c, lang)
			return
		}

		zap.L().Error("failed to create user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apiresponse.Error(apiresponse.MsgFailCreateUser, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, apiresponse.Success(apiresponse.MsgUserCreated, lang, mapper.ToUserItem(user)))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apiresponse.ErrorWithDetails(apiresponse.MsgValidationError, lang, validation.FieldErrors(err, lang)),
		)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, domain.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  domain.UserRole(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, apiresponse.Error(apiresponse.MsgUserNotFound, lang))
		case errors.Is(err, domain.ErrEmailTaken):
			h.emailTaken(c, lang)
		default:
			zap.L().Error("failed to update user", zap.Uint64("user_id", userID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apiresponse.Error(apiresponse.MsgFailUpdateUser, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success(apiresponse.MsgUserUpdated, lang, mapper.ToUserItem(user)))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.DeleteUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, apiresponse.Error(apiresponse.MsgUserNotFound, lang))
			return
		}

		zap.L().Error("failed to delete user", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apiresponse.Error(apiresponse.MsgFailDeleteUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success(apiresponse.MsgUserDeleted, lang, mapper.ToUserItem(user)))
}

func (h *UserHandler) emailTaken(c *gin.Context, lang string) {
	c.JSON(
		http.StatusBadRequest,
		apiresponse.ErrorWithDetails(apiresponse.MsgEmailTaken, lang, []apiresponse.FieldError{{
			Field:   "email",
			Message: apiresponse.Translate(apiresponse.MsgEmailTaken, lang),
		}}),
	)
}
