package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/model"
	"nexora.lk/campuscore/internal/service"
	"nexora.lk/campuscore/pkg/apperror"
	"nexora.lk/campuscore/pkg/response"
	"nexora.lk/campuscore/pkg/validator"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), input, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "login successful", result)
}

// Me returns the account the auth middleware already loaded.
func (h *AuthHandler) Me(c *gin.Context) {
	value, exists := c.Get("account")
	if !exists {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	account, ok := value.(*model.Account)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	account.PasswordHash = ""
	response.OK(c, http.StatusOK, "", account)
}
