package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aartrack/aar-backend/internal/http/response"
	"github.com/aartrack/aar-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	user, token, err := ah.authService.Register(c.Request.Context(), in)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"user":  user.Public(),
		"token": token,
	})
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var in services.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	user, token, err := ah.authService.Login(c.Request.Context(), in)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"user":  user.Public(),
		"token": token,
	})
}

func (ah *AuthHandler) Me(c *gin.Context) {
	me, err := ah.authService.GetMe(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, me)
}
