package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	userUseCase "github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/user"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/dto"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/middleware"
)

// AuthHandler handles account and session HTTP requests
type AuthHandler struct {
	userService *userUseCase.Service
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(userService *userUseCase.Service, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		logger:      logger,
	}
}

// Register handles the POST /auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.userService.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: result.Token,
		User:  dto.NewUserResponse(result.User),
	})
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: result.Token,
		User:  dto.NewUserResponse(result.User),
	})
}

// ResendVerification handles the POST /auth/resend-verification endpoint
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req dto.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	if err := h.userService.ResendVerification(c.Request.Context(), req.Email); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusAccepted)
}

// Me handles the GET /auth/me endpoint
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
