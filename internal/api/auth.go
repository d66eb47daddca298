package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/internal/service"
)

type SignupRequest struct {
	UserName string `json:"userName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler serves signup and login.
type AuthHandler struct {
	accounts service.IAccountService
	log      *zap.Logger
	limit    []gin.HandlerFunc
}

// NewAuthHandler creates an AuthHandler. limit runs ahead of both routes
// and may be empty.
func NewAuthHandler(accounts service.IAccountService, log *zap.Logger, limit ...gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{accounts: accounts, log: log, limit: limit}
}

func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	auth := router.Group("", h.limit...)
	auth.POST("/signup", h.Signup)
	auth.POST("/login", h.Login)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.log, err, "Username, email and password are required")
		return
	}

	account, err := h.accounts.Signup(c.Request.Context(), req.UserName, req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err, "User not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Success!", "user": account})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.log, err, "Email and password are required")
		return
	}

	account, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "data": account})
}
