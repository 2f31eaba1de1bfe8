package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stylesphere/storefront/internal/application/identity"
	"github.com/stylesphere/storefront/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
	jwtAuth     gin.HandlerFunc
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService, jwtAuth gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtAuth:     jwtAuth,
	}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.jwtAuth, h.Logout)
		auth.GET("/profile", h.jwtAuth, h.GetProfile)
		auth.PUT("/profile", h.jwtAuth, h.UpdateProfile)
	}
}

// Register creates a new customer account and signs it in
func (h *AuthHandler) Register(c *gin.Context) {
	var input identity.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Login authenticates a customer and issues a token
func (h *AuthHandler) Login(c *gin.Context) {
	var input identity.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Logout revokes the current token
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// GetProfile returns the signed-in customer's profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	profile, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}

// UpdateProfile updates the signed-in customer's profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input identity.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	profile, err := h.authService.UpdateProfile(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}
