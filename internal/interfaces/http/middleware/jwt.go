package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stylesphere/storefront/internal/infrastructure/auth"
	"github.com/stylesphere/storefront/internal/infrastructure/logger"
)

// JWT context keys
const (
	JWTClaimsKey   = "jwt_claims"
	JWTUserIDKey   = "jwt_user_id"
	JWTUsernameKey = "jwt_username"
	AuthHeaderKey  = "Authorization"
	BearerPrefix   = "Bearer "
)

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	// JWTService is required for token validation
	JWTService *auth.JWTService
	// TokenBlacklist is optional for checking revoked tokens
	TokenBlacklist auth.TokenBlacklist
	// Logger for middleware logging
	Logger *zap.Logger
}

// JWTAuthMiddleware creates JWT authentication middleware
func JWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return JWTAuthMiddlewareWithConfig(JWTMiddlewareConfig{JWTService: jwtService})
}

// JWTAuthMiddlewareWithConfig creates JWT authentication middleware with custom config
func JWTAuthMiddlewareWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Missing authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Missing token")
			return
		}

		claims, err := cfg.JWTService.ValidateToken(tokenString)
		if err != nil {
			handleAuthError(c, cfg, err, "Token validation failed")
			return
		}

		// Revoked tokens are rejected; blacklist lookup failures fail open
		// so an unreachable Redis does not take authentication down with it
		if cfg.TokenBlacklist != nil && claims.ID != "" {
			blacklisted, err := cfg.TokenBlacklist.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				if cfg.Logger != nil {
					cfg.Logger.Error("Failed to check token blacklist",
						zap.String("jti", claims.ID),
						zap.Error(err))
				}
			} else if blacklisted {
				handleAuthError(c, cfg, auth.ErrTokenBlacklisted, "Token has been revoked")
				return
			}
		}

		// Store claims in context for downstream use
		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, claims.UserID)
		c.Set(JWTUsernameKey, claims.Username)

		// Also set in request context for logger
		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		ctx, _ = logger.WithUserID(ctx, log, claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// handleAuthError handles authentication errors
func handleAuthError(c *gin.Context, cfg JWTMiddlewareConfig, err error, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("JWT authentication failed",
			zap.Error(err),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}

	errorCode := "UNAUTHORIZED"
	errorMessage := "Authentication required"

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		errorCode = "TOKEN_EXPIRED"
		errorMessage = "Token has expired"
	case errors.Is(err, auth.ErrInvalidToken):
		errorCode = "INVALID_TOKEN"
		errorMessage = "Invalid token"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		errorCode = "TOKEN_NOT_VALID"
		errorMessage = "Token is not yet valid"
	case errors.Is(err, auth.ErrTokenBlacklisted):
		errorCode = "TOKEN_REVOKED"
		errorMessage = "Token has been revoked"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    errorCode,
			"message": errorMessage,
		},
	})
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetJWTUserID retrieves the user ID from JWT claims in context
func GetJWTUserID(c *gin.Context) string {
	if userID, exists := c.Get(JWTUserIDKey); exists {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}

// GetJWTUsername retrieves the username from JWT claims in context
func GetJWTUsername(c *gin.Context) string {
	if username, exists := c.Get(JWTUsernameKey); exists {
		if u, ok := username.(string); ok {
			return u
		}
	}
	return ""
}
