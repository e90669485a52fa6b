package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"oysterkode.backend/internal/domain/entities"
	domainerrors "oysterkode.backend/internal/domain/errors"
	"oysterkode.backend/internal/interfaces/http/response"
	"oysterkode.backend/pkg/jwt"
	"oysterkode.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// IdentityKey is the context key for the decoded token
	IdentityKey = "identity"
	// AdminIDKey is the context key for the administrator id
	AdminIDKey = "adminId"
	// AdminUsernameKey is the context key for the administrator username
	AdminUsernameKey = "adminUsername"
)

// RevocationChecker reports whether a token id was logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware rejects requests without a valid bearer token. The wrapped
// handler never runs on failure. revocations may be nil.
func AuthMiddleware(jwtService *jwt.JWTService, revocations RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			logger.Debug(ctx, "auth rejected: missing header", zap.String("path", c.Request.URL.Path))
			response.Abort(c, domainerrors.Unauthorized("Authentication required"))
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			logger.Debug(ctx, "auth rejected: bad scheme", zap.String("path", c.Request.URL.Path))
			response.Abort(c, domainerrors.Unauthorized("Invalid authorization format. Use: Bearer <token>"))
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix))
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			logger.Debug(ctx, "auth rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
			if errors.Is(err, jwt.ErrExpiredToken) {
				response.Abort(c, domainerrors.Unauthorized("Token has expired"))
				return
			}
			response.Abort(c, domainerrors.Unauthorized("Invalid token"))
			return
		}

		if revocations != nil && claims.ID != "" {
			revoked, err := revocations.IsRevoked(ctx, claims.ID)
			if err != nil {
				response.Abort(c, err)
				return
			}
			if revoked {
				response.Abort(c, domainerrors.Unauthorized("Token has been revoked"))
				return
			}
		}

		identity := &entities.Identity{
			AdminID:  claims.AdminID,
			Username: claims.Username,
			TokenID:  claims.ID,
		}
		if claims.ExpiresAt != nil {
			identity.ExpiresAt = claims.ExpiresAt.Time
		}

		c.Set(IdentityKey, identity)
		c.Set(AdminIDKey, claims.AdminID)
		c.Set(AdminUsernameKey, claims.Username)
		c.Request = c.Request.WithContext(context.WithValue(ctx, logger.AdminKey, claims.Username))

		c.Next()
	}
}

// GetIdentity gets the decoded token from context
func GetIdentity(c *gin.Context) (*entities.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*entities.Identity)
	return identity, ok
}

// GetAdminID gets the administrator id from context
func GetAdminID(c *gin.Context) (string, bool) {
	id, exists := c.Get(AdminIDKey)
	if !exists {
		return "", false
	}
	s, ok := id.(string)
	return s, ok
}
