package middleware

import (
	"strings"

	"prelovin/config"
	"prelovin/internal/delivery/http/response"
	"prelovin/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	keyUserID   = "userID"
	keyIdentity = "identity"
)

// AuthMiddleware validates the bearer token issued by the external identity
// provider. The token is HS256-signed; `sub` carries the opaque user id and
// the profile claims are optional.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// Authenticate is the core middleware function that validates the access
// token and stores the caller's identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			return []byte(m.cfg.SecretKey.Access), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Failed to parse token claims")
		}

		subject, ok := claims["sub"].(string)
		if !ok || subject == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "User ID missing from token")
		}

		identity := &usecase.IdentityClaims{
			Subject:         subject,
			Email:           stringClaim(claims, "email"),
			FirstName:       stringClaim(claims, "first_name"),
			LastName:        stringClaim(claims, "last_name"),
			ProfileImageURL: stringClaim(claims, "profile_image_url"),
		}

		c.Set(keyUserID, subject)
		c.Set(keyIdentity, identity)

		return next(c)
	}
}

// CurrentUserID returns the authenticated caller's id. Empty means the
// request did not pass Authenticate.
func CurrentUserID(c echo.Context) string {
	if id, ok := c.Get(keyUserID).(string); ok {
		return id
	}

	return ""
}

// CurrentIdentity returns the authenticated caller's identity claims, or
// nil outside an authenticated request.
func CurrentIdentity(c echo.Context) *usecase.IdentityClaims {
	if identity, ok := c.Get(keyIdentity).(*usecase.IdentityClaims); ok {
		return identity
	}

	return nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}

	return ""
}
