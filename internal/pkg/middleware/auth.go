package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/chauffeur/internal/pkg/jwt"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/pkg/requestcontext"
	"github.com/piresc/chauffeur/internal/utils"
)

const callerKey = "caller"

// JWTAuthMiddleware authenticates dispatcher requests with a bearer token
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			caller := claims.Caller()
			c.Set(callerKey, caller)
			c.Set("user_id", caller.UserID)
			AddAttribute(c, "org.id", caller.OrgID.String())
			ctx := requestcontext.WithCaller(c.Request().Context(), caller.OrgID.String(), caller.UserID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// RequireRole rejects callers whose role is not in roles
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := CallerFrom(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}
			if !caller.HasRole(roles...) {
				return utils.ForbiddenResponse(c, "Insufficient role")
			}
			return next(c)
		}
	}
}

// CallerFrom returns the authenticated caller set by JWTAuthMiddleware
func CallerFrom(c echo.Context) (models.Caller, bool) {
	caller, ok := c.Get(callerKey).(models.Caller)
	return caller, ok
}

// SetCaller stores caller on the echo context
func SetCaller(c echo.Context, caller models.Caller) {
	c.Set(callerKey, caller)
}
