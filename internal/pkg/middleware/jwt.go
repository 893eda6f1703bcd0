package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/adityarama/fleetops/internal/pkg/constants"
	jwtpkg "github.com/adityarama/fleetops/internal/pkg/jwt"
	"github.com/adityarama/fleetops/internal/pkg/models"
	"github.com/adityarama/fleetops/internal/utils"
)

// JWTAuthMiddleware validates the bearer token and stores the acting user's
// id and role on the request context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := (*claims)["user_id"].(string)
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: malformed user_id claim")
			}

			role, _ := (*claims)["role"].(string)

			c.Set(constants.ContextActorIDKey, userID)
			c.Set(constants.ContextActorRoleKey, role)

			return next(c)
		}
	}
}

// ActorID returns the authenticated user's id stored by JWTAuthMiddleware.
func ActorID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(constants.ContextActorIDKey).(uuid.UUID)
	return id, ok
}
