package auth

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/roomly/api/internal/database"
	"github.com/roomly/api/internal/models"
	"github.com/roomly/api/internal/response"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// JWTProtected resolves the bearer token into a Principal. Status is
// re-checked against the store on every request, so blocking a user
// takes effect on their next call regardless of token expiry.
func JWTProtected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Missing authorization token")
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return response.Unauthorized(c, "Invalid token format")
		}

		claims, err := ParseAccessToken(tokenParts[1])
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		principal, err := LoadPrincipal(database.DB, userID)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return response.Unauthorized(c, "User not found")
			}
			return response.InternalError(c, "Failed to resolve user")
		}

		switch principal.Status {
		case models.StatusBlocked:
			return response.Unauthorized(c, "User is blocked")
		case models.StatusInactive:
			return response.Unauthorized(c, "User is inactive")
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// RoleProtected allows the request through only when the resolved
// principal's role is in the allowed set. Must run after JWTProtected.
func RoleProtected(allowedRoles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := PrincipalFromCtx(c)
		if principal == nil {
			return response.Unauthorized(c, "User not authenticated")
		}

		for _, role := range allowedRoles {
			if principal.Role == role {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminProtected gates moderation endpoints.
func AdminProtected() fiber.Handler {
	return RoleProtected(models.RoleAdmin, models.RoleSuperAdmin)
}

func PrincipalFromCtx(c *fiber.Ctx) *Principal {
	principal, _ := c.Locals(principalKey).(*Principal)
	return principal
}

// OwnsResource is the ownership half of the authorization policy: the
// resource's owning host profile must be the principal's own.
func OwnsResource(principal *Principal, ownerID uuid.UUID) bool {
	hostID, ok := principal.HostProfileID()
	return ok && hostID == ownerID
}
