package exts

import (
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pulseworks/pulsecheck/pkg/internal/models"
)

// PrincipalHeader carries the verified account record injected by the
// auth gateway in front of this service. This service never checks
// credentials itself; it trusts whatever the gateway resolved.
const PrincipalHeader = "X-Pulse-User"

func LinkAuthContext(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		if raw := c.Get(PrincipalHeader); len(raw) > 0 {
			var account models.Account
			if err := jsoniter.UnmarshalFromString(raw, &account); err == nil && account.IsActive {
				c.Locals("user", account)
			}
		}
		return c.Next()
	})
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.Account); !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	return nil
}

func EnsureAdmin(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.Account)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	if !user.IsAdmin && !user.IsSuperAdmin {
		return fiber.NewError(fiber.StatusForbidden, "admin role required")
	}
	return nil
}

func EnsureSuperAdmin(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.Account)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	if !user.IsSuperAdmin {
		return fiber.NewError(fiber.StatusForbidden, "super admin role required")
	}
	return nil
}
