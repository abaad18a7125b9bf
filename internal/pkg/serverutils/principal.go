package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CurrentUserId reads the authenticated principal id stored by JwtMiddleware.
func CurrentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw := ctx.Locals("user_id")
	if raw == nil {
		return uuid.Nil, errors.New("unauthenticated")
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, errors.New("invalid principal")
	}
	return uuid.Parse(s)
}

func CurrentRole(ctx *fiber.Ctx) string {
	raw := ctx.Locals("role")
	if raw == nil {
		return ""
	}
	s, _ := raw.(string)
	return s
}
