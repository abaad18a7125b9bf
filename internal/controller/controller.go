package controller

import (
	"sipspot-be/internal/entity"
	"sipspot-be/internal/pkg/authz"
	"sipspot-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// principalFrom builds the authorization principal from the token claims the
// jwt middleware stored on the request.
func principalFrom(ctx *fiber.Ctx) (authz.Principal, error) {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return authz.Principal{}, err
	}
	return authz.Principal{
		Id:   userId,
		Role: entity.UserRole(serverutils.CurrentRole(ctx)),
	}, nil
}

func parseIdParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(ctx.Params(name))
}
