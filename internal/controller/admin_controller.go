package controller

import (
	"sipspot-be/internal/dto"
	"sipspot-be/internal/pkg/serverutils"
	"sipspot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ListUsers(ctx *fiber.Ctx) error
	BlockUser(ctx *fiber.Ctx) error
	UnblockUser(ctx *fiber.Ctx) error
	DeleteUser(ctx *fiber.Ctx) error
	RestoreUser(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Logs(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{
		adminService: adminService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("users", c.ListUsers)
	h.Put("users/:id/block", c.BlockUser)
	h.Put("users/:id/unblock", c.UnblockUser)
	h.Delete("users/:id", c.DeleteUser)
	h.Put("users/:id/restore", c.RestoreUser)
	h.Get("stats", c.Stats)
	h.Get("logs", c.Logs)
}

func (c *adminController) ListUsers(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var query dto.AdminUserQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.adminService.ListUsers(ctx.Context(), principal, &query)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list users", res))
}

func (c *adminController) BlockUser(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	if err := c.adminService.BlockUser(ctx.Context(), principal, id); err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User blocked", nil))
}

func (c *adminController) UnblockUser(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	if err := c.adminService.UnblockUser(ctx.Context(), principal, id); err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User unblocked", nil))
}

func (c *adminController) DeleteUser(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	if err := c.adminService.DeleteUser(ctx.Context(), principal, id); err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User deleted", nil))
}

func (c *adminController) RestoreUser(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	if err := c.adminService.RestoreUser(ctx.Context(), principal, id); err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User restored", nil))
}

func (c *adminController) Stats(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.adminService.Stats(ctx.Context(), principal)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get stats", res))
}

func (c *adminController) Logs(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var query dto.AdminLogQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.adminService.Logs(ctx.Context(), principal, &query)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}
