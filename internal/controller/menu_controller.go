package controller

import (
	"sipspot-be/internal/dto"
	"sipspot-be/internal/pkg/serverutils"
	"sipspot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMenuController interface {
	RegisterRoutes(r fiber.Router)
	GetMenu(ctx *fiber.Ctx) error
	GetItem(ctx *fiber.Ctx) error
	CreateCategory(ctx *fiber.Ctx) error
	UpdateCategory(ctx *fiber.Ctx) error
	DeleteCategory(ctx *fiber.Ctx) error
	CreateItem(ctx *fiber.Ctx) error
	UpdateItem(ctx *fiber.Ctx) error
	DeleteItem(ctx *fiber.Ctx) error
}

type menuController struct {
	menuService service.IMenuService
}

func NewMenuController(menuService service.IMenuService) IMenuController {
	return &menuController{
		menuService: menuService,
	}
}

func (c *menuController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/establishment/v1/:establishmentId/menu")

	// Public menu browsing.
	h.Get("", c.GetMenu)
	h.Get("items/:itemId", c.GetItem)

	// Owner management.
	p := h.Group("", serverutils.JwtMiddleware)
	p.Post("categories", c.CreateCategory)
	p.Put("categories/:categoryId", c.UpdateCategory)
	p.Delete("categories/:categoryId", c.DeleteCategory)
	p.Post("items", c.CreateItem)
	p.Put("items/:itemId", c.UpdateItem)
	p.Delete("items/:itemId", c.DeleteItem)
}

func (c *menuController) GetMenu(ctx *fiber.Ctx) error {
	estId, err := parseIdParam(ctx, "establishmentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid establishment id"))
	}

	res, err := c.menuService.GetMenu(ctx.Context(), estId, ctx.QueryBool("available"))
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get menu", res))
}

func (c *menuController) GetItem(ctx *fiber.Ctx) error {
	estId, err := parseIdParam(ctx, "establishmentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid establishment id"))
	}
	itemId, err := parseIdParam(ctx, "itemId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid item id"))
	}

	res, err := c.menuService.GetItem(ctx.Context(), estId, itemId)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get menu item", res))
}

func (c *menuController) CreateCategory(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	estId, err := parseIdParam(ctx, "establishmentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid establishment id"))
	}

	var req dto.CreateMenuCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.menuService.CreateCategory(ctx.Context(), principal, estId, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create category", res))
}

func (c *menuController) UpdateCategory(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	estId, err := parseIdParam(ctx, "establishmentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid establishment id"))
	}
	categoryId, err := parseIdParam(ctx, "categoryId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid category id"))
	}

	var req dto.UpdateMenuCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.menuService.UpdateCategory(ctx.Context(), principal, estId, categoryId, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update category", res))
}

func (c *menuController) DeleteCategory(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	estId, err := parseIdParam(ctx, "establishmentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid establishment id"))
	}
	categoryId, err := parseIdParam(ctx, "categoryId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid category id"))
	}

	if err := c.menuService.DeleteCategory(ctx.Context(), principal, estId, categoryId); err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete category", nil))
}

func (c *menuController) CreateItem(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	estId, err := parseIdParam(ctx, "establishmentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid establishment id"))
	}

	var req dto.CreateMenuItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.menuService.CreateItem(ctx.Context(), principal, estId, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create menu item", res))
}

func (c *menuController) UpdateItem(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	estId, err := parseIdParam(ctx, "establishmentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid establishment id"))
	}
	itemId, err := parseIdParam(ctx, "itemId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid item id"))
	}

	var req dto.UpdateMenuItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.menuService.UpdateItem(ctx.Context(), principal, estId, itemId, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update menu item", res))
}

func (c *menuController) DeleteItem(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	estId, err := parseIdParam(ctx, "establishmentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid establishment id"))
	}
	itemId, err := parseIdParam(ctx, "itemId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid item id"))
	}

	if err := c.menuService.DeleteItem(ctx.Context(), principal, estId, itemId); err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete menu item", nil))
}
