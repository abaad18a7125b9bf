package controller

import (
	"sipspot-be/internal/dto"
	"sipspot-be/internal/pkg/serverutils"
	"sipspot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEstablishmentController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ShowBySlug(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ListBanners(ctx *fiber.Ctx) error
	AddBanner(ctx *fiber.Ctx) error
	RemoveBanner(ctx *fiber.Ctx) error
}

type establishmentController struct {
	establishmentService service.IEstablishmentService
}

func NewEstablishmentController(establishmentService service.IEstablishmentService) IEstablishmentController {
	return &establishmentController{
		establishmentService: establishmentService,
	}
}

func (c *establishmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/establishment/v1")

	// Public catalog endpoints.
	h.Get("", c.List)
	h.Get("slug/:slug", c.ShowBySlug)

	// Owner endpoints.
	p := h.Group("", serverutils.JwtMiddleware)
	p.Get("mine", c.ListMine)
	p.Post("", c.Create)
	p.Put(":id", c.Update)
	p.Delete(":id", c.Delete)
	p.Post(":id/banners", c.AddBanner)
	p.Delete(":id/banners/:bannerId", c.RemoveBanner)

	h.Get(":id", c.Show)
	h.Get(":id/banners", c.ListBanners)
}

func (c *establishmentController) List(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.establishmentService.List(ctx.Context(), limit, offset)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list establishments", res))
}

func (c *establishmentController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	res, err := c.establishmentService.GetById(ctx.Context(), id)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get establishment", res))
}

func (c *establishmentController) ShowBySlug(ctx *fiber.Ctx) error {
	res, err := c.establishmentService.GetBySlug(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get establishment", res))
}

func (c *establishmentController) ListMine(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.establishmentService.ListByOwner(ctx.Context(), principal.Id)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list establishments", res))
}

func (c *establishmentController) Create(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.CreateEstablishmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.establishmentService.Create(ctx.Context(), principal, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create establishment", res))
}

func (c *establishmentController) Update(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	var req dto.UpdateEstablishmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.establishmentService.Update(ctx.Context(), principal, id, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update establishment", res))
}

func (c *establishmentController) Delete(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	if err := c.establishmentService.Delete(ctx.Context(), principal, id); err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete establishment", nil))
}

func (c *establishmentController) ListBanners(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	res, err := c.establishmentService.ListBanners(ctx.Context(), id)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list banners", res))
}

func (c *establishmentController) AddBanner(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	var req dto.BannerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.establishmentService.AddBanner(ctx.Context(), principal, id, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add banner", res))
}

func (c *establishmentController) RemoveBanner(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}
	bannerId, err := parseIdParam(ctx, "bannerId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid banner id"))
	}

	if err := c.establishmentService.RemoveBanner(ctx.Context(), principal, id, bannerId); err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success remove banner", nil))
}
