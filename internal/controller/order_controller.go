package controller

import (
	"sipspot-be/internal/dto"
	"sipspot-be/internal/pkg/serverutils"
	"sipspot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOrderController interface {
	RegisterRoutes(r fiber.Router)
	Place(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	ListForEstablishment(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
}

type orderController struct {
	orderService service.IOrderService
}

func NewOrderController(orderService service.IOrderService) IOrderController {
	return &orderController{
		orderService: orderService,
	}
}

func (c *orderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/order/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Place)
	h.Get("mine", c.ListMine)
	h.Get("establishment/:establishmentId", c.ListForEstablishment)
	h.Get(":id", c.Show)
	h.Put(":id/complete", c.Complete)
	h.Put(":id/cancel", c.Cancel)
}

func (c *orderController) Place(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.PlaceOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.orderService.Place(ctx.Context(), principal, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Order placed", res))
}

func (c *orderController) Show(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	res, err := c.orderService.GetById(ctx.Context(), principal, id)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get order", res))
}

func (c *orderController) ListMine(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var query dto.OrderListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.orderService.ListMine(ctx.Context(), principal, &query)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list orders", res))
}

func (c *orderController) ListForEstablishment(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	estId, err := parseIdParam(ctx, "establishmentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid establishment id"))
	}

	var query dto.OrderListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.orderService.ListForEstablishment(ctx.Context(), principal, estId, &query)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list orders", res))
}

func (c *orderController) Complete(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	res, err := c.orderService.Complete(ctx.Context(), principal, id)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Order completed", res))
}

func (c *orderController) Cancel(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	res, err := c.orderService.Cancel(ctx.Context(), principal, id)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Order canceled", res))
}
