package controller

import (
	"sipspot-be/internal/dto"
	"sipspot-be/internal/pkg/serverutils"
	"sipspot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFeedbackController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ListForEstablishment(ctx *fiber.Ctx) error
	Summary(ctx *fiber.Ctx) error
}

type feedbackController struct {
	feedbackService service.IFeedbackService
}

func NewFeedbackController(feedbackService service.IFeedbackService) IFeedbackController {
	return &feedbackController{
		feedbackService: feedbackService,
	}
}

func (c *feedbackController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/feedback/v1")

	// Public read side.
	h.Get("establishment/:establishmentId", c.ListForEstablishment)
	h.Get("establishment/:establishmentId/summary", c.Summary)

	p := h.Group("", serverutils.JwtMiddleware)
	p.Post("", c.Submit)
	p.Put(":id", c.Update)
	p.Delete(":id", c.Delete)
}

func (c *feedbackController) Submit(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.SubmitFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.feedbackService.Submit(ctx.Context(), principal, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Feedback submitted", res))
}

func (c *feedbackController) Update(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	var req dto.UpdateFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.feedbackService.Update(ctx.Context(), principal, id, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Feedback updated", res))
}

func (c *feedbackController) Delete(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	if err := c.feedbackService.Delete(ctx.Context(), principal, id); err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Feedback deleted", nil))
}

func (c *feedbackController) ListForEstablishment(ctx *fiber.Ctx) error {
	estId, err := parseIdParam(ctx, "establishmentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid establishment id"))
	}
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.feedbackService.ListForEstablishment(ctx.Context(), estId, limit, offset)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list feedback", res))
}

func (c *feedbackController) Summary(ctx *fiber.Ctx) error {
	estId, err := parseIdParam(ctx, "establishmentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid establishment id"))
	}

	res, err := c.feedbackService.Summary(ctx.Context(), estId)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get feedback summary", res))
}
