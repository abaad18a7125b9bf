package controller

import (
	"sipspot-be/internal/dto"
	"sipspot-be/internal/pkg/serverutils"
	"sipspot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	GetPlans(ctx *fiber.Ctx) error
	GetOrderSummary(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
	StartTrial(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
	CreatePlan(ctx *fiber.Ctx) error
	UpdatePlan(ctx *fiber.Ctx) error
	SetPlanActive(ctx *fiber.Ctx) error
}

type paymentController struct {
	paymentService service.IPaymentService
}

func NewPaymentController(paymentService service.IPaymentService) IPaymentController {
	return &paymentController{
		paymentService: paymentService,
	}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/billing/v1")

	// Public plan catalog.
	h.Get("plans", c.GetPlans)
	h.Get("plans/:planId/summary", c.GetOrderSummary)

	// Gateway callback, authenticated by signature instead of a token.
	h.Post("midtrans/notification", c.Webhook)

	p := h.Group("", serverutils.JwtMiddleware)
	p.Post("checkout", c.Checkout)
	p.Post("trial", c.StartTrial)
	p.Get("status", c.Status)
	p.Delete("subscription", c.Cancel)
	p.Post("plans", c.CreatePlan)
	p.Put("plans/:planId", c.UpdatePlan)
	p.Put("plans/:planId/active", c.SetPlanActive)
}

func (c *paymentController) GetPlans(ctx *fiber.Ctx) error {
	res, err := c.paymentService.GetPlans(ctx.Context())
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list plans", res))
}

func (c *paymentController) GetOrderSummary(ctx *fiber.Ctx) error {
	planId, err := parseIdParam(ctx, "planId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid plan id"))
	}

	res, err := c.paymentService.GetOrderSummary(ctx.Context(), planId)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get order summary", res))
}

func (c *paymentController) Checkout(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.CheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.paymentService.Checkout(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Checkout created", res))
}

func (c *paymentController) StartTrial(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.StartTrialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.paymentService.StartTrial(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Trial started", res))
}

func (c *paymentController) Status(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.paymentService.GetSubscriptionStatus(ctx.Context(), userId)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get subscription status", res))
}

func (c *paymentController) Cancel(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	if err := c.paymentService.CancelSubscription(ctx.Context(), userId); err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription canceled", nil))
}

func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	var req dto.MidtransWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.paymentService.HandleNotification(ctx.Context(), &req); err != nil {
		return serverutils.RespondError(ctx, err)
	}
	// The gateway only cares that we acknowledged.
	return ctx.JSON(serverutils.SuccessResponse("OK", nil))
}

func (c *paymentController) CreatePlan(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.CreatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.paymentService.CreatePlan(ctx.Context(), principal, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Plan created", res))
}

func (c *paymentController) UpdatePlan(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	planId, err := parseIdParam(ctx, "planId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid plan id"))
	}

	var req dto.UpdatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.paymentService.UpdatePlan(ctx.Context(), principal, planId, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan updated", res))
}

func (c *paymentController) SetPlanActive(ctx *fiber.Ctx) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	planId, err := parseIdParam(ctx, "planId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid plan id"))
	}

	var body struct {
		Active bool `json:"active"`
	}
	if err := ctx.BodyParser(&body); err != nil {
		return err
	}

	if err := c.paymentService.SetPlanActive(ctx.Context(), principal, planId, body.Active); err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan updated", nil))
}
