package serverutils

import (
	"sipspot-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

type BaseResponse[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse(message string, data interface{}) BaseResponse[interface{}] {
	return BaseResponse[interface{}]{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) BaseResponse[interface{}] {
	return BaseResponse[interface{}]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// RespondError maps a classified service error onto the transport. Unknown
// errors become a 500 without leaking internals.
func RespondError(ctx *fiber.Ctx, err error) error {
	switch {
	case apperr.IsValidation(err):
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(400, err.Error()))
	case apperr.IsForbidden(err):
		// Uniform signal, no detail.
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "forbidden"))
	case apperr.IsNotFound(err):
		return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(404, "not found"))
	case apperr.IsUpstream(err):
		// Provider error forwarded verbatim.
		return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(502, err.Error()))
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, "internal server error"))
	}
}
