package handler

import (
	"os"

	"sipspot-be/internal/pkg/logger"
	"sipspot-be/internal/pkg/serverutils"
	"sipspot-be/internal/service"
	internalWS "sipspot-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	service service.INotificationService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewNotificationHandler(svc service.INotificationService, hub *internalWS.Hub, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		service: svc,
		hub:     hub,
		logger:  log,
	}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/notification/v1")
	g.Get("ws", h.ServeWs)

	p := g.Group("", serverutils.JwtMiddleware)
	p.Get("", h.List)
	p.Get("unread-count", h.UnreadCount)
	p.Put(":id/read", h.MarkRead)
}

// ServeWs authenticates the handshake and upgrades to a websocket session.
// Browsers cannot set headers on websocket requests, so the token may come
// as a query parameter.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("NotificationHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user id in token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("NotificationHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
			internalWS.ServeWs(h.hub, conn, userID)
			h.logger.Info("NotificationHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	res, err := h.service.List(c.Context(), userId, limit, offset)
	if err != nil {
		return serverutils.RespondError(c, err)
	}
	return c.JSON(serverutils.SuccessResponse("Success list notifications", res))
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	count, err := h.service.UnreadCount(c.Context(), userId)
	if err != nil {
		return serverutils.RespondError(c, err)
	}
	return c.JSON(serverutils.SuccessResponse("Success get unread count", fiber.Map{"count": count}))
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	if err := h.service.MarkRead(c.Context(), userId, id); err != nil {
		return serverutils.RespondError(c, err)
	}
	return c.JSON(serverutils.SuccessResponse("Notification marked as read", nil))
}
