package handler

import (
	"os"

	"escapedesk-be/internal/pkg/logger"
	"escapedesk-be/internal/pkg/serverutils"
	"escapedesk-be/internal/service"
	internalWS "escapedesk-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	service *service.NotificationService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewNotificationHandler(service *service.NotificationService, hub *internalWS.Hub, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		hub:     hub,
		logger:  log,
	}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/notification/v1")
	g.Get("/ws", h.ServeWs)

	protected := g.Use(serverutils.JwtMiddleware)
	protected.Get("", h.GetNotifications)
	protected.Put(":id/read", h.MarkAsRead)
	protected.Put("read-all", h.MarkAllAsRead)
}

// ServeWs upgrades the connection after validating the staff token.
// Browsers cannot set Authorization headers on websocket handshakes, so
// the token may come in via query param.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("NotificationHandler", "Invalid Token in WS Handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	tenantIDStr, ok := claims["tenant_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing tenant_id"})
	}
	tenantID, err := uuid.Parse(tenantIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid tenant ID format in token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("NotificationHandler", "Starting WebSocket session", map[string]interface{}{"tenant_id": tenantID})
			internalWS.ServeWs(h.hub, conn, tenantID)
			h.logger.Info("NotificationHandler", "WebSocket session ended", map[string]interface{}{"tenant_id": tenantID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// GetNotifications returns the tenant's notification inbox.
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	tenantID, err := tenantFromLocals(c)
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	notifications, unread, err := h.service.GetNotifications(c.UserContext(), tenantID, limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data":         notifications,
		"unread_count": unread,
		"page":         offset/limit + 1,
		"limit":        limit,
	})
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	tenantID, err := tenantFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := h.service.MarkAsRead(c.UserContext(), tenantID, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	tenantID, err := tenantFromLocals(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkAllAsRead(c.UserContext(), tenantID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func tenantFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	tenantIDStr, ok := c.Locals("tenant_id").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	tenantID, err := uuid.Parse(tenantIDStr)
	if err != nil {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return tenantID, nil
}
