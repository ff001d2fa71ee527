package controller

import (
	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/pkg/logger"
	"escapedesk-be/internal/pkg/serverutils"
	"escapedesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	adminService service.IAdminService
	sysLogger    logger.ILogger
}

func NewAdminController(adminService service.IAdminService, sysLogger logger.ILogger) IAdminController {
	return &adminController{
		adminService: adminService,
		sysLogger:    sysLogger,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(c.roleMiddleware)

	h.Get("dashboard", c.GetDashboardStats)
	h.Get("transactions", c.GetTransactions)
	h.Get("usage", c.ListUsage)

	h.Get("refunds", c.ListRefunds)
	h.Post("refunds/:id/process", c.ProcessRefund)
	h.Post("cancellations/:id/process", c.ProcessCancellation)

	h.Get("logs", c.GetLogs)
	h.Get("logs/:id", c.GetLogById)
}

// roleMiddleware gates the admin surface to owners and admins. JwtMiddleware
// has already validated the token, so the claims here are trusted.
func (c *adminController) roleMiddleware(ctx *fiber.Ctx) error {
	role, ok := ctx.Locals("role").(string)
	if !ok {
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "Access denied: Role missing"))
	}
	if role != "owner" && role != "admin" {
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "Access denied: Admins only"))
	}
	return ctx.Next()
}

func (c *adminController) GetDashboardStats(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetDashboardStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", res))
}

func (c *adminController) GetTransactions(ctx *fiber.Ctx) error {
	status := ctx.Query("status")
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)

	res, err := c.adminService.GetTransactions(ctx.Context(), status, page, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Transactions", res))
}

func (c *adminController) ListUsage(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)

	res, err := c.adminService.ListUsage(ctx.Context(), page, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Tenant usage", res))
}

func (c *adminController) ListRefunds(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListRefunds(ctx.Context(), ctx.Query("status"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Refund requests", res))
}

func (c *adminController) ProcessRefund(ctx *fiber.Ctx) error {
	refundId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.ProcessRefundRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.ProcessRefund(ctx.Context(), refundId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Refund processed", res))
}

func (c *adminController) ProcessCancellation(ctx *fiber.Ctx) error {
	cancellationId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.ProcessCancellationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.ProcessCancellation(ctx.Context(), cancellationId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Cancellation processed", nil))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	logs, err := c.sysLogger.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", logs))
}

func (c *adminController) GetLogById(ctx *fiber.Ctx) error {
	entry, err := c.sysLogger.GetLogById(ctx.Params("id"))
	if err != nil {
		return fiber.ErrNotFound
	}
	return ctx.JSON(serverutils.SuccessResponse("System log", entry))
}
