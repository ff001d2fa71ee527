package controller

import (
	"strings"

	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/pkg/serverutils"
	"escapedesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPortalController interface {
	RegisterRoutes(r fiber.Router)
}

type portalController struct {
	portalService service.IPortalService
}

func NewPortalController(portalService service.IPortalService) IPortalController {
	return &portalController{
		portalService: portalService,
	}
}

func (c *portalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/portal/v1")
	h.Post(":tenant_id/lookup", c.Lookup)

	p := h.Group("", c.sessionMiddleware)
	p.Get("bookings", c.MyBookings)
	p.Get("waivers", c.MyWaivers)
}

// sessionMiddleware resolves the portal bearer token into its redis-backed
// session and stashes it in Locals for the handlers below.
func (c *portalController) sessionMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return fiber.ErrUnauthorized
	}

	session, err := c.portalService.ResolveSession(ctx.Context(), strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return err
	}

	ctx.Locals("portal_session", session)
	return ctx.Next()
}

func (c *portalController) Lookup(ctx *fiber.Ctx) error {
	tenantId, err := uuid.Parse(ctx.Params("tenant_id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.PortalLookupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.portalService.Lookup(ctx.Context(), tenantId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Portal session created", res))
}

func (c *portalController) MyBookings(ctx *fiber.Ctx) error {
	session, ok := ctx.Locals("portal_session").(*entity.PortalSession)
	if !ok {
		return fiber.ErrUnauthorized
	}

	res, err := c.portalService.MyBookings(ctx.Context(), session)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get bookings", res))
}

func (c *portalController) MyWaivers(ctx *fiber.Ctx) error {
	session, ok := ctx.Locals("portal_session").(*entity.PortalSession)
	if !ok {
		return fiber.ErrUnauthorized
	}

	res, err := c.portalService.MyWaivers(ctx.Context(), session)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get waivers", res))
}
