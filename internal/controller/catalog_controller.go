package controller

import (
	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/pkg/serverutils"
	"escapedesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Use(serverutils.JwtMiddleware)

	h.Post("venues", c.CreateVenue)
	h.Get("venues", c.ListVenues)
	h.Get("venues/:id", c.GetVenue)
	h.Put("venues/:id", c.UpdateVenue)
	h.Delete("venues/:id", c.DeleteVenue)

	h.Post("activities", c.CreateActivity)
	h.Get("activities", c.ListActivities)
	h.Get("activities/:id", c.GetActivity)
	h.Put("activities/:id", c.UpdateActivity)
	h.Delete("activities/:id", c.DeleteActivity)

	h.Post("slots", c.CreateSlot)
	h.Get("slots", c.ListSlots)
	h.Put("slots/:id", c.UpdateSlot)
	h.Delete("slots/:id", c.DeleteSlot)
}

func (c *catalogController) CreateVenue(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	var req dto.CreateVenueRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateVenue(ctx.Context(), tenantId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create venue", res))
}

func (c *catalogController) ListVenues(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	res, err := c.catalogService.ListVenues(ctx.Context(), tenantId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list venues", res))
}

func (c *catalogController) GetVenue(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	venueId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.catalogService.GetVenue(ctx.Context(), tenantId, venueId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get venue", res))
}

func (c *catalogController) UpdateVenue(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	venueId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdateVenueRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.UpdateVenue(ctx.Context(), tenantId, venueId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update venue", res))
}

func (c *catalogController) DeleteVenue(ctx *fiber.Ctx) error {
	if err := requireConfirmation(ctx); err != nil {
		return err
	}
	tenantId := tenantIdFromLocals(ctx)
	venueId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.catalogService.DeleteVenue(ctx.Context(), tenantId, venueId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete venue", nil))
}

func (c *catalogController) CreateActivity(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	var req dto.CreateActivityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateActivity(ctx.Context(), tenantId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create activity", res))
}

func (c *catalogController) ListActivities(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	res, err := c.catalogService.ListActivities(ctx.Context(), tenantId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list activities", res))
}

func (c *catalogController) GetActivity(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	activityId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.catalogService.GetActivity(ctx.Context(), tenantId, activityId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get activity", res))
}

func (c *catalogController) UpdateActivity(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	activityId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdateActivityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.UpdateActivity(ctx.Context(), tenantId, activityId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update activity", res))
}

func (c *catalogController) DeleteActivity(ctx *fiber.Ctx) error {
	if err := requireConfirmation(ctx); err != nil {
		return err
	}
	tenantId := tenantIdFromLocals(ctx)
	activityId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.catalogService.DeleteActivity(ctx.Context(), tenantId, activityId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete activity", nil))
}

func (c *catalogController) CreateSlot(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	var req dto.CreateSlotRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateSlot(ctx.Context(), tenantId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create slot", res))
}

func (c *catalogController) ListSlots(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	activityId, err := uuid.Parse(ctx.Query("activity_id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.catalogService.ListSlots(ctx.Context(), tenantId, activityId, ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list slots", res))
}

func (c *catalogController) UpdateSlot(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	slotId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdateSlotRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.UpdateSlot(ctx.Context(), tenantId, slotId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update slot", res))
}

func (c *catalogController) DeleteSlot(ctx *fiber.Ctx) error {
	if err := requireConfirmation(ctx); err != nil {
		return err
	}
	tenantId := tenantIdFromLocals(ctx)
	slotId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.catalogService.DeleteSlot(ctx.Context(), tenantId, slotId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete slot", nil))
}
