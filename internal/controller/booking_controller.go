package controller

import (
	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/pkg/serverutils"
	"escapedesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBookingController interface {
	RegisterRoutes(r fiber.Router)
	Availability(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Reschedule(ctx *fiber.Ctx) error
	CheckIn(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	NoShow(ctx *fiber.Ctx) error
}

type bookingController struct {
	bookingService service.IBookingService
}

func NewBookingController(bookingService service.IBookingService) IBookingController {
	return &bookingController{
		bookingService: bookingService,
	}
}

func (c *bookingController) RegisterRoutes(r fiber.Router) {
	// Availability is public: the booking widget queries it pre-auth.
	r.Get("/booking/v1/availability", c.Availability)

	h := r.Group("/booking/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Post(":id/cancel", c.Cancel)
	h.Post(":id/reschedule", c.Reschedule)
	h.Post(":id/check-in", c.CheckIn)
	h.Post(":id/complete", c.Complete)
	h.Post(":id/no-show", c.NoShow)
}

func (c *bookingController) Availability(ctx *fiber.Ctx) error {
	var req dto.AvailabilityRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.bookingService.ListAvailableSlots(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list availability", res))
}

func (c *bookingController) Create(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	var req dto.CreateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.bookingService.CreateBooking(ctx.Context(), tenantId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create booking", res))
}

func (c *bookingController) Show(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.bookingService.GetBooking(ctx.Context(), tenantId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show booking", res))
}

func (c *bookingController) List(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	var req dto.ListBookingsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.bookingService.ListBookings(ctx.Context(), tenantId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list bookings", res))
}

func (c *bookingController) Cancel(ctx *fiber.Ctx) error {
	if err := requireConfirmation(ctx); err != nil {
		return err
	}

	tenantId := tenantIdFromLocals(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.CancelBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.bookingService.CancelBooking(ctx.Context(), tenantId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success cancel booking", res))
}

func (c *bookingController) Reschedule(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.RescheduleBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.bookingService.RescheduleBooking(ctx.Context(), tenantId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success reschedule booking", res))
}

func (c *bookingController) CheckIn(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.bookingService.CheckInBooking(ctx.Context(), tenantId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success check in booking", res))
}

func (c *bookingController) Complete(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.bookingService.CompleteBooking(ctx.Context(), tenantId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success complete booking", res))
}

func (c *bookingController) NoShow(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.bookingService.MarkNoShow(ctx.Context(), tenantId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success mark no-show", res))
}

// tenantIdFromLocals extracts the tenant set by the JWT middleware.
func tenantIdFromLocals(ctx *fiber.Ctx) uuid.UUID {
	tenantIdStr, _ := ctx.Locals("tenant_id").(string)
	tenantId, _ := uuid.Parse(tenantIdStr)
	return tenantId
}

func staffIdFromLocals(ctx *fiber.Ctx) *uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return nil
	}
	return &userId
}

// requireConfirmation guards destructive endpoints: the caller must
// opt in with ?confirm=true.
func requireConfirmation(ctx *fiber.Ctx) error {
	if ctx.Query("confirm") != "true" {
		return fiber.NewError(fiber.StatusBadRequest, "confirm=true is required for this operation")
	}
	return nil
}
