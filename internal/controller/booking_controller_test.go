package controller

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubBookingService struct {
	service.IBookingService
	cancelCalls int
}

func (s *stubBookingService) CancelBooking(ctx context.Context, tenantId, bookingId uuid.UUID, req *dto.CancelBookingRequest) (*dto.CancelBookingResponse, error) {
	s.cancelCalls++
	return &dto.CancelBookingResponse{RefundStatus: "none"}, nil
}

func newCancelTestApp(stub *stubBookingService, tenantId uuid.UUID) *fiber.App {
	c := &bookingController{bookingService: stub}

	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals("tenant_id", tenantId.String())
		return ctx.Next()
	})
	app.Post("/booking/v1/:id/cancel", c.Cancel)
	return app
}

func TestCancelRequiresConfirmation(t *testing.T) {
	tenantId := uuid.New()
	path := "/booking/v1/" + uuid.New().String() + "/cancel"

	t.Run("rejected without confirm flag", func(t *testing.T) {
		stub := &stubBookingService{}
		app := newCancelTestApp(stub, tenantId)

		req := httptest.NewRequest("POST", path, strings.NewReader(`{"reason":"change of plans"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Zero(t, stub.cancelCalls)
	})

	t.Run("proceeds with confirm=true", func(t *testing.T) {
		stub := &stubBookingService{}
		app := newCancelTestApp(stub, tenantId)

		req := httptest.NewRequest("POST", path+"?confirm=true", strings.NewReader(`{"reason":"change of plans"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, stub.cancelCalls)
	})
}
