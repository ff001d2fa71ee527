package controller

import (
	"fmt"

	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/pkg/serverutils"
	"escapedesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	GetPlans(ctx *fiber.Ctx) error
	GetOrderSummary(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
	BuyCredits(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
	GetSubscription(ctx *fiber.Ctx) error
	SyncStatus(ctx *fiber.Ctx) error
	RequestCancellation(ctx *fiber.Ctx) error
	CreatePortalSession(ctx *fiber.Ctx) error
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
	h := r.Group("/payment/v1")

	// Public routes. The webhook is authenticated by its signature key.
	h.Post("notification", c.Webhook)
	h.Get("plans", c.GetPlans)
	h.Get("summary", c.GetOrderSummary)

	p := h.Group("", serverutils.JwtMiddleware)
	p.Post("checkout", c.Checkout)
	p.Post("buy-credits", c.BuyCredits)
	p.Get("subscription", c.GetSubscription)
	p.Post("sync", c.SyncStatus)
	p.Post("request-cancellation", c.RequestCancellation)
	p.Post("portal-session", c.CreatePortalSession)
}

func (c *paymentController) GetPlans(ctx *fiber.Ctx) error {
	res, err := c.paymentService.GetPlans(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching plans", res))
}

func (c *paymentController) GetOrderSummary(ctx *fiber.Ctx) error {
	planId, err := uuid.Parse(ctx.Query("plan_id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.paymentService.GetOrderSummary(ctx.Context(), planId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Order summary", res))
}

func (c *paymentController) Checkout(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	var req dto.CheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.paymentService.CreateCheckoutSession(ctx.Context(), tenantId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Checkout session created", res))
}

func (c *paymentController) BuyCredits(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	var req dto.BuyCreditsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.paymentService.BuyCredits(ctx.Context(), tenantId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Credit order created", res))
}

func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	var req dto.PaymentWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		fmt.Printf("[WEBHOOK ERROR] Body parsing failed: %v\n", err)
		return ctx.SendStatus(fiber.StatusBadRequest)
	}

	sigPreview := req.SignatureKey
	if len(sigPreview) > 8 {
		sigPreview = sigPreview[:8] + "..."
	}
	fmt.Printf("[WEBHOOK] Received: OrderId=%s, Status=%s, SignatureKey=%s\n",
		req.OrderId, req.TransactionStatus, sigPreview)

	if err := c.paymentService.HandleNotification(ctx.Context(), &req); err != nil {
		fmt.Printf("[WEBHOOK ERROR] Service handling failed for OrderId=%s: %v\n", req.OrderId, err)
		// Return 500 so Midtrans will retry the notification
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}

	fmt.Printf("[WEBHOOK] Successfully processed OrderId=%s\n", req.OrderId)
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *paymentController) GetSubscription(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	res, err := c.paymentService.GetSubscription(ctx.Context(), tenantId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription status", res))
}

func (c *paymentController) SyncStatus(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	res, err := c.paymentService.SyncPaymentStatus(ctx.Context(), tenantId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription synced", res))
}

func (c *paymentController) RequestCancellation(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	var req dto.RequestCancellationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.paymentService.RequestCancellation(ctx.Context(), tenantId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Cancellation requested", res))
}

func (c *paymentController) CreatePortalSession(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	var req dto.BillingPortalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.paymentService.CreatePortalSession(ctx.Context(), tenantId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Billing portal session created", res))
}
