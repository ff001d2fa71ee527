package controller

import (
	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/pkg/serverutils"
	"escapedesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICreditController interface {
	RegisterRoutes(r fiber.Router)
	Balance(ctx *fiber.Ctx) error
	Transactions(ctx *fiber.Ctx) error
	Packages(ctx *fiber.Ctx) error
	Adjust(ctx *fiber.Ctx) error
	VerifyLedger(ctx *fiber.Ctx) error
}

type creditController struct {
	creditService service.ICreditService
}

func NewCreditController(creditService service.ICreditService) ICreditController {
	return &creditController{
		creditService: creditService,
	}
}

func (c *creditController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/credit/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("balance", c.Balance)
	h.Get("transactions", c.Transactions)
	h.Get("packages", c.Packages)
	h.Post("adjust", c.Adjust)
	h.Get("verify", c.VerifyLedger)
}

func (c *creditController) Balance(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	res, err := c.creditService.GetBalance(ctx.Context(), tenantId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get balance", res))
}

func (c *creditController) Transactions(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)

	res, err := c.creditService.ListTransactions(ctx.Context(), tenantId, page, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list transactions", res))
}

func (c *creditController) Packages(ctx *fiber.Ctx) error {
	res, err := c.creditService.ListPackages(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list packages", res))
}

func (c *creditController) Adjust(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	var req dto.AdjustCreditsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.creditService.Adjust(ctx.Context(), tenantId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success adjust credits", res))
}

func (c *creditController) VerifyLedger(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	res, err := c.creditService.VerifyLedger(ctx.Context(), tenantId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success verify ledger", res))
}
