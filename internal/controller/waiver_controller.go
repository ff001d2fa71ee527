package controller

import (
	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/pkg/serverutils"
	"escapedesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWaiverController interface {
	RegisterRoutes(r fiber.Router)
}

type waiverController struct {
	waiverService service.IWaiverService
}

func NewWaiverController(waiverService service.IWaiverService) IWaiverController {
	return &waiverController{
		waiverService: waiverService,
	}
}

func (c *waiverController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/waiver/v1")

	// Public signing routes. The waiver code in the URL is the credential.
	h.Get("sign/:code", c.GetByCode)
	h.Post("sign/:code", c.Sign)

	p := h.Group("", serverutils.JwtMiddleware)
	p.Post("templates", c.CreateTemplate)
	p.Get("templates", c.ListTemplates)
	p.Get("templates/:id", c.GetTemplate)
	p.Put("templates/:id", c.UpdateTemplate)
	p.Delete("templates/:id", c.DeleteTemplate)
	p.Post("templates/:id/duplicate", c.DuplicateTemplate)

	p.Post("submit", c.Submit)
	p.Post("request-signature", c.RequestSignature)
	p.Get("records", c.ListRecords)
	p.Post("records/:code/check-in", c.CheckIn)
	p.Get("records/:id/check-ins", c.ListCheckIns)
}

func (c *waiverController) CreateTemplate(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	var req dto.CreateWaiverTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.waiverService.CreateTemplate(ctx.Context(), tenantId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create waiver template", res))
}

func (c *waiverController) ListTemplates(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	res, err := c.waiverService.ListTemplates(ctx.Context(), tenantId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list waiver templates", res))
}

func (c *waiverController) GetTemplate(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	templateId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.waiverService.GetTemplate(ctx.Context(), tenantId, templateId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get waiver template", res))
}

func (c *waiverController) UpdateTemplate(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	templateId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdateWaiverTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.waiverService.UpdateTemplate(ctx.Context(), tenantId, templateId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update waiver template", res))
}

func (c *waiverController) DeleteTemplate(ctx *fiber.Ctx) error {
	if err := requireConfirmation(ctx); err != nil {
		return err
	}
	tenantId := tenantIdFromLocals(ctx)
	templateId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.waiverService.DeleteTemplate(ctx.Context(), tenantId, templateId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete waiver template", nil))
}

func (c *waiverController) DuplicateTemplate(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	templateId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.waiverService.DuplicateTemplate(ctx.Context(), tenantId, templateId)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success duplicate waiver template", res))
}

func (c *waiverController) Submit(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	var req dto.SubmitWaiverRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.waiverService.SubmitWaiver(ctx.Context(), tenantId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success submit waiver", res))
}

func (c *waiverController) RequestSignature(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	var req dto.RequestSignatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.waiverService.RequestSignature(ctx.Context(), tenantId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success request signature", res))
}

func (c *waiverController) GetByCode(ctx *fiber.Ctx) error {
	res, err := c.waiverService.FindByCode(ctx.Context(), ctx.Params("code"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get waiver", res))
}

func (c *waiverController) Sign(ctx *fiber.Ctx) error {
	var req dto.SignWaiverRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.waiverService.SignWaiver(ctx.Context(), ctx.Params("code"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success sign waiver", res))
}

func (c *waiverController) ListRecords(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	var req dto.ListWaiverRecordsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.waiverService.ListRecords(ctx.Context(), tenantId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list waiver records", res))
}

func (c *waiverController) CheckIn(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	staffId := staffIdFromLocals(ctx)

	res, err := c.waiverService.CheckIn(ctx.Context(), tenantId, ctx.Params("code"), staffId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success check in waiver", res))
}

func (c *waiverController) ListCheckIns(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	recordId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.waiverService.ListCheckIns(ctx.Context(), tenantId, recordId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list check-ins", res))
}
