package controller

import (
	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/pkg/serverutils"
	"escapedesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMediaController interface {
	RegisterRoutes(r fiber.Router)
}

type mediaController struct {
	mediaService service.IMediaService
}

func NewMediaController(mediaService service.IMediaService) IMediaController {
	return &mediaController{
		mediaService: mediaService,
	}
}

func (c *mediaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/media/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Upload)
	h.Get("", c.List)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *mediaController) Upload(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	staffId := staffIdFromLocals(ctx)

	file, err := ctx.FormFile("file")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var activityId *uuid.UUID
	if v := ctx.FormValue("activity_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.ErrBadRequest
		}
		activityId = &id
	}

	res, err := c.mediaService.Upload(ctx.Context(), tenantId, staffId, file, activityId)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upload media", res))
}

func (c *mediaController) List(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)

	var activityId *uuid.UUID
	if v := ctx.Query("activity_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.ErrBadRequest
		}
		activityId = &id
	}

	res, err := c.mediaService.List(ctx.Context(), tenantId, activityId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list media", res))
}

func (c *mediaController) Update(ctx *fiber.Ctx) error {
	tenantId := tenantIdFromLocals(ctx)
	assetId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdateMediaAssetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.mediaService.Update(ctx.Context(), tenantId, assetId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update media", res))
}

func (c *mediaController) Delete(ctx *fiber.Ctx) error {
	if err := requireConfirmation(ctx); err != nil {
		return err
	}
	tenantId := tenantIdFromLocals(ctx)
	assetId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.mediaService.Delete(ctx.Context(), tenantId, assetId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete media", nil))
}
