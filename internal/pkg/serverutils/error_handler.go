package serverutils

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"escapedesk-be/internal/pkg/apperrors"
)

// ErrorHandlerMiddleware converts errors escaping controllers into the
// standard envelope. Business failures keep their message; upstream causes
// are logged and replaced with a generic one.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			status := statusForKind(appErr.Kind)
			message := appErr.Message
			if appErr.Kind == apperrors.KindUpstream {
				log.Printf("[ERROR] upstream failure: %v", appErr)
				message = "upstream service unavailable, please try again"
			}
			return ctx.Status(status).JSON(ErrorResponse(status, message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Printf("[ERROR] unhandled: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindWindowExpired:
		return fiber.StatusUnprocessableEntity
	case apperrors.KindValidation:
		return fiber.StatusBadRequest
	case apperrors.KindConflict:
		return fiber.StatusConflict
	case apperrors.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperrors.KindUpstream:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
