package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"varanex_backend/models"
	"varanex_backend/pkg/apperror"
	"varanex_backend/pkg/logging"
)

// NotFound answers every request no route matched.
func NotFound(c *fiber.Ctx) error {
	return apperror.NotFound()
}

// NewErrorHandler renders every error returned by a handler or middleware as
// a JSON ErrorResponse. development adds the failure text to unhandled errors.
func NewErrorHandler(development bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code == fiber.StatusNotFound {
			err = apperror.NotFound()
		}

		status, msg := apperror.Status(err)
		body := models.ErrorResponse{Error: msg}
		if apperror.KindOf(err) == apperror.KindUnhandled {
			logging.Logger.Error("unexpected error", "method", c.Method(), "path", c.Path(), "error", err)
			if development {
				body.Message = err.Error()
			}
		}
		return c.Status(status).JSON(body)
	}
}
