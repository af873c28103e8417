package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/zodyking/textnow-gateway/internal/constants"
	"github.com/zodyking/textnow-gateway/internal/service"
	"github.com/zodyking/textnow-gateway/pkg/textnow"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"code":    constants.ErrCodeInternalError,
				"message": fiberErr.Message,
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":    constants.ErrCodeInternalError,
			"message": constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	errorCode := err.Code

	status := constants.GetHTTPStatus(errorCode)
	if status == 500 && err.Code != constants.ErrCodeInternalError {
		errorCode = constants.ErrCodeInternalError
	}

	// When the messaging provider answered with a concrete status, relay it
	// instead of the generic upstream one.
	if errorCode == constants.ErrCodeUpstream {
		var upstreamErr *textnow.UpstreamError
		if errors.As(err.Cause, &upstreamErr) && upstreamErr.Status > 0 {
			status = upstreamErr.Status
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"code":    errorCode,
		"message": constants.GetErrorMessage(errorCode),
	})
}
