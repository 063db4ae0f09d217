package handler

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"filestore/internal/auth"
	"filestore/internal/http/middleware"
	"filestore/internal/service"
)

const (
	msgUnauthorized = "Unauthorized"
	msgNotFound     = "Not found"
	msgInternal     = "Internal server error"
)

// errorPayload is the body of every error response.
type errorPayload struct {
	Error string `json:"error"`
}

func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Error: message})
}

// writeServiceError translates a service error into its status and message.
// Unknown errors are logged and answered with a generic 500.
func writeServiceError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var verr *service.ValidationError
	var serr *service.StorageError

	switch {
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, auth.ErrUnauthenticated):
		return writeError(c, fiber.StatusUnauthorized, msgUnauthorized)
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, msgNotFound)
	case errors.Is(err, service.ErrFolderContent):
		return writeError(c, fiber.StatusBadRequest, "A folder doesn't have content")
	case errors.As(err, &verr):
		return writeError(c, fiber.StatusBadRequest, verr.Message)
	case errors.As(err, &serr):
		return writeError(c, fiber.StatusBadRequest, serr.Error())
	default:
		log.Error("request failed",
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.Error(err),
		)
		return writeError(c, fiber.StatusInternalServerError, msgInternal)
	}
}

// ErrorHandler returns a Fiber global error handler that answers with the
// {"error": ...} body for errors that escape handlers and middleware.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			return writeServiceError(c, log, err)
		}

		switch fe.Code {
		case fiber.StatusUnauthorized:
			return writeError(c, fe.Code, msgUnauthorized)
		case fiber.StatusNotFound:
			return writeError(c, fe.Code, msgNotFound)
		case fiber.StatusInternalServerError:
			log.Error("request failed", zap.String("request_id", middleware.RequestIDFrom(c)), zap.Error(err))
			return writeError(c, fe.Code, msgInternal)
		default:
			return writeError(c, fe.Code, http.StatusText(fe.Code))
		}
	}
}
