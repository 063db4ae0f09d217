package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"filestore/internal/service"
)

// Status godoc
// @Summary      Backing store liveness
// @Tags         status
// @Produce      json
// @Success      200  {object}  service.Status
// @Router       /status [get]
func Status(svc service.StatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Status(c.UserContext()))
	}
}

// Stats godoc
// @Summary      Record counts
// @Tags         status
// @Produce      json
// @Success      200  {object}  service.Stats
// @Failure      500  {object}  errorPayload
// @Router       /stats [get]
func Stats(svc service.StatusService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeServiceError(c, log, err)
		}
		return c.JSON(st)
	}
}

// LivenessProbe answers 200 while the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
