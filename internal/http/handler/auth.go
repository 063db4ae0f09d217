package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"filestore/internal/auth"
	"filestore/internal/http/middleware"
	"filestore/internal/service"
)

type tokenResponse struct {
	Token string `json:"token"`
}

// Connect godoc
// @Summary      Open a session
// @Description  Exchanges a Basic credential for a session token.
// @Tags         auth
// @Produce      json
// @Param        Authorization  header  string  true  "Basic base64(email:password)"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  errorPayload
// @Router       /connect [get]
func Connect(svc service.AuthService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := svc.Connect(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return writeServiceError(c, log, err)
		}
		return c.JSON(tokenResponse{Token: token})
	}
}

// Disconnect godoc
// @Summary      Close a session
// @Tags         auth
// @Param        X-Token  header  string  true  "Session token"
// @Success      204
// @Failure      401  {object}  errorPayload
// @Router       /disconnect [get]
func Disconnect(svc service.AuthService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Disconnect(c.UserContext(), c.Get(auth.TokenHeader)); err != nil {
			return writeServiceError(c, log, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// Me godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Param        X-Token  header  string  true  "Session token"
// @Success      200  {object}  model.UserResponse
// @Failure      401  {object}  errorPayload
// @Router       /users/me [get]
func Me(svc service.AuthService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		me, err := svc.Me(c.UserContext(), middleware.UserIDFrom(c))
		if err != nil {
			return writeServiceError(c, log, err)
		}
		return c.JSON(me)
	}
}
