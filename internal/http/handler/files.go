package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"filestore/internal/http/middleware"
	"filestore/internal/model"
	"filestore/internal/service"
)

// CreateFile godoc
// @Summary      Create a file, image or folder
// @Tags         files
// @Accept       json
// @Produce      json
// @Param        X-Token  header  string           true  "Session token"
// @Param        body     body    model.FileInput  true  "File payload, data is base64"
// @Success      201  {object}  model.FileResponse
// @Failure      400  {object}  errorPayload
// @Failure      401  {object}  errorPayload
// @Router       /files [post]
func CreateFile(svc service.FileService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.FileInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid body")
		}

		resp, err := svc.Create(c.UserContext(), middleware.UserIDFrom(c), in)
		if err != nil {
			return writeServiceError(c, log, err)
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

// ShowFile godoc
// @Summary      File metadata
// @Tags         files
// @Produce      json
// @Param        id       path    string  true   "File id"
// @Param        X-Token  header  string  false  "Session token"
// @Success      200  {object}  model.FileResponse
// @Failure      404  {object}  errorPayload
// @Router       /files/{id} [get]
func ShowFile(svc service.FileService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp, err := svc.Get(c.UserContext(), c.Params("id"), middleware.UserIDFrom(c))
		if err != nil {
			return writeServiceError(c, log, err)
		}
		return c.JSON(resp)
	}
}

// ListFiles godoc
// @Summary      List files under a parent
// @Tags         files
// @Produce      json
// @Param        X-Token   header  string  true   "Session token"
// @Param        parentId  query   string  false  "Parent folder id, 0 for root"
// @Param        page      query   int     false  "Zero-based page of 20"
// @Success      200  {array}   model.FileResponse
// @Failure      401  {object}  errorPayload
// @Router       /files [get]
func ListFiles(svc service.FileService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := strconv.Atoi(c.Query("page", "0"))
		if err != nil {
			page = 0
		}

		items, err := svc.List(c.UserContext(), middleware.UserIDFrom(c), model.ParentID(c.Query("parentId")), page)
		if err != nil {
			return writeServiceError(c, log, err)
		}
		return c.JSON(items)
	}
}

// Publish godoc
// @Summary      Make a file public
// @Tags         files
// @Produce      json
// @Param        id       path    string  true  "File id"
// @Param        X-Token  header  string  true  "Session token"
// @Success      200  {object}  model.FileResponse
// @Failure      401  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /files/{id}/publish [put]
func Publish(svc service.FileService, log *zap.Logger) fiber.Handler {
	return setVisibility(svc, log, true)
}

// Unpublish godoc
// @Summary      Make a file private
// @Tags         files
// @Produce      json
// @Param        id       path    string  true  "File id"
// @Param        X-Token  header  string  true  "Session token"
// @Success      200  {object}  model.FileResponse
// @Failure      401  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /files/{id}/unpublish [put]
func Unpublish(svc service.FileService, log *zap.Logger) fiber.Handler {
	return setVisibility(svc, log, false)
}

func setVisibility(svc service.FileService, log *zap.Logger, public bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp, err := svc.SetVisibility(c.UserContext(), c.Params("id"), middleware.UserIDFrom(c), public)
		if err != nil {
			return writeServiceError(c, log, err)
		}
		return c.JSON(resp)
	}
}

// FileData godoc
// @Summary      File content
// @Tags         files
// @Produce      octet-stream
// @Param        id       path    string  true   "File id"
// @Param        size     query   int     false  "Thumbnail width (500, 250 or 100)"
// @Param        X-Token  header  string  false  "Session token"
// @Success      200
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /files/{id}/data [get]
func FileData(svc service.FileService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := svc.Data(c.UserContext(), c.Params("id"), middleware.UserIDFrom(c), c.Query("size"))
		if err != nil {
			return writeServiceError(c, log, err)
		}
		c.Set(fiber.HeaderContentType, data.ContentType)
		return c.Send(data.Content)
	}
}
