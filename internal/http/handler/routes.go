package handler

import (
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"filestore/docs"
	"filestore/internal/http/middleware"
	"filestore/internal/service"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Files    service.FileService
	Auth     service.AuthService
	Status   service.StatusService
	Resolver middleware.IdentityResolver
	Metrics  *middleware.PrometheusMiddleware
	Gatherer prometheus.Gatherer
	Log      *zap.Logger
}

// NewApp builds the Fiber app with the global error handler, the middleware
// chain and every route.
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "filestore",
		ErrorHandler:          ErrorHandler(d.Log),
		DisableStartupMessage: true,
		BodyLimit:             64 * 1024 * 1024,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(d.Log))
	if d.Metrics != nil {
		app.Use(d.Metrics.Handler())
	}

	RegisterRoutes(app, d)
	return app
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}
	app.Get("/swagger/*", swaggerUI)
	app.Get("/healthz", LivenessProbe())

	app.Get("/status", Status(d.Status))
	app.Get("/stats", Stats(d.Status, d.Log))

	app.Get("/connect", Connect(d.Auth, d.Log))
	app.Get("/disconnect", Disconnect(d.Auth, d.Log))
	app.Get("/users/me", middleware.RequireIdentity(d.Resolver), Me(d.Auth, d.Log))

	required := middleware.RequireIdentity(d.Resolver)
	optional := middleware.OptionalIdentity(d.Resolver)

	app.Post("/files", required, CreateFile(d.Files, d.Log))
	app.Get("/files", required, ListFiles(d.Files, d.Log))
	app.Get("/files/:id", optional, ShowFile(d.Files, d.Log))
	app.Put("/files/:id/publish", required, Publish(d.Files, d.Log))
	app.Put("/files/:id/unpublish", required, Unpublish(d.Files, d.Log))
	app.Get("/files/:id/data", optional, FileData(d.Files, d.Log))
}

// swaggerUI serves the API docs with the host and scheme the client used.
func swaggerUI(c *fiber.Ctx) error {
	scheme := c.Protocol()
	if proto := c.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.Split(proto, ",")[0]
	}

	docs.SwaggerInfo.Host = c.Get("Host")
	docs.SwaggerInfo.Schemes = []string{scheme}

	return swagger.HandlerDefault(c)
}
