package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Reference *ReferenceHandler
	Batch     *BatchHandler
	Result    *ResultHandler
}

func RegisterRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/reference", h.Reference.HandleUpload)
	api.Post("/batches", h.Batch.HandleCreate)
	api.Get("/batches/:id", h.Result.HandleGetBatch)
	api.Get("/batches/:id/export/:filetype", h.Result.HandleExport)
	api.Get("/resumes/:filename", h.Result.HandleViewResume)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Matcher API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/reference",
				"POST /api/v1/batches",
				"GET /api/v1/batches/:id",
				"GET /api/v1/batches/:id/export/:filetype",
				"GET /api/v1/resumes/:filename",
			},
		})
	})
}

// ErrorHandler renders unhandled errors as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
