package handlers

import (
	"strings"

	"postbox/internal/app"
	cleaningController "postbox/internal/controllers/cleaning"
	"postbox/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type CleaningHandler struct {
	Handler
	cleaningController cleaningController.CleaningControllerInterface
}

func NewCleaningHandler(app app.App, router fiber.Router) *CleaningHandler {
	log := logger.New("handlers").File("cleaning_handler")
	return &CleaningHandler{
		cleaningController: app.Controllers.Cleaning,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *CleaningHandler) Register() {
	cleaning := h.router.Group("/cleaning")
	cleaning.Post("", h.logCleaning)
}

// logCleaning records one cleaning event. Submissions from the record form
// must carry both photos; the JSON API path accepts records without them.
func (h *CleaningHandler) logCleaning(c *fiber.Ctx) error {
	var req cleaningController.LogCleaningRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	req.RequireBothImages = c.Get("X-Require-Images") != "" || c.QueryBool("requireImages")

	record, err := h.cleaningController.LogCleaning(c.UserContext(), &req)
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": errMsg,
			})
		}
		if strings.Contains(errMsg, "required") ||
			strings.Contains(errMsg, "invalid") ||
			strings.Contains(errMsg, "cannot be") ||
			strings.Contains(errMsg, "exceed") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": errMsg,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to log cleaning",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}
