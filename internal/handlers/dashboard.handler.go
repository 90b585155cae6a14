package handlers

import (
	"strings"

	"postbox/internal/app"
	dashboardController "postbox/internal/controllers/dashboard"
	"postbox/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Handler
	dashboardController dashboardController.DashboardControllerInterface
}

func NewDashboardHandler(app app.App, router fiber.Router) *DashboardHandler {
	log := logger.New("handlers").File("dashboard_handler")
	return &DashboardHandler{
		dashboardController: app.Controllers.Dashboard,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *DashboardHandler) Register() {
	h.router.Get("/dashboard", h.getOverview)
}

func (h *DashboardHandler) getOverview(c *fiber.Ctx) error {
	overview, err := h.dashboardController.GetOverview(c.UserContext(), c.Query("jurisdiction"))
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "unknown") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": errMsg,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get dashboard overview",
		})
	}

	return c.JSON(overview)
}
