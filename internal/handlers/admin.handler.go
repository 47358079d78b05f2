package handlers

import (
	"resonate/internal/app"
	adminController "resonate/internal/controllers/admin"
	"resonate/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Handler
	adminController adminController.AdminControllerInterface
}

func NewAdminHandler(app app.App, router fiber.Router) *AdminHandler {
	log := logger.New("handlers").File("admin_handler")
	return &AdminHandler{
		adminController: app.Controllers.Admin,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AdminHandler) Register() {
	admin := h.router.Group("/admin", h.middleware.RequireAdmin())
	admin.Post("/statistics/weekly", h.runWeeklyStatistics)
	admin.Get("/statistics/weekly", h.getWeeklyStatistics)
}

func (h *AdminHandler) runWeeklyStatistics(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	result, err := h.adminController.RunWeeklyStatistics(c.UserContext(), user)
	if err != nil {
		return domainError(c, err, "Failed to run weekly statistics")
	}

	return c.JSON(result)
}

func (h *AdminHandler) getWeeklyStatistics(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	stats, err := h.adminController.GetWeeklyStatistics(c.UserContext(), user)
	if err != nil {
		return domainError(c, err, "Failed to get weekly statistics")
	}

	return c.JSON(fiber.Map{
		"statistics": stats,
	})
}
