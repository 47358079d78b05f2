package handlers

import (
	"errors"

	"resonate/internal/app"
	"resonate/internal/handlers/middleware"
	. "resonate/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) error {
	router.Use(app.Middleware.TraceID())

	HealthHandler(router, app.Config)

	api := router.Group("/api")
	NewAuthHandler(*app, api).Register()

	// Everything past this point needs a valid token.
	api.Use(app.Middleware.RequireAuth())
	NewCatalogHandler(*app, api).Register()
	NewPlaylistHandler(*app, api).Register()
	NewRecommendationHandler(*app, api).Register()
	NewAdminHandler(*app, api).Register()

	return nil
}

// domainError maps the shared domain sentinels onto HTTP responses. Handlers
// fall back to a 500 with their own message for anything unmapped.
func domainError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	case errors.Is(err, ErrNotAnArtist):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User is not an artist",
		})
	case errors.Is(err, ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden",
		})
	case errors.Is(err, ErrDuplicateTrack):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Track already in playlist",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fallback,
	})
}
