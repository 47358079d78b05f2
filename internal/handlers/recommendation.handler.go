package handlers

import (
	"resonate/internal/app"
	recommendationController "resonate/internal/controllers/recommendation"
	"resonate/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	Handler
	recommendationController recommendationController.RecommendationControllerInterface
}

func NewRecommendationHandler(app app.App, router fiber.Router) *RecommendationHandler {
	log := logger.New("handlers").File("recommendation_handler")
	return &RecommendationHandler{
		recommendationController: app.Controllers.Recommendation,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RecommendationHandler) Register() {
	recommendations := h.router.Group("/recommendations")
	recommendations.Post("/playlists", h.generatePlaylists)
	recommendations.Get("/affinity", h.genreAffinity)

	artists := h.router.Group("/artists")
	artists.Get("/:id/profile", h.artistProfile)
	artists.Get("/:id/similar", h.similarArtists)
}

func (h *RecommendationHandler) generatePlaylists(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	playlists, err := h.recommendationController.GeneratePlaylists(c.UserContext(), user)
	if err != nil {
		return domainError(c, err, "Failed to generate playlists")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"playlists": playlists,
	})
}

func (h *RecommendationHandler) genreAffinity(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	affinity, err := h.recommendationController.GetGenreAffinity(c.UserContext(), user)
	if err != nil {
		return domainError(c, err, "Failed to compute genre affinity")
	}

	return c.JSON(fiber.Map{
		"genres": affinity,
	})
}

func (h *RecommendationHandler) artistProfile(c *fiber.Ctx) error {
	artistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid artist ID",
		})
	}

	profile, err := h.recommendationController.GetArtistProfile(c.UserContext(), artistID)
	if err != nil {
		return domainError(c, err, "Failed to get artist profile")
	}

	return c.JSON(profile)
}

func (h *RecommendationHandler) similarArtists(c *fiber.Ctx) error {
	artistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid artist ID",
		})
	}

	similar, err := h.recommendationController.GetSimilarArtists(c.UserContext(), artistID)
	if err != nil {
		return domainError(c, err, "Failed to get similar artists")
	}

	return c.JSON(fiber.Map{
		"similarArtists": similar,
	})
}
