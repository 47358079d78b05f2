package handlers

import (
	"resonate/internal/app"
	catalogController "resonate/internal/controllers/catalog"
	"resonate/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	Handler
	catalogController catalogController.CatalogControllerInterface
}

func NewCatalogHandler(app app.App, router fiber.Router) *CatalogHandler {
	log := logger.New("handlers").File("catalog_handler")
	return &CatalogHandler{
		catalogController: app.Controllers.Catalog,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *CatalogHandler) Register() {
	tracks := h.router.Group("/tracks")
	tracks.Get("/:id", h.getTrack)
	tracks.Post("", h.createTrack)
	tracks.Put("/:id", h.updateTrack)
	tracks.Delete("/:id", h.deleteTrack)

	albums := h.router.Group("/albums")
	albums.Post("", h.createAlbum)

	h.router.Get("/artists/:id/tracks", h.listArtistTracks)
}

// getTrack returns the track and records a listen for the requesting user.
func (h *CatalogHandler) getTrack(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	trackID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid track ID",
		})
	}

	track, err := h.catalogController.GetTrack(c.UserContext(), user, trackID)
	if err != nil {
		return domainError(c, err, "Failed to get track")
	}

	return c.JSON(fiber.Map{
		"track": track,
	})
}

func (h *CatalogHandler) listArtistTracks(c *fiber.Ctx) error {
	artistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid artist ID",
		})
	}

	tracks, err := h.catalogController.ListTracksByArtist(c.UserContext(), artistID)
	if err != nil {
		return domainError(c, err, "Failed to list tracks")
	}

	return c.JSON(fiber.Map{
		"tracks": tracks,
	})
}

func (h *CatalogHandler) createTrack(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req catalogController.TrackCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	track, err := h.catalogController.CreateTrack(c.UserContext(), user, req)
	if err != nil {
		return domainError(c, err, "Failed to create track")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"track": track,
	})
}

func (h *CatalogHandler) updateTrack(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	trackID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid track ID",
		})
	}

	var req catalogController.TrackUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	track, err := h.catalogController.UpdateTrack(c.UserContext(), user, trackID, req)
	if err != nil {
		return domainError(c, err, "Failed to update track")
	}

	return c.JSON(fiber.Map{
		"track": track,
	})
}

func (h *CatalogHandler) deleteTrack(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	trackID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid track ID",
		})
	}

	if err := h.catalogController.DeleteTrack(c.UserContext(), user, trackID); err != nil {
		return domainError(c, err, "Failed to delete track")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

func (h *CatalogHandler) createAlbum(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req catalogController.AlbumCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	album, err := h.catalogController.CreateAlbum(c.UserContext(), user, req)
	if err != nil {
		return domainError(c, err, "Failed to create album")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"album": album,
	})
}
