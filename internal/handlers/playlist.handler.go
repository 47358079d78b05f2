package handlers

import (
	"resonate/internal/app"
	playlistController "resonate/internal/controllers/playlists"
	"resonate/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PlaylistHandler struct {
	Handler
	playlistController playlistController.PlaylistControllerInterface
}

func NewPlaylistHandler(app app.App, router fiber.Router) *PlaylistHandler {
	log := logger.New("handlers").File("playlist_handler")
	return &PlaylistHandler{
		playlistController: app.Controllers.Playlist,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *PlaylistHandler) Register() {
	playlists := h.router.Group("/playlists")
	playlists.Get("", h.listPlaylists)
	playlists.Post("", h.createPlaylist)
	playlists.Get("/:id", h.getPlaylist)
	playlists.Post("/:id/tracks", h.addTrack)
	playlists.Delete("/:id/tracks/:trackId", h.removeTrack)
}

func (h *PlaylistHandler) listPlaylists(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	playlists, err := h.playlistController.ListPlaylists(c.UserContext(), user)
	if err != nil {
		return domainError(c, err, "Failed to list playlists")
	}

	return c.JSON(fiber.Map{
		"playlists": playlists,
	})
}

func (h *PlaylistHandler) createPlaylist(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req playlistController.PlaylistCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Playlist name is required",
		})
	}

	playlist, err := h.playlistController.CreatePlaylist(c.UserContext(), user, req)
	if err != nil {
		return domainError(c, err, "Failed to create playlist")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"playlist": playlist,
	})
}

func (h *PlaylistHandler) getPlaylist(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	playlistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid playlist ID",
		})
	}

	detail, err := h.playlistController.GetPlaylist(c.UserContext(), user, playlistID)
	if err != nil {
		return domainError(c, err, "Failed to get playlist")
	}

	return c.JSON(detail)
}

type addTrackRequest struct {
	TrackID uuid.UUID `json:"trackId"`
}

func (h *PlaylistHandler) addTrack(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	playlistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid playlist ID",
		})
	}

	var req addTrackRequest
	if err := c.BodyParser(&req); err != nil || req.TrackID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.playlistController.AddTrack(c.UserContext(), user, playlistID, req.TrackID); err != nil {
		return domainError(c, err, "Failed to add track")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Track added",
	})
}

func (h *PlaylistHandler) removeTrack(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	playlistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid playlist ID",
		})
	}

	trackID, err := uuid.Parse(c.Params("trackId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid track ID",
		})
	}

	if err := h.playlistController.RemoveTrack(c.UserContext(), user, playlistID, trackID); err != nil {
		return domainError(c, err, "Failed to remove track")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
