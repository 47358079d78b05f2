package controllers

import (
	"resonate/config"
	"resonate/internal/database"
	"resonate/internal/repositories"
	"resonate/internal/services"

	adminController "resonate/internal/controllers/admin"
	authController "resonate/internal/controllers/auth"
	catalogController "resonate/internal/controllers/catalog"
	playlistController "resonate/internal/controllers/playlists"
	recommendationController "resonate/internal/controllers/recommendation"
)

type Controllers struct {
	Auth           authController.AuthControllerInterface
	Catalog        catalogController.CatalogControllerInterface
	Playlist       playlistController.PlaylistControllerInterface
	Recommendation recommendationController.RecommendationControllerInterface
	Admin          adminController.AdminControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	config config.Config,
	db database.DB,
) Controllers {
	return Controllers{
		Auth:           authController.New(repos, config, db.SQL),
		Catalog:        catalogController.New(repos, services, db.SQL),
		Playlist:       playlistController.New(repos, services, db.SQL),
		Recommendation: recommendationController.New(services),
		Admin:          adminController.New(services),
	}
}
