package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// every route passes through the authorization filter; the access
	// policy decides which of them require a token or a role
	router.Use(h.authorize)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Route("/videojuegos", func(r chi.Router) {
		r.Get("/", h.getAllGames)
		r.Get("/{id}", h.getGameByID)
		r.Post("/", h.createGame)
		r.Put("/{id}", h.updateGame)
		r.Delete("/{id}", h.deleteGame)
	})

	router.Route("/generos", func(r chi.Router) {
		r.Get("/", h.getAllGenres)
		r.Get("/{id}", h.getGenreByID)
		r.Post("/", h.createGenre)
		r.Put("/{id}", h.updateGenre)
		r.Delete("/{id}", h.deleteGenre)
	})

	router.Route("/desarrolladores", func(r chi.Router) {
		r.Get("/", h.getAllDevelopers)
		r.Get("/{id}", h.getDeveloperByID)
		r.Post("/", h.createDeveloper)
		r.Put("/{id}", h.updateDeveloper)
		r.Delete("/{id}", h.deleteDeveloper)
	})

	router.Route("/valoraciones", func(r chi.Router) {
		r.Get("/videojuego/{id}", h.getRatingsByGame)
		r.Post("/", h.createRating)
	})

	router.Route("/usuarios", func(r chi.Router) {
		r.Get("/", h.getAllUsers)
		r.Get("/{id}", h.getUserByID)
		r.Post("/", h.createUser)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})

	return router
}
