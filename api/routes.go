package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the browser-facing route table. Writes are plain form
// POSTs followed by a redirect to a read view.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/", handlers.userHandler.redirectHome())

		// User endpoints
		r.Get("/users", handlers.userHandler.listUsers())
		r.Get("/users/new", handlers.userHandler.newUserForm())
		r.Post("/users/new", handlers.userHandler.createUser())
		r.Get("/users/{userID}", handlers.userHandler.showUser())
		r.Get("/users/{userID}/edit", handlers.userHandler.editUserForm())
		r.Post("/users/{userID}/edit", handlers.userHandler.updateUser())
		r.Post("/users/{userID}/delete", handlers.userHandler.deleteUser())

		// Post endpoints
		r.Get("/users/{userID}/posts/new", handlers.postHandler.newPostForm())
		r.Post("/users/{userID}/posts/new", handlers.postHandler.createPost())
		r.Get("/posts/{postID}", handlers.postHandler.showPost())
		r.Get("/posts/{postID}/edit", handlers.postHandler.editPostForm())
		r.Post("/posts/{postID}/edit", handlers.postHandler.updatePost())
		r.Post("/posts/{postID}/delete", handlers.postHandler.deletePost())
	})

	r.Get("/healthz", handlers.healthHandler.check())
}
