package api

import (
	"time"

	"github.com/nickmonteleone/blogly/database"
	"github.com/nickmonteleone/blogly/views"
)

type routeHandlers struct {
	userHandler   userHandler
	postHandler   postHandler
	healthHandler healthHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, renderer *views.Renderer, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		userHandler:   newUserHandler(database.UserRepo(), renderer),
		postHandler:   newPostHandler(database.PostRepo(), database.UserRepo(), renderer),
		healthHandler: newHealthHandler(database, startupTime),
	}
}
