package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nickmonteleone/blogly/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	logger      zerolog.Logger
	database    database.Database
	startupTime time.Time
}

func newHealthHandler(database database.Database, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		logger:      logger,
		database:    database,
		startupTime: startupTime,
	}
}

// check reports whether the server and its datastore are reachable.
func (h healthHandler) check() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.database.Ping(); err != nil {
			h.logger.Error().Err(err).Msg("health check failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintln(w, "database unavailable")
			return
		}

		fmt.Fprintf(w, "ok, up %s\n", time.Since(h.startupTime).Round(time.Second))
	}
}
