package api

import (
	"errors"
	"net/http"

	"github.com/nickmonteleone/blogly/errs"
	"github.com/nickmonteleone/blogly/views"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger   zerolog.Logger
	renderer *views.Renderer
}

func NewResponder(logger zerolog.Logger, renderer *views.Renderer) Responder {
	return Responder{logger, renderer}
}

// Render writes the named page. A template failure at this point means the
// response is still clean, so fall back to a plain 500.
func (r Responder) Render(w http.ResponseWriter, status int, name string, data any) {
	if err := r.renderer.Render(w, status, name, data); err != nil {
		r.logger.Error().Err(err).Str("template", name).Msg("error rendering template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Redirect sends the client to a read view after a successful write,
// preventing duplicate resubmission.
func (r Responder) Redirect(w http.ResponseWriter, req *http.Request, url string) {
	http.Redirect(w, req, url, http.StatusFound)
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return a generic internal error page
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.Render(w, http.StatusInternalServerError, "error.html", views.ErrorData{
			Status:  http.StatusInternalServerError,
			Message: "An unexpected error occurred",
		})
		return
	}

	if apiErr.Cause != nil {
		r.logger.Error().Str("cause", apiErr.GetFullError()).Msg(apiErr.Error())
	}

	if apiErr.StatusCode == http.StatusNotFound {
		r.Render(w, http.StatusNotFound, "not_found.html", views.ErrorData{
			Status:  http.StatusNotFound,
			Message: apiErr.Error(),
		})
		return
	}

	r.Render(w, apiErr.StatusCode, "error.html", views.ErrorData{
		Status:  apiErr.StatusCode,
		Message: apiErr.Error(),
	})
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
