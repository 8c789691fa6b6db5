package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nickmonteleone/blogly/errs"
)

// parseID reads an integer id from a URL parameter. A non-integer value
// gets the same treatment as an unknown id: not found.
func parseID(r *http.Request, key string) (uint, error) {
	raw := chi.URLParam(r, key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errs.NewNotFoundError(fmt.Sprintf("no such %s", key))
	}
	return uint(id), nil
}
