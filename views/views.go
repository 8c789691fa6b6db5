// Package views renders the server-side HTML pages from an embedded
// template set.
package views

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/nickmonteleone/blogly/forms"
	"github.com/nickmonteleone/blogly/models"
)

//go:embed templates/*.html
var templateFS embed.FS

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: templates}, nil
}

// Render executes the named template into a buffer first so a template
// error never leaves a half-written page on the wire.
func (re *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := re.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Per-page data contexts.

type UserListData struct {
	Users []*models.User
}

type UserFormData struct {
	Form   forms.UserForm
	Errors []string
}

type UserDetailData struct {
	User *models.User
}

type UserEditData struct {
	User   *models.User
	Form   forms.UserForm
	Errors []string
}

type PostFormData struct {
	User   *models.User
	Form   forms.PostForm
	Errors []string
}

type PostDetailData struct {
	Post *models.Post
}

type PostEditData struct {
	Post   *models.Post
	Form   forms.PostForm
	Errors []string
}

type ErrorData struct {
	Status  int
	Message string
}
