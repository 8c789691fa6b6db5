// Package forms parses and validates the flat form submissions the route
// handlers accept. Every required text field follows the same rule: the
// value must be non-empty after stripping leading and trailing whitespace.
// Violations are collected per field, never one at a time; a submission
// with any violation is not persisted at all.
package forms

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// "required" treats "   " as present, so register a trimmed variant.
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// UserForm holds the fields submitted by the new-user and edit-user forms.
// The image URL is accepted as submitted with no format validation.
type UserForm struct {
	FirstName string `validate:"notblank" invalid:"Invalid first name."`
	LastName  string `validate:"notblank" invalid:"Invalid last name."`
	ImageURL  string
}

// PostForm holds the fields submitted by the new-post and edit-post forms.
type PostForm struct {
	Title   string `validate:"notblank" invalid:"Invalid title."`
	Content string `validate:"notblank" invalid:"Invalid content."`
}

// ParseUserForm reads the user form fields from a request body.
func ParseUserForm(r *http.Request) UserForm {
	return UserForm{
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		ImageURL:  r.PostFormValue("image_url"),
	}
}

// ParsePostForm reads the post form fields from a request body.
func ParsePostForm(r *http.Request) PostForm {
	return PostForm{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}
}

func (f UserForm) Validate() []string { return check(f) }

func (f PostForm) Validate() []string { return check(f) }

// check runs the validator and maps each violated field to its
// human-readable message from the struct's `invalid` tag, preserving field
// declaration order.
func check(form any) []string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid submission."}
	}

	violated := make(map[string]bool, len(violations))
	for _, fieldErr := range violations {
		violated[fieldErr.StructField()] = true
	}

	formType := reflect.TypeOf(form)
	var messages []string
	for i := 0; i < formType.NumField(); i++ {
		field := formType.Field(i)
		if violated[field.Name] {
			if msg := field.Tag.Get("invalid"); msg != "" {
				messages = append(messages, msg)
			}
		}
	}
	return messages
}
