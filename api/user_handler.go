package api

import (
	"fmt"
	"net/http"

	"github.com/nickmonteleone/blogly/database"
	"github.com/nickmonteleone/blogly/errs"
	"github.com/nickmonteleone/blogly/forms"
	"github.com/nickmonteleone/blogly/models"
	"github.com/nickmonteleone/blogly/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
}

func newUserHandler(userRepo *database.UserRepo, renderer *views.Renderer) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger, renderer),
		logger:    logger,
		userRepo:  userRepo,
	}
}

// redirectHome sends the root path to the user listing.
func (h userHandler) redirectHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.Redirect(w, r, "/users")
	}
}

// listUsers renders all users in id order.
func (h userHandler) listUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.userRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find users", "users", err))
			return
		}

		h.responder.Render(w, http.StatusOK, "user_list.html", views.UserListData{Users: users})
	}
}

// newUserForm renders an empty user creation form.
func (h userHandler) newUserForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.Render(w, http.StatusOK, "user_new.html", views.UserFormData{})
	}
}

// createUser validates the submitted fields and inserts a new user. When
// any field fails validation nothing is persisted; the form is re-rendered
// with every violation surfaced at once.
func (h userHandler) createUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := forms.ParseUserForm(r)

		if messages := form.Validate(); len(messages) > 0 {
			h.responder.Render(w, http.StatusOK, "user_new.html", views.UserFormData{
				Form:   form,
				Errors: messages,
			})
			return
		}

		user := models.User{
			FirstName: form.FirstName,
			LastName:  form.LastName,
			ImageURL:  form.ImageURL,
		}
		if user.ImageURL == "" {
			user.ImageURL = models.DefaultImageURL
		}

		if err := h.userRepo.Add(&user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create user", "user", err))
			return
		}

		h.responder.Redirect(w, r, "/users")
	}
}

// showUser renders a user's detail page with their posts.
func (h userHandler) showUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseID(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}

		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		h.responder.Render(w, http.StatusOK, "user_detail.html", views.UserDetailData{User: user})
	}
}

// editUserForm renders the edit form pre-filled with current values.
func (h userHandler) editUserForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseID(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}

		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		h.responder.Render(w, http.StatusOK, "user_edit.html", views.UserEditData{
			User: user,
			Form: forms.UserForm{
				FirstName: user.FirstName,
				LastName:  user.LastName,
				ImageURL:  user.ImageURL,
			},
		})
	}
}

// updateUser overwrites all three mutable fields wholesale. A failed
// validation skips the write entirely and re-renders the edit form.
func (h userHandler) updateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseID(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}

		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		form := forms.ParseUserForm(r)

		if messages := form.Validate(); len(messages) > 0 {
			h.responder.Render(w, http.StatusOK, "user_edit.html", views.UserEditData{
				User:   user,
				Form:   form,
				Errors: messages,
			})
			return
		}

		user.FirstName = form.FirstName
		user.LastName = form.LastName
		user.ImageURL = form.ImageURL
		if user.ImageURL == "" {
			user.ImageURL = models.DefaultImageURL
		}

		if err := h.userRepo.Update(user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update user", "user", err))
			return
		}

		h.responder.Redirect(w, r, fmt.Sprintf("/users/%d", user.ID))
	}
}

// deleteUser removes the user and every post they own, then returns to the
// listing.
func (h userHandler) deleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseID(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}

		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		if err := h.userRepo.Delete(userID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete user", "user", err))
			return
		}

		h.responder.Redirect(w, r, "/users")
	}
}
