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

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	postRepo  *database.PostRepo
	userRepo  *database.UserRepo
}

func newPostHandler(postRepo *database.PostRepo, userRepo *database.UserRepo, renderer *views.Renderer) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger, renderer),
		logger:    logger,
		postRepo:  postRepo,
		userRepo:  userRepo,
	}
}

// newPostForm renders an empty post form scoped to an existing user.
func (h postHandler) newPostForm() http.HandlerFunc {
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

		h.responder.Render(w, http.StatusOK, "post_new.html", views.PostFormData{User: user})
	}
}

// createPost validates the submitted fields and inserts a post owned by the
// user in the path. The creation timestamp is assigned by the repository at
// insert time. A failed validation persists nothing.
func (h postHandler) createPost() http.HandlerFunc {
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

		form := forms.ParsePostForm(r)

		if messages := form.Validate(); len(messages) > 0 {
			h.responder.Render(w, http.StatusOK, "post_new.html", views.PostFormData{
				User:   user,
				Form:   form,
				Errors: messages,
			})
			return
		}

		post := models.Post{
			Title:   form.Title,
			Content: form.Content,
			UserID:  user.ID,
		}

		if err := h.postRepo.Add(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create post", "post", err))
			return
		}

		h.responder.Redirect(w, r, fmt.Sprintf("/users/%d", user.ID))
	}
}

// showPost renders a post's detail page with its author and tags.
func (h postHandler) showPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseID(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}

		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		h.responder.Render(w, http.StatusOK, "post_detail.html", views.PostDetailData{Post: post})
	}
}

// editPostForm renders the edit form pre-filled with current values.
func (h postHandler) editPostForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseID(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}

		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		h.responder.Render(w, http.StatusOK, "post_edit.html", views.PostEditData{
			Post: post,
			Form: forms.PostForm{
				Title:   post.Title,
				Content: post.Content,
			},
		})
	}
}

// updatePost overwrites title and content; the timestamp and owner are
// immutable. A failed validation skips the write and re-renders the form.
func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseID(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}

		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		form := forms.ParsePostForm(r)

		if messages := form.Validate(); len(messages) > 0 {
			h.responder.Render(w, http.StatusOK, "post_edit.html", views.PostEditData{
				Post:   post,
				Form:   form,
				Errors: messages,
			})
			return
		}

		post.Title = form.Title
		post.Content = form.Content

		if err := h.postRepo.Update(post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update post", "post", err))
			return
		}

		h.responder.Redirect(w, r, fmt.Sprintf("/posts/%d", post.ID))
	}
}

// deletePost removes the post and returns to its owner's detail page. The
// owning user id is captured before the row disappears.
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseID(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}

		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		ownerID := post.UserID

		if err := h.postRepo.Delete(postID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete post", "post", err))
			return
		}

		h.responder.Redirect(w, r, fmt.Sprintf("/users/%d", ownerID))
	}
}
