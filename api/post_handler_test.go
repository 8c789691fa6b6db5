package api

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowNewPostForm(t *testing.T) {
	router, currentDB := newTestRouter(t)
	user := seedTestUser(t, currentDB)

	resp := doGet(router, fmt.Sprintf("/users/%d/posts/new", user.ID))

	require.Equal(t, http.StatusOK, resp.Code)
	html := resp.Body.String()
	assert.Contains(t, html, user.FirstName)
	assert.Contains(t, html, fmt.Sprintf(`action="/users/%d/posts/new"`, user.ID))
}

func TestShowNewPostFormUnknownUser(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := doGet(router, "/users/9999999/posts/new")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreatePost(t *testing.T) {
	router, currentDB := newTestRouter(t)
	user := seedTestUser(t, currentDB)

	resp := doPostForm(router, fmt.Sprintf("/users/%d/posts/new", user.ID), url.Values{
		"title":   {"new post test"},
		"content": {"new new new new!"},
	})

	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, fmt.Sprintf("/users/%d", user.ID), resp.Header().Get("Location"))

	detail := doGet(router, fmt.Sprintf("/users/%d", user.ID))
	assert.Contains(t, detail.Body.String(), "new post test")
}

func TestCreatePostUnknownUser(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := doPostForm(router, "/users/9999999/posts/new", url.Values{
		"title":   {"new post test"},
		"content": {"new new new new!"},
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreatePostBlankSubmissionPersistsNothing(t *testing.T) {
	router, currentDB := newTestRouter(t)
	user := seedTestUser(t, currentDB)

	resp := doPostForm(router, fmt.Sprintf("/users/%d/posts/new", user.ID), url.Values{
		"title":   {"   "},
		"content": {""},
	})

	require.Equal(t, http.StatusOK, resp.Code)
	html := resp.Body.String()
	assert.Contains(t, html, "Invalid title.")
	assert.Contains(t, html, "Invalid content.")

	posts, err := currentDB.PostRepo().FindAll()
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestShowPost(t *testing.T) {
	router, currentDB := newTestRouter(t)
	user := seedTestUser(t, currentDB)
	post := seedTestPost(t, currentDB, user.ID)

	resp := doGet(router, fmt.Sprintf("/posts/%d", post.ID))

	require.Equal(t, http.StatusOK, resp.Code)
	html := resp.Body.String()
	assert.Contains(t, html, post.Title)
	assert.Contains(t, html, post.Content)
	assert.Contains(t, html, user.FirstName)
	assert.Contains(t, html, user.LastName)
}

func TestPostRoutesUnknownID(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/posts/9999999", "/posts/9999999/edit"} {
		resp := doGet(router, path)
		assert.Equal(t, http.StatusNotFound, resp.Code, path)
	}

	form := url.Values{
		"title":   {"x"},
		"content": {"y"},
	}
	for _, path := range []string{"/posts/9999999/edit", "/posts/9999999/delete"} {
		resp := doPostForm(router, path, form)
		assert.Equal(t, http.StatusNotFound, resp.Code, path)
	}
}

func TestShowPostEditForm(t *testing.T) {
	router, currentDB := newTestRouter(t)
	user := seedTestUser(t, currentDB)
	post := seedTestPost(t, currentDB, user.ID)

	resp := doGet(router, fmt.Sprintf("/posts/%d/edit", post.ID))

	require.Equal(t, http.StatusOK, resp.Code)
	html := resp.Body.String()
	assert.Contains(t, html, post.Title)
	assert.Contains(t, html, post.Content)
}

func TestUpdatePost(t *testing.T) {
	router, currentDB := newTestRouter(t)
	user := seedTestUser(t, currentDB)
	post := seedTestPost(t, currentDB, user.ID)
	originalCreatedAt := post.CreatedAt

	resp := doPostForm(router, fmt.Sprintf("/posts/%d/edit", post.ID), url.Values{
		"title":   {"test new title for edit"},
		"content": {"completely different content"},
	})

	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d", post.ID), resp.Header().Get("Location"))

	updated, err := currentDB.PostRepo().FindByID(post.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "test new title for edit", updated.Title)
	assert.Equal(t, "completely different content", updated.Content)

	// Identity, owner, and creation timestamp are untouched by edits.
	assert.Equal(t, post.ID, updated.ID)
	assert.Equal(t, user.ID, updated.UserID)
	assert.WithinDuration(t, originalCreatedAt, updated.CreatedAt, time.Second)
}

func TestUpdatePostBlankSubmissionSkipsWrite(t *testing.T) {
	router, currentDB := newTestRouter(t)
	user := seedTestUser(t, currentDB)
	post := seedTestPost(t, currentDB, user.ID)

	resp := doPostForm(router, fmt.Sprintf("/posts/%d/edit", post.ID), url.Values{
		"title":   {""},
		"content": {"  "},
	})

	require.Equal(t, http.StatusOK, resp.Code)
	html := resp.Body.String()
	assert.Contains(t, html, "Invalid title.")
	assert.Contains(t, html, "Invalid content.")

	unchanged, err := currentDB.PostRepo().FindByID(post.ID)
	require.NoError(t, err)
	require.NotNil(t, unchanged)
	assert.Equal(t, post.Title, unchanged.Title)
	assert.Equal(t, post.Content, unchanged.Content)
}

func TestDeletePostRedirectsToOwner(t *testing.T) {
	router, currentDB := newTestRouter(t)
	user := seedTestUser(t, currentDB)
	post := seedTestPost(t, currentDB, user.ID)

	resp := doPostForm(router, fmt.Sprintf("/posts/%d/delete", post.ID), url.Values{})

	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, fmt.Sprintf("/users/%d", user.ID), resp.Header().Get("Location"))

	detail := doGet(router, fmt.Sprintf("/users/%d", user.ID))
	require.Equal(t, http.StatusOK, detail.Code)
	assert.NotContains(t, detail.Body.String(), post.Title)
}
