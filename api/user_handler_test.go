package api

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickmonteleone/blogly/models"
)

func TestRootRedirectsToUsers(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := doGet(router, "/")

	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/users", resp.Header().Get("Location"))
}

func TestListUsers(t *testing.T) {
	router, currentDB := newTestRouter(t)
	user := seedTestUser(t, currentDB)

	resp := doGet(router, "/users")

	require.Equal(t, http.StatusOK, resp.Code)
	html := resp.Body.String()
	assert.Contains(t, html, user.FirstName)
	assert.Contains(t, html, user.LastName)
}

func TestShowNewUserForm(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := doGet(router, "/users/new")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `action="/users/new"`)
}

func TestCreateUser(t *testing.T) {
	router, currentDB := newTestRouter(t)

	resp := doPostForm(router, "/users/new", url.Values{
		"first_name": {"Max"},
		"last_name":  {"Doggo"},
		"image_url":  {"https://example/img.jpg"},
	})

	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/users", resp.Header().Get("Location"))

	users, err := currentDB.UserRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, users, 1)

	detail := doGet(router, fmt.Sprintf("/users/%d", users[0].ID))
	require.Equal(t, http.StatusOK, detail.Code)
	html := detail.Body.String()
	assert.Contains(t, html, "Max")
	assert.Contains(t, html, "Doggo")
	assert.Contains(t, html, "https://example/img.jpg")
}

func TestCreateUserBlankSubmissionPersistsNothing(t *testing.T) {
	router, currentDB := newTestRouter(t)

	resp := doPostForm(router, "/users/new", url.Values{
		"first_name": {""},
		"last_name":  {""},
		"image_url":  {""},
	})

	require.Equal(t, http.StatusOK, resp.Code)
	html := resp.Body.String()
	assert.Contains(t, html, "Invalid first name.")
	assert.Contains(t, html, "Invalid last name.")

	users, err := currentDB.UserRepo().FindAll()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestCreateUserBlankImageURLGetsDefault(t *testing.T) {
	router, currentDB := newTestRouter(t)

	resp := doPostForm(router, "/users/new", url.Values{
		"first_name": {"Max"},
		"last_name":  {"Doggo"},
		"image_url":  {""},
	})

	require.Equal(t, http.StatusFound, resp.Code)

	users, err := currentDB.UserRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.DefaultImageURL, users[0].ImageURL)
}

func TestUserRoutesUnknownID(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/users/9999999", "/users/9999999/edit"} {
		resp := doGet(router, path)
		assert.Equal(t, http.StatusNotFound, resp.Code, path)
	}

	form := url.Values{
		"first_name": {"Max"},
		"last_name":  {"Doggo"},
		"image_url":  {""},
	}
	for _, path := range []string{"/users/9999999/edit", "/users/9999999/delete"} {
		resp := doPostForm(router, path, form)
		assert.Equal(t, http.StatusNotFound, resp.Code, path)
	}
}

func TestUserRoutesNonIntegerID(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := doGet(router, "/users/not-a-number")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestShowUserEditForm(t *testing.T) {
	router, currentDB := newTestRouter(t)
	user := seedTestUser(t, currentDB)

	resp := doGet(router, fmt.Sprintf("/users/%d/edit", user.ID))

	require.Equal(t, http.StatusOK, resp.Code)
	html := resp.Body.String()
	assert.Contains(t, html, user.FirstName)
	assert.Contains(t, html, user.LastName)
	assert.Contains(t, html, user.ImageURL)
}

func TestUpdateUser(t *testing.T) {
	router, currentDB := newTestRouter(t)
	user := seedTestUser(t, currentDB)

	resp := doPostForm(router, fmt.Sprintf("/users/%d/edit", user.ID), url.Values{
		"first_name": {"edited first name"},
		"last_name":  {"edited last name"},
		"image_url":  {"https://example/edited.jpg"},
	})

	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, fmt.Sprintf("/users/%d", user.ID), resp.Header().Get("Location"))

	detail := doGet(router, fmt.Sprintf("/users/%d", user.ID))
	html := detail.Body.String()
	assert.Contains(t, html, "edited first name")
	assert.Contains(t, html, "edited last name")
	assert.Contains(t, html, "https://example/edited.jpg")
}

func TestUpdateUserBlankSubmissionSkipsWrite(t *testing.T) {
	router, currentDB := newTestRouter(t)
	user := seedTestUser(t, currentDB)

	resp := doPostForm(router, fmt.Sprintf("/users/%d/edit", user.ID), url.Values{
		"first_name": {"   "},
		"last_name":  {""},
		"image_url":  {"https://example/edited.jpg"},
	})

	require.Equal(t, http.StatusOK, resp.Code)
	html := resp.Body.String()
	assert.Contains(t, html, "Invalid first name.")
	assert.Contains(t, html, "Invalid last name.")

	unchanged, err := currentDB.UserRepo().FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, unchanged)
	assert.Equal(t, "Max", unchanged.FirstName)
	assert.Equal(t, "Doggo", unchanged.LastName)
	assert.Equal(t, "https://example/img.jpg", unchanged.ImageURL)
}

func TestDeleteUserRemovesTheirPosts(t *testing.T) {
	router, currentDB := newTestRouter(t)
	user := seedTestUser(t, currentDB)
	post := seedTestPost(t, currentDB, user.ID)

	resp := doPostForm(router, fmt.Sprintf("/users/%d/delete", user.ID), url.Values{})

	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/users", resp.Header().Get("Location"))

	gone, err := currentDB.UserRepo().FindByID(user.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	orphan, err := currentDB.PostRepo().FindByID(post.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan)
}

// The end-to-end scenario: create Max Doggo through the form, read the
// detail page back, and confirm a bogus id still 404s.
func TestUserScenario(t *testing.T) {
	router, currentDB := newTestRouter(t)

	resp := doPostForm(router, "/users/new", url.Values{
		"first_name": {"Max"},
		"last_name":  {"Doggo"},
		"image_url":  {"https://example/img.jpg"},
	})
	require.Equal(t, http.StatusFound, resp.Code)

	users, err := currentDB.UserRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, users, 1)

	detail := doGet(router, fmt.Sprintf("/users/%d", users[0].ID))
	require.Equal(t, http.StatusOK, detail.Code)
	html := detail.Body.String()
	assert.Contains(t, html, "Max")
	assert.Contains(t, html, "Doggo")
	assert.Contains(t, html, "https://example/img.jpg")

	missing := doGet(router, "/users/9999999")
	assert.Equal(t, http.StatusNotFound, missing.Code)
}
