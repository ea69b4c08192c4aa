package web

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/smkhize/erfsite/internal/model"
	"github.com/smkhize/erfsite/internal/store"
)

func setupWebServer(t *testing.T) (*httptest.Server, store.Store) {
	t.Helper()
	st := store.NewMemory()
	require.NoError(t, store.SeedDemo(context.Background(), st))

	router, err := NewRouter(st, "test-secret", zap.NewNop())
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, st
}

func TestPublicPagesRender(t *testing.T) {
	server, _ := setupWebServer(t)

	for _, path := range []string{"/", "/about", "/stands", "/stands/1", "/blog", "/gallery", "/contact", "/downloads", "/login"} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err, path)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html", path)
	}
}

func TestUnknownStandIs404(t *testing.T) {
	server, _ := setupWebServer(t)

	resp, err := http.Get(server.URL + "/stands/999")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDraftPostIs404(t *testing.T) {
	server, st := setupWebServer(t)

	posts, err := st.ListBlogPosts(context.Background())
	require.NoError(t, err)

	var draftID int64
	for _, p := range posts {
		if !p.Published {
			draftID = p.ID
		}
	}
	require.NotZero(t, draftID, "seed data should contain a draft")

	resp, err := http.Get(server.URL + "/blog/" + strconv.FormatInt(draftID, 10))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminPagesRedirectWithoutCookie(t *testing.T) {
	server, _ := setupWebServer(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	for _, path := range []string{"/admin", "/admin/stands", "/admin/messages"} {
		resp, err := client.Get(server.URL + path)
		require.NoError(t, err, path)
		resp.Body.Close()
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
	}
}

func TestLoginFlow(t *testing.T) {
	server, st := setupWebServer(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	_, err := st.CreateUser(context.Background(), "admin", string(hash), model.RoleAdmin)
	require.NoError(t, err)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	// Bad password re-renders the login page.
	resp, err := client.PostForm(server.URL+"/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Good password redirects to the dashboard.
	resp, err = client.PostForm(server.URL+"/login", url.Values{
		"username": {"admin"},
		"password": {"password"},
	})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode) // followed redirect to /admin

	// The cookie now grants access to admin pages.
	resp, err = client.Get(server.URL + "/admin/messages")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Logout revokes the cookie token.
	resp, err = client.PostForm(server.URL+"/logout", nil)
	require.NoError(t, err)
	resp.Body.Close()

	noRedirect := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err = noRedirect.Get(server.URL + "/admin")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}
