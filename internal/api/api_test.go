package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"roost-backend/internal/auth"
	"roost-backend/internal/database"
)

// newTestServer wires a full application against a fresh database:
// real routes, real middleware, fixed signing secret.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.Open(database.Config{Path: path}))
	t.Cleanup(func() { database.Close() })

	tokens := auth.NewTokenService("test-secret", time.Hour)
	authSvc := auth.NewService(database.NewUserRepo(), tokens)

	e := echo.New()
	RegisterRoutes(e, authSvc)
	return e
}

// doJSON performs a request with a JSON body and optional cookies.
func doJSON(e *echo.Echo, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// registerAndLogin creates an account and returns its session cookie
// and user id.
func registerAndLogin(t *testing.T, e *echo.Echo, name, email, password string) (*http.Cookie, string) {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/register",
		`{"name":"`+name+`","email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	decodeJSON(t, rec, &created)

	rec = doJSON(e, http.MethodPost, "/login",
		`{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == auth.CookieName && cookie.Value != "" {
			return cookie, created.ID
		}
	}
	t.Fatal("login response did not set a token cookie")
	return nil, ""
}
