package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/service"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/internal/utils"
	"github.com/MKhiriev/go-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer runs the full pipeline over real services and a SQLite
// database in a temporary directory.
func newTestServer(t *testing.T, extra ...models.RoutePolicyEntry) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, config.Storage{
		DB: config.DB{DSN: filepath.Join(t.TempDir(), "shop.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := service.NewServices(storages, config.App{
		TokenSignKey: "routes-test-secret",
		BcryptCost:   4,
	}, logger.Nop())
	require.NoError(t, err)

	policy, err := NewRoutePolicy(append(DefaultRoutePolicy(), extra...))
	require.NoError(t, err)

	server := httptest.NewServer(NewHandler(services, policy, logger.Nop()).Init())
	t.Cleanup(server.Close)
	return server
}

func send(t *testing.T, method, url, body, authorization string) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func credentialsJSON(username, password string) string {
	data, _ := json.Marshal(models.Credentials{Username: username, Password: password})
	return string(data)
}

func signUpAndLogin(t *testing.T, baseURL, username, password string) string {
	t.Helper()

	resp, _ := send(t, http.MethodPost, baseURL+"/api/user/create", credentialsJSON(username, password), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = send(t, http.MethodPost, baseURL+"/login", credentialsJSON(username, password), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	header := resp.Header.Get("Authorization")
	require.True(t, strings.HasPrefix(header, "Bearer "))
	return header
}

func TestRoutes_LoginFlow(t *testing.T) {
	server := newTestServer(t)

	resp, body := send(t, http.MethodPost, server.URL+"/api/user/create", credentialsJSON("user", "password"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Authorization"))
	assert.NotContains(t, body, "password")

	resp, body = send(t, http.MethodPost, server.URL+"/login", credentialsJSON("user", "password"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	authHeader := resp.Header.Get("Authorization")
	token, err := utils.ParseBearerToken(authHeader)
	require.NoError(t, err)
	assert.NotContains(t, body, token)

	var profile models.User
	require.NoError(t, json.Unmarshal([]byte(body), &profile))
	assert.Equal(t, "user", profile.Username)
	assert.NotZero(t, profile.UserID)

	resp, body = send(t, http.MethodGet, server.URL+"/api/user/me", "", authHeader)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"username":"user"`)

	resp, _ = send(t, http.MethodGet, server.URL+"/api/user/user", "", authHeader)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = send(t, http.MethodGet, server.URL+"/api/user/ghost", "", authHeader)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRoutes_LoginRejections(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server.URL, "user", "password")

	wrongResp, wrongBody := send(t, http.MethodPost, server.URL+"/login", credentialsJSON("user", "wrong"), "")
	unknownResp, unknownBody := send(t, http.MethodPost, server.URL+"/login", credentialsJSON("nobody", "password"), "")

	assert.Equal(t, http.StatusUnauthorized, wrongResp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownResp.StatusCode)
	assert.Equal(t, wrongBody, unknownBody)
	assert.Empty(t, wrongResp.Header.Get("Authorization"))
	assert.Empty(t, unknownResp.Header.Get("Authorization"))

	resp, _ := send(t, http.MethodPost, server.URL+"/login", `{"username":`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRoutes_DuplicateSignup(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server.URL, "user", "password")

	resp, body := send(t, http.MethodPost, server.URL+"/api/user/create", credentialsJSON("user", "other"), "")

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "username already exists", strings.TrimSpace(body))
}

func TestRoutes_ProtectedRouteRejections(t *testing.T) {
	server := newTestServer(t)
	authHeader := signUpAndLogin(t, server.URL, "user", "password")
	token := strings.TrimPrefix(authHeader, "Bearer ")

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header"},
		{name: "token without prefix", header: token},
		{name: "wrong scheme", header: "Token " + token},
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "truncated token", header: authHeader[:len(authHeader)-4]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := send(t, http.MethodGet, server.URL+"/api/user/me", "", tt.header)

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
			assert.Equal(t, "Unauthorized", strings.TrimSpace(body))
		})
	}
}

func TestRoutes_PublicRoutesIgnoreBadTokens(t *testing.T) {
	server := newTestServer(t)

	resp, _ := send(t, http.MethodPost, server.URL+"/api/user/create", credentialsJSON("user", "password"), "Bearer garbage")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = send(t, http.MethodPost, server.URL+"/login", credentialsJSON("user", "password"), "Bearer garbage")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoutes_ConfiguredPublicRoute(t *testing.T) {
	server := newTestServer(t, models.RoutePolicyEntry{
		Method:  http.MethodGet,
		Pattern: "/api/user/{username}",
		Access:  models.AccessPublic,
	})
	signUpAndLogin(t, server.URL, "user", "password")

	resp, body := send(t, http.MethodGet, server.URL+"/api/user/user", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"username":"user"`)
}

func TestRoutes_UnsupportedMethodIsNotFound(t *testing.T) {
	server := newTestServer(t)
	authHeader := signUpAndLogin(t, server.URL, "user", "password")

	resp, _ := send(t, http.MethodGet, server.URL+"/login", "", authHeader)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = send(t, http.MethodGet, server.URL+"/login", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoutes_ConcurrentLoginsNeverCrossResolve(t *testing.T) {
	server := newTestServer(t)
	users := []string{"alice", "bob", "carol"}
	for _, u := range users {
		resp, _ := send(t, http.MethodPost, server.URL+"/api/user/create", credentialsJSON(u, "pw-"+u), "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var wg sync.WaitGroup
	for _, u := range users {
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()

				resp, err := http.Post(server.URL+"/login", "application/json", strings.NewReader(credentialsJSON(u, "pw-"+u)))
				if !assert.NoError(t, err) {
					return
				}
				resp.Body.Close()
				if !assert.Equal(t, http.StatusOK, resp.StatusCode) {
					return
				}

				req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/user/me", nil)
				req.Header.Set("Authorization", resp.Header.Get("Authorization"))
				me, err := http.DefaultClient.Do(req)
				if !assert.NoError(t, err) {
					return
				}
				defer me.Body.Close()

				var profile models.User
				assert.NoError(t, json.NewDecoder(me.Body).Decode(&profile))
				assert.Equal(t, u, profile.Username)
			}()
		}
	}
	wg.Wait()
}

func TestRoutes_RecoversFromPanics(t *testing.T) {
	policy, err := NewRoutePolicy(DefaultRoutePolicy())
	require.NoError(t, err)

	auth := &mockAuthService{
		loginFn: func(context.Context, models.Credentials) (models.User, error) {
			panic("boom")
		},
	}
	h := NewHandler(&service.Services{AuthService: auth}, policy, logger.Nop())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(credentialsJSON("user", "password")))
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
