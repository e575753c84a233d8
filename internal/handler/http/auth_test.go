// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop/internal/service"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = models.User{
	UserID:       7,
	Username:     "user",
	PasswordHash: "$2a$04$digest",
	CreatedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
}

func doPost(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			assert.Equal(t, models.Credentials{Username: "user", Password: "password"}, creds)
			return testUser, nil
		},
		issueTokenFn: func(_ context.Context, user models.User) (string, error) {
			assert.Equal(t, testUser, user)
			return "signed.token.value", nil
		},
	}
	h := newMockedHandler(t, auth, nil)

	rr := doPost(t, h.login, "/login", `{"username":"user","password":"password"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed.token.value", rr.Header().Get("Authorization"))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "user", body["username"])
	assert.EqualValues(t, 7, body["id"])
	assert.NotContains(t, rr.Body.String(), "signed.token.value")
	assert.NotContains(t, rr.Body.String(), "digest")
}

func TestLogin_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "wrong password",
			body:       `{"username":"user","password":"wrong"}`,
			loginErr:   service.ErrCredentialMismatch,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Unauthorized",
		},
		{
			name:       "unknown user",
			body:       `{"username":"nobody","password":"password"}`,
			loginErr:   service.ErrCredentialMismatch,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Unauthorized",
		},
		{
			name:       "malformed json",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
		{
			name:       "not an object",
			body:       `["user","password"]`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
		{
			name:       "empty body",
			body:       ``,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
		{
			name:       "empty password",
			body:       `{"username":"user","password":""}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
		{
			name:       "missing username",
			body:       `{"password":"password"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
		{
			name:       "store failure",
			body:       `{"username":"user","password":"password"}`,
			loginErr:   store.ErrExecutingQuery,
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issued := false
			auth := &mockAuthService{
				loginFn: func(context.Context, models.Credentials) (models.User, error) {
					if tt.loginErr == nil {
						t.Fatal("Login must not be called for an invalid body")
					}
					return models.User{}, tt.loginErr
				},
				issueTokenFn: func(context.Context, models.User) (string, error) {
					issued = true
					return "token", nil
				},
			}
			h := newMockedHandler(t, auth, nil)

			rr := doPost(t, h.login, "/login", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
			assert.Empty(t, rr.Header().Get("Authorization"))
			assert.False(t, issued)
		})
	}
}

func TestLogin_UnknownUserAndWrongPasswordIdentical(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(context.Context, models.Credentials) (models.User, error) {
			return models.User{}, service.ErrCredentialMismatch
		},
	}
	h := newMockedHandler(t, auth, nil)

	unknown := doPost(t, h.login, "/login", `{"username":"nobody","password":"password"}`)
	wrong := doPost(t, h.login, "/login", `{"username":"user","password":"wrong"}`)

	assert.Equal(t, unknown.Code, wrong.Code)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
}

func TestLogin_TokenFailure(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(context.Context, models.Credentials) (models.User, error) {
			return testUser, nil
		},
		issueTokenFn: func(context.Context, models.User) (string, error) {
			return "", service.ErrTokenCreationFailed
		},
	}
	h := newMockedHandler(t, auth, nil)

	rr := doPost(t, h.login, "/login", `{"username":"user","password":"password"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Header().Get("Authorization"))
}

func TestLogin_BodyTooLarge(t *testing.T) {
	h := newMockedHandler(t, nil, nil)

	body := `{"username":"user","password":"` + strings.Repeat("p", maxCredentialsBodySize) + `"}`
	rr := doPost(t, h.login, "/login", body)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ─────────────────────────────────────────────
// signup
// ─────────────────────────────────────────────

func TestSignup(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "created",
			body:       `{"username":"user","password":"password"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "duplicate",
			body:       `{"username":"user","password":"password"}`,
			createErr:  store.ErrUsernameAlreadyExists,
			wantStatus: http.StatusConflict,
			wantBody:   "username already exists",
		},
		{
			name:       "password too long",
			body:       `{"username":"user","password":"password"}`,
			createErr:  service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
		{
			name:       "malformed",
			body:       `nope`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
		{
			name:       "store failure",
			body:       `{"username":"user","password":"password"}`,
			createErr:  store.ErrExecutingQuery,
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserService{
				createFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
					if tt.createErr != nil {
						return models.User{}, tt.createErr
					}
					return models.User{UserID: 1, Username: creds.Username, PasswordHash: "hash"}, nil
				},
			}
			h := newMockedHandler(t, nil, users)

			rr := doPost(t, h.signup, "/api/user/create", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Empty(t, rr.Header().Get("Authorization"))
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
				return
			}
			assert.JSONEq(t, `{"id":1,"username":"user","created_at":"0001-01-01T00:00:00Z"}`, rr.Body.String())
		})
	}
}
