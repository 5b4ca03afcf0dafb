package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/lyra/internal/api/dto"
)

func TestRegisterAndLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		switch r.URL.Path {
		case "/api/auth/register":
			var req dto.RegisterRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "ana@x.edu", req.Email)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(dto.TokenResponse{Token: "reg-token", ExpiresAt: time.Now().Add(12 * time.Hour)})
		case "/api/auth/login":
			_ = json.NewEncoder(w).Encode(dto.TokenResponse{Token: "login-token", ExpiresAt: time.Now().Add(time.Hour)})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	reg, err := client.Register(ctx, dto.RegisterRequest{Name: "Ana", Email: "ana@x.edu", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "reg-token", reg.Token)

	login, err := client.Login(ctx, dto.LoginRequest{Email: "ana@x.edu", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "login-token", login.Token)
}

func TestMeSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(dto.UserResponse{ID: "u1", Name: "Ana", Email: "ana@x.edu", Role: "user"})
	}))
	defer server.Close()

	user, err := NewClient(server.URL).Me(context.Background(), "token-abc")
	require.NoError(t, err)
	assert.Equal(t, "ana@x.edu", user.Email)
}

func TestErrorEnvelopeIsDecoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(dto.ErrorBody{Error: dto.ErrorDetail{
			Code:    "INVALID_CREDENTIALS",
			Message: "invalid credentials",
		}})
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Login(context.Background(), dto.LoginRequest{Email: "ana@x.edu", Password: "bad"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.Equal(t, "invalid credentials", apiErr.Message)
}

func TestNonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Me(context.Background(), "token")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Contains(t, apiErr.Message, "upstream down")
}
