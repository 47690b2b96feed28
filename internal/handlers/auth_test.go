package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MaxKtzv/TodoAppPetProject/internal/models"
	"github.com/MaxKtzv/TodoAppPetProject/internal/service"
	"github.com/gin-gonic/gin"
)

// =============================================================================
// Mock AuthService
// =============================================================================

type mockAuthService struct {
	loginFunc    func(ctx context.Context, username, password string) (*service.TokenResponse, error)
	registerFunc func(ctx context.Context, req *service.RegisterRequest) (*models.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*service.TokenResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, username, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Register(ctx context.Context, req *service.RegisterRequest) (*models.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

// =============================================================================
// Test Helpers
// =============================================================================

func setupAuthRouter(t *testing.T, authService service.AuthService) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		t.Fatalf("RegisterValidators() error = %v", err)
	}

	router := gin.New()
	handler := NewAuthHandler(authService)
	router.POST("/auth/", handler.Register)
	router.POST("/auth/token", handler.Token)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func postForm(t *testing.T, router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// =============================================================================
// Register Tests
// =============================================================================

func TestRegisterHandler_Created(t *testing.T) {
	var got *service.RegisterRequest
	router := setupAuthRouter(t, &mockAuthService{
		registerFunc: func(ctx context.Context, req *service.RegisterRequest) (*models.User, error) {
			got = req
			return &models.User{ID: 1, Username: req.Username}, nil
		},
	})

	recorder := postJSON(t, router, "/auth/", gin.H{
		"username":     "alice",
		"password":     "Tr0ub4dor&3",
		"email":        "alice@email.com",
		"phone_number": "+1 (123) 456-7890",
	})

	if recorder.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (%s)", recorder.Code, http.StatusCreated, recorder.Body)
	}
	if got == nil || got.Username != "alice" {
		t.Errorf("service received %+v, want the bound request", got)
	}
}

func TestRegisterHandler_BindingFailures(t *testing.T) {
	router := setupAuthRouter(t, &mockAuthService{})

	tests := []struct {
		name string
		body gin.H
	}{
		{
			name: "missing username",
			body: gin.H{"password": "Tr0ub4dor&3"},
		},
		{
			name: "short password",
			body: gin.H{"username": "alice", "password": "short"},
		},
		{
			name: "overlong password",
			body: gin.H{"username": "alice", "password": strings.Repeat("x", 33)},
		},
		{
			name: "bad email",
			body: gin.H{"username": "alice", "password": "Tr0ub4dor&3", "email": "not-an-email"},
		},
		{
			name: "bad phone number",
			body: gin.H{"username": "alice", "password": "Tr0ub4dor&3", "phone_number": "12345"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, router, "/auth/", tt.body)
			if recorder.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestRegisterHandler_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"duplicate username", service.ErrUsernameTaken, http.StatusBadRequest},
		{"duplicate email", service.ErrEmailTaken, http.StatusBadRequest},
		{"breached password", service.ErrPasswordBreached, http.StatusBadRequest},
		{"breach service down", service.ErrBreachUnavailable, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthRouter(t, &mockAuthService{
				registerFunc: func(ctx context.Context, req *service.RegisterRequest) (*models.User, error) {
					return nil, tt.err
				},
			})

			recorder := postJSON(t, router, "/auth/", gin.H{
				"username": "alice",
				"password": "Tr0ub4dor&3",
			})
			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
		})
	}
}

// =============================================================================
// Token Tests
// =============================================================================

func TestTokenHandler_Success(t *testing.T) {
	router := setupAuthRouter(t, &mockAuthService{
		loginFunc: func(ctx context.Context, username, password string) (*service.TokenResponse, error) {
			return &service.TokenResponse{AccessToken: "some.jwt.token", TokenType: "bearer"}, nil
		},
	})

	recorder := postForm(t, router, "/auth/token", url.Values{
		"username": {"alice"},
		"password": {"Tr0ub4dor&3"},
	})

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (%s)", recorder.Code, http.StatusOK, recorder.Body)
	}

	var response service.TokenResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.AccessToken != "some.jwt.token" {
		t.Errorf("AccessToken = %v, want some.jwt.token", response.AccessToken)
	}
	if response.TokenType != "bearer" {
		t.Errorf("TokenType = %v, want bearer", response.TokenType)
	}
}

func TestTokenHandler_InvalidCredentials(t *testing.T) {
	router := setupAuthRouter(t, &mockAuthService{
		loginFunc: func(ctx context.Context, username, password string) (*service.TokenResponse, error) {
			return nil, service.ErrInvalidCredentials
		},
	})

	recorder := postForm(t, router, "/auth/token", url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusUnauthorized)
	}
}

func TestTokenHandler_MissingFields(t *testing.T) {
	router := setupAuthRouter(t, &mockAuthService{})

	recorder := postForm(t, router, "/auth/token", url.Values{
		"username": {"alice"},
	})

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}
}
