package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MaxKtzv/TodoAppPetProject/internal/service"
	"github.com/gin-gonic/gin"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

// =============================================================================
// Test Helpers
// =============================================================================

func setupProtectedRouter(t *testing.T) (*gin.Engine, service.JWTService) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	jwtService := service.NewJWTService(testSecret, 20*time.Minute)
	if jwtService == nil {
		t.Fatal("Failed to create JWT service")
	}

	router := gin.New()
	router.GET("/protected", Authenticate(jwtService), func(c *gin.Context) {
		claims := CurrentUser(c)
		if claims == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no claims in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"username": claims.Subject,
			"id":       claims.UserID,
			"admin":    claims.Admin,
		})
	})
	return router, jwtService
}

func get(t *testing.T, router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// =============================================================================
// Authenticate Tests
// =============================================================================

func TestAuthenticate_ValidToken(t *testing.T) {
	router, jwtService := setupProtectedRouter(t)

	token, err := jwtService.Generate("bob", 42, true)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	recorder := get(t, router, "Bearer "+token)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (%s)", recorder.Code, http.StatusOK, recorder.Body)
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	router, jwtService := setupProtectedRouter(t)

	expired := service.NewJWTService(testSecret, -1*time.Minute)
	expiredToken, err := expired.Generate("bob", 42, false)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	forged := service.NewJWTService("another-secret-that-is-32-bytes!!", 20*time.Minute)
	forgedToken, err := forged.Generate("bob", 42, false)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	validToken, err := jwtService.Generate("bob", 42, false)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	tests := []struct {
		name          string
		authorization string
	}{
		{"no header", ""},
		{"no bearer prefix", validToken},
		{"wrong scheme", "Basic " + validToken},
		{"garbage token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expiredToken},
		{"forged token", "Bearer " + forgedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := get(t, router, tt.authorization)
			if recorder.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", recorder.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestCurrentUser_WithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/open", func(c *gin.Context) {
		if CurrentUser(c) != nil {
			t.Error("CurrentUser() should be nil without the middleware")
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)
}
