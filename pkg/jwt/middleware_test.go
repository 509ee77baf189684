package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ihost-backend/config"

	"github.com/gin-gonic/gin"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "ihost-auth",
	})
}

func TestAuthMiddleware_ContextAccessors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newTestService()

	token, err := svc.GenerateToken("u1", map[string]interface{}{"email": "a@example.com"})
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	var gotUID string
	var gotClaims *CustomClaims

	router := gin.New()
	router.GET("/me", svc.AuthMiddleware(), func(c *gin.Context) {
		gotUID = GetUID(c)
		gotClaims = GetClaims(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotUID != "u1" {
		t.Errorf("GetUID() = %q, want %q", gotUID, "u1")
	}
	if gotClaims == nil {
		t.Fatal("GetClaims() = nil, want claims")
	}
	if gotClaims.Subject != "u1" {
		t.Errorf("claims.Subject = %q, want %q", gotClaims.Subject, "u1")
	}
	if email := gotClaims.Data["email"]; email != "a@example.com" {
		t.Errorf("claims.Data[email] = %v, want %q", email, "a@example.com")
	}
}

func TestAuthMiddleware_RejectsInvalidAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newTestService()

	reached := false
	router := gin.New()
	router.GET("/me", svc.AuthMiddleware(), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not-a-token"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want %d", tt.name, w.Code, http.StatusUnauthorized)
		}
	}
	if reached {
		t.Error("handler reached without valid token")
	}
}

func TestAuthMiddleware_RejectsWrongIssuer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	other := NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "someone-else",
	})
	token, err := other.GenerateToken("u1", nil)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	svc := newTestService()
	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted token from wrong issuer")
	}
}
