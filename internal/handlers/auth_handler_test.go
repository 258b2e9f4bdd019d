package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/666akuma13/interview-agent/internal/config"
	"github.com/666akuma13/interview-agent/internal/middleware"
	"github.com/666akuma13/interview-agent/internal/models"
)

func newAuthFixture(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	cfg := &config.Config{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
	}
	handler := NewAuthHandler(cfg, zap.NewNop())
	return middleware.ValidateRequest[*models.LoginRequest]()(http.HandlerFunc(handler.LoginHandler)), cfg
}

func TestLoginIssuesAdminToken(t *testing.T) {
	handler, cfg := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"admin","password":"hunter2"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeJSON[authResponse](t, rec)
	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["role"] != "admin" || claims["sub"] != "admin" {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	handler, _ := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	resp := decodeJSON[models.ErrorResponse](t, rec)
	if resp.Code != "invalid_credentials" {
		t.Fatalf("unexpected error code: %q", resp.Code)
	}
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	handler, _ := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"someone","password":"hunter2"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginRejectsMissingCredentials(t *testing.T) {
	handler, _ := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"admin"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
