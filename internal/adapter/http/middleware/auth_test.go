package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/transfergate/internal/infrastructure/auth"
)

func newTestJWTManager() *auth.JWTManager {
	return auth.NewJWTManager("test-secret", time.Hour)
}

func TestAuthMiddleware_PassesClientID(t *testing.T) {
	manager := newTestJWTManager()
	token, err := manager.Generate("client-7")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	var gotClientID string
	handler := AuthMiddleware(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClientID, _ = ClientIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	if gotClientID != "client-7" {
		t.Fatalf("expected client-7 in context, got %q", gotClientID)
	}
}

func TestAuthMiddleware_RejectsMissingHeader(t *testing.T) {
	handler := AuthMiddleware(newTestJWTManager())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfers", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestAuthMiddleware_RejectsMalformedHeader(t *testing.T) {
	handler := AuthMiddleware(newTestJWTManager())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run with a malformed header")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfers", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestAuthMiddleware_RejectsInvalidToken(t *testing.T) {
	handler := AuthMiddleware(newTestJWTManager())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfers", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}
