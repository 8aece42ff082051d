package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// mockClerkJWT builds a well-formed but unverifiable token, the shape a
// client would send with a stale or forged session.
func mockClerkJWT(t *testing.T, clerkID string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": clerkID,
		"iss": "https://clerk.test",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-key-for-testing-only"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func protectedProbe() (http.Handler, *bool) {
	reached := false
	h := ClerkAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))
	return h, &reached
}

func TestClerkAuthMiddlewareMissingHeader(t *testing.T) {
	h, reached := protectedProbe()

	req := httptest.NewRequest("GET", "/api/v1/user", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if *reached {
		t.Error("handler ran without authorization")
	}
}

func TestClerkAuthMiddlewareBadFormat(t *testing.T) {
	h, reached := protectedProbe()

	req := httptest.NewRequest("GET", "/api/v1/user", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if *reached {
		t.Error("handler ran with a malformed authorization header")
	}
}

func TestClerkAuthMiddlewareRejectsUnverifiableToken(t *testing.T) {
	h, reached := protectedProbe()

	req := httptest.NewRequest("GET", "/api/v1/user", nil)
	req.Header.Set("Authorization", "Bearer "+mockClerkJWT(t, "user_abc123"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for an unverifiable token, got %d", rec.Code)
	}
	if *reached {
		t.Error("handler ran with an unverifiable token")
	}
}

func TestOptionalAuthPassesAnonymous(t *testing.T) {
	var gotID string
	var gotOK bool
	h := OptionalAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = GetClerkID(r.Context())
	}))

	req := httptest.NewRequest("GET", "/api/v1/content/quotes", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("anonymous request blocked: %d", rec.Code)
	}
	if gotOK || gotID != "" {
		t.Errorf("anonymous request carried an identity: %q", gotID)
	}
}

func TestGetClerkID(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClerkIDKey, "user_abc123")
	id, ok := GetClerkID(ctx)
	if !ok || id != "user_abc123" {
		t.Errorf("got %q, %v", id, ok)
	}

	if _, ok := GetClerkID(context.Background()); ok {
		t.Error("empty context reported an identity")
	}
}
