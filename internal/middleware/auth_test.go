package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pandamarket/api/pkg/auth"
	"github.com/pandamarket/api/pkg/httpx"
)

func authedHandler(t *testing.T, wantID uint, wantNickname string) (http.HandlerFunc, *bool) {
	t.Helper()
	called := false
	return func(w http.ResponseWriter, r *http.Request) {
		called = true
		id, ok := UserID(r.Context())
		if !ok || id != wantID {
			t.Errorf("user id = %d (ok=%v), want %d", id, ok, wantID)
		}
		name, ok := Nickname(r.Context())
		if !ok || name != wantNickname {
			t.Errorf("nickname = %q (ok=%v), want %q", name, ok, wantNickname)
		}
		w.WriteHeader(http.StatusOK)
	}, &called
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)

	RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached without token")
	})(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	var res httpx.Response
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if res.Error != "로그인이 필요합니다." {
		t.Errorf("error = %q", res.Error)
	}
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	auth.Init("middleware-test-secret", time.Hour)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached with invalid token")
	})(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	var res httpx.Response
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if res.Error != "유효하지 않은 토큰입니다." {
		t.Errorf("error = %q", res.Error)
	}
}

func TestRequireAuthPassesClaims(t *testing.T) {
	auth.Init("middleware-test-secret", time.Hour)
	token, err := auth.GenerateToken(7, "판다")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	handler, called := authedHandler(t, 7, "판다")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	RequireAuth(handler)(rec, req)

	if !*called {
		t.Fatal("handler not reached")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)

	OptionalAuth(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := UserID(r.Context()); ok {
			t.Error("anonymous request carries a user id")
		}
	})(rec, req)

	if !called {
		t.Fatal("handler not reached")
	}
}

func TestOptionalAuthAttachesClaims(t *testing.T) {
	auth.Init("middleware-test-secret", time.Hour)
	token, err := auth.GenerateToken(3, "곰")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	handler, called := authedHandler(t, 3, "곰")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	OptionalAuth(handler)(rec, req)

	if !*called {
		t.Fatal("handler not reached")
	}
}
