package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pandamarket/api/internal/metrics"
	"github.com/pandamarket/api/internal/user/repository"
	"github.com/pandamarket/api/pkg/auth"
	"github.com/pandamarket/api/pkg/httpx"
)

func newUserRouter(t *testing.T) *mux.Router {
	t.Helper()
	auth.Init("user-test-secret", time.Hour)

	router := mux.NewRouter()
	repo := repository.NewMemoryUserRepository()
	NewUserHandler(repo, metrics.NewWith(prometheus.NewRegistry())).RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, target, token string, body any) (int, httpx.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var res httpx.Response
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec.Code, res
}

func registerUser(t *testing.T, router *mux.Router, email, nickname string) {
	t.Helper()

	code, res := doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    email,
		"nickname": nickname,
		"password": "panda-pass-123",
	})
	if code != http.StatusCreated {
		t.Fatalf("register status = %d, error = %q", code, res.Error)
	}
}

func login(t *testing.T, router *mux.Router, email string) string {
	t.Helper()

	code, res := doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": "panda-pass-123",
	})
	if code != http.StatusOK {
		t.Fatalf("login status = %d, error = %q", code, res.Error)
	}
	data := res.Data.(map[string]any)
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatal("login returned empty token")
	}
	return token
}

func TestRegisterAndLogin(t *testing.T) {
	router := newUserRouter(t)

	code, res := doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "panda@market.com",
		"nickname": "판다",
		"password": "panda-pass-123",
	})
	if code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", code, http.StatusCreated)
	}
	if !res.Success || res.Message != "회원가입이 완료되었습니다." {
		t.Fatalf("unexpected envelope: success=%v message=%q", res.Success, res.Message)
	}
	data := res.Data.(map[string]any)
	if data["email"] != "panda@market.com" {
		t.Errorf("email = %v", data["email"])
	}
	if _, leaked := data["password"]; leaked {
		t.Error("password must not appear in responses")
	}

	token := login(t, router, "panda@market.com")
	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("login token does not validate: %v", err)
	}
	if claims.Nickname != "판다" {
		t.Errorf("claims.Nickname = %q", claims.Nickname)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newUserRouter(t)
	registerUser(t, router, "panda@market.com", "판다")

	code, res := doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "panda@market.com",
		"nickname": "다른판다",
		"password": "panda-pass-123",
	})
	if code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", code, http.StatusConflict)
	}
	if res.Success || res.Error != "이미 사용 중인 이메일입니다." {
		t.Fatalf("unexpected envelope: success=%v error=%q", res.Success, res.Error)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router := newUserRouter(t)
	registerUser(t, router, "panda@market.com", "판다")

	code, res := doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "panda@market.com",
		"password": "wrong-pass-123",
	})
	if code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", code, http.StatusUnauthorized)
	}
	if res.Error != "이메일 또는 비밀번호가 일치하지 않습니다." {
		t.Errorf("error = %q", res.Error)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	router := newUserRouter(t)
	registerUser(t, router, "panda@market.com", "판다")
	token := login(t, router, "panda@market.com")

	code, res := doJSON(t, router, http.MethodGet, "/users/me", token, nil)
	if code != http.StatusOK {
		t.Fatalf("get status = %d, error = %q", code, res.Error)
	}
	if data := res.Data.(map[string]any); data["email"] != "panda@market.com" {
		t.Errorf("email = %v", data["email"])
	}

	code, res = doJSON(t, router, http.MethodPatch, "/users/me", token, map[string]string{
		"nickname": "왕판다",
	})
	if code != http.StatusOK {
		t.Fatalf("patch status = %d, error = %q", code, res.Error)
	}
	if res.Message != "회원 정보가 수정되었습니다." {
		t.Errorf("message = %q", res.Message)
	}
	if data := res.Data.(map[string]any); data["nickname"] != "왕판다" {
		t.Errorf("nickname = %v", data["nickname"])
	}
}

func TestProfileRequiresToken(t *testing.T) {
	router := newUserRouter(t)

	code, res := doJSON(t, router, http.MethodGet, "/users/me", "", nil)
	if code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", code, http.StatusUnauthorized)
	}
	if res.Success {
		t.Error("success must be false without a token")
	}

	code, _ = doJSON(t, router, http.MethodGet, "/users/me", "not-a-real-token", nil)
	if code != http.StatusUnauthorized {
		t.Fatalf("garbage token status = %d, want %d", code, http.StatusUnauthorized)
	}
}
