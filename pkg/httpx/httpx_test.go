package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/pandamarket/api/pkg/apperr"
)

func doRequest(t *testing.T, fn HandlerFunc) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	Handle(fn)(rec, req)

	var res Response
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	return rec, res
}

func TestHandlePassesThroughSuccess(t *testing.T) {
	rec, res := doRequest(t, func(w http.ResponseWriter, r *http.Request) error {
		RespondData(w, http.StatusOK, map[string]string{"ok": "yes"})
		return nil
	})
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if !res.Success {
		t.Error("success = false")
	}
}

func TestHandleMapsApplicationError(t *testing.T) {
	rec, res := doRequest(t, func(w http.ResponseWriter, r *http.Request) error {
		return apperr.Forbidden("권한이 없습니다.")
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if res.Error != "권한이 없습니다." {
		t.Errorf("error = %q", res.Error)
	}
	if res.Success {
		t.Error("success = true on failure")
	}
}

func TestHandleMapsRecordNotFound(t *testing.T) {
	rec, res := doRequest(t, func(w http.ResponseWriter, r *http.Request) error {
		return fmt.Errorf("loading product: %w", gorm.ErrRecordNotFound)
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if res.Error != "존재하지 않는 리소스입니다." {
		t.Errorf("error = %q", res.Error)
	}
}

func TestHandleMapsValidationErrors(t *testing.T) {
	rec, res := doRequest(t, func(w http.ResponseWriter, r *http.Request) error {
		return gorm.ErrInvalidData
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if res.Error != gorm.ErrInvalidData.Error() {
		t.Errorf("error = %q, want underlying message", res.Error)
	}
}

func TestHandleHidesUnknownErrors(t *testing.T) {
	rec, res := doRequest(t, func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("pq: connection refused on 10.0.0.3")
	})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if res.Error != "서버 오류가 발생했습니다." {
		t.Errorf("error = %q, internals must not leak", res.Error)
	}
	if strings.Contains(res.Error, "10.0.0.3") {
		t.Error("internal detail leaked to client")
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"name":"판다마켓"}`))
	if err := DecodeJSON(req, &dst); err != nil {
		t.Fatalf("valid body rejected: %v", err)
	}
	if dst.Name != "판다마켓" {
		t.Errorf("name = %q", dst.Name)
	}

	req = httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{broken`))
	err := DecodeJSON(req, &dst)
	if err == nil {
		t.Fatal("broken body accepted")
	}
	if apperr.StatusOf(err) != http.StatusBadRequest {
		t.Errorf("want 400, got %v", err)
	}
}
