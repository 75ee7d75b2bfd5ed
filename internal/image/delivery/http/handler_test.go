package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/pandamarket/api/pkg/auth"
	"github.com/pandamarket/api/pkg/httpx"
)

type fakeStore struct {
	savedName   string
	savedType   string
	savedSize   int64
	presignErr  error
	presignName string
}

func (s *fakeStore) Save(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	s.savedName = objectName
	s.savedType = contentType
	s.savedSize = size
	io.Copy(io.Discard, r)
	return "http://storage.local/bucket/" + objectName, nil
}

func (s *fakeStore) PresignPut(ctx context.Context, objectName string) (string, error) {
	if s.presignErr != nil {
		return "", s.presignErr
	}
	s.presignName = objectName
	return "http://storage.local/presigned/" + objectName, nil
}

func newImageRouter(store Store) *mux.Router {
	router := mux.NewRouter()
	NewImageHandler(store).RegisterRoutes(router)
	return router
}

func bearer(t *testing.T) string {
	t.Helper()
	auth.Init("image-test-secret", time.Hour)
	token, err := auth.GenerateToken(1, "판다")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return "Bearer " + token
}

func multipartBody(t *testing.T, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", fileName)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write: %v", err)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestUpload(t *testing.T) {
	store := &fakeStore{}
	router := newImageRouter(store)

	body, contentType := multipartBody(t, "panda.PNG", []byte("fake png bytes"))
	req := httptest.NewRequest(http.MethodPost, "/images/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", bearer(t))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.HasSuffix(store.savedName, ".png") {
		t.Errorf("object name = %q, want .png suffix", store.savedName)
	}
	if store.savedType != "image/png" {
		t.Errorf("content type = %q", store.savedType)
	}

	var res httpx.Response
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	data := res.Data.(map[string]any)
	url, _ := data["url"].(string)
	if !strings.HasPrefix(url, "http://storage.local/bucket/") {
		t.Errorf("url = %q", url)
	}
}

func TestUploadRejectsExtension(t *testing.T) {
	router := newImageRouter(&fakeStore{})

	body, contentType := multipartBody(t, "malware.exe", []byte("nope"))
	req := httptest.NewRequest(http.MethodPost, "/images/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", bearer(t))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var res httpx.Response
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if res.Error != "지원하지 않는 이미지 형식입니다." {
		t.Errorf("error = %q", res.Error)
	}
}

func TestUploadRejectsOversize(t *testing.T) {
	router := newImageRouter(&fakeStore{})

	body, contentType := multipartBody(t, "big.jpg", bytes.Repeat([]byte{0}, maxUploadSize+1))
	req := httptest.NewRequest(http.MethodPost, "/images/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", bearer(t))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUploadRequiresAuth(t *testing.T) {
	router := newImageRouter(&fakeStore{})

	body, contentType := multipartBody(t, "panda.png", []byte("bytes"))
	req := httptest.NewRequest(http.MethodPost, "/images/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestPresignedURL(t *testing.T) {
	store := &fakeStore{}
	router := newImageRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/images/presigned-url",
		strings.NewReader(`{"file_name":"panda.jpg"}`))
	req.Header.Set("Authorization", bearer(t))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var res httpx.Response
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	data := res.Data.(map[string]any)
	if key, _ := data["key"].(string); !strings.HasSuffix(key, ".jpg") {
		t.Errorf("key = %q, want .jpg suffix", key)
	}
	if url, _ := data["url"].(string); !strings.HasPrefix(url, "http://storage.local/presigned/") {
		t.Errorf("url = %q", url)
	}
}

func TestPresignedURLSurfacesStorageError(t *testing.T) {
	router := newImageRouter(&fakeStore{presignErr: errors.New("bucket unreachable")})

	req := httptest.NewRequest(http.MethodPost, "/images/presigned-url",
		strings.NewReader(`{"file_name":"panda.jpg"}`))
	req.Header.Set("Authorization", bearer(t))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var res httpx.Response
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if res.Error != "bucket unreachable" {
		t.Errorf("error = %q, want underlying message", res.Error)
	}
}
