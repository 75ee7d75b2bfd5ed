package http

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/pandamarket/api/internal/middleware"
	"github.com/pandamarket/api/pkg/apperr"
	"github.com/pandamarket/api/pkg/httpx"
)

// maxUploadSize caps direct uploads at 5MB
const maxUploadSize = 5 << 20

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// Store abstracts the object storage the image handlers write to
type Store interface {
	Save(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error)
	PresignPut(ctx context.Context, objectName string) (string, error)
}

// ImageHandler handles image upload requests
type ImageHandler struct {
	store Store
}

// NewImageHandler creates a new image handler
func NewImageHandler(store Store) *ImageHandler {
	return &ImageHandler{store: store}
}

// objectName builds a collision-free storage key keeping the original
// extension.
func objectName(fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := contentTypes[ext]; !ok {
		return "", apperr.BadRequest("지원하지 않는 이미지 형식입니다.")
	}
	return uuid.New().String() + ext, nil
}

// Upload handles POST /images/upload
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return apperr.BadRequest("이미지 파일이 필요합니다.")
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		return apperr.BadRequest("이미지 파일이 필요합니다.")
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		return apperr.BadRequest("이미지 크기는 5MB를 넘을 수 없습니다.")
	}

	name, err := objectName(header.Filename)
	if err != nil {
		return err
	}

	url, err := h.store.Save(r.Context(), name, file, header.Size, contentTypes[strings.ToLower(filepath.Ext(name))])
	if err != nil {
		return err
	}

	httpx.RespondData(w, http.StatusCreated, map[string]string{"url": url})
	return nil
}

// PresignedURL handles POST /images/presigned-url
func (h *ImageHandler) PresignedURL(w http.ResponseWriter, r *http.Request) error {
	var req struct {
		FileName string `json:"file_name"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}
	if req.FileName == "" {
		return apperr.BadRequest("파일명은 필수값입니다.")
	}

	name, err := objectName(req.FileName)
	if err != nil {
		return err
	}

	url, err := h.store.PresignPut(r.Context(), name)
	if err != nil {
		// Storage collaborator failures surface to the client as-is.
		return apperr.BadRequest(err.Error())
	}

	httpx.RespondData(w, http.StatusOK, map[string]string{"url": url, "key": name})
	return nil
}

// RegisterRoutes registers all image routes
func (h *ImageHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/images/upload", middleware.RequireAuth(httpx.Handle(h.Upload))).Methods("POST")
	router.HandleFunc("/images/presigned-url", middleware.RequireAuth(httpx.Handle(h.PresignedURL))).Methods("POST")
}
