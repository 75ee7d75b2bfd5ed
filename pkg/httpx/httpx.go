package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/pandamarket/api/pkg/apperr"
	"github.com/pandamarket/api/pkg/logger"
)

// Response is the uniform JSON envelope for every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RespondJSON writes a response envelope with the given status.
func RespondJSON(w http.ResponseWriter, status int, res Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(res)
}

// RespondData writes a successful envelope wrapping data.
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, Response{Success: true, Data: data})
}

// RespondMessage writes a successful envelope with a message and optional data.
func RespondMessage(w http.ResponseWriter, status int, message string, data interface{}) {
	RespondJSON(w, status, Response{Success: true, Message: message, Data: data})
}

// RespondError writes a failed envelope carrying a user-facing message.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, Response{Success: false, Error: message})
}

// DecodeJSON decodes a request body into dst.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.BadRequest("요청 본문이 올바르지 않습니다.")
	}
	return nil
}

// validationErrs is the set of ORM errors reported back to the caller
// verbatim as bad requests rather than hidden behind a 500.
var validationErrs = []error{
	gorm.ErrInvalidData,
	gorm.ErrInvalidField,
	gorm.ErrInvalidValue,
	gorm.ErrMissingWhereClause,
}

// HandlerFunc is a request handler that reports failure instead of
// writing error responses itself.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts a HandlerFunc into a net/http handler. All error
// translation lives here: application errors keep their status and
// message, missing records become 404, ORM validation errors become
// 400, and anything else is logged and returned as a generic 500.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			RespondError(w, appErr.Status, appErr.Message)
			return
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(w, http.StatusNotFound, "존재하지 않는 리소스입니다.")
			return
		}

		for _, verr := range validationErrs {
			if errors.Is(err, verr) {
				RespondError(w, http.StatusBadRequest, err.Error())
				return
			}
		}

		logger.Error(r.Context()).
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		RespondError(w, http.StatusInternalServerError, "서버 오류가 발생했습니다.")
	}
}
