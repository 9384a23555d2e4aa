package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}

// writeServiceError translates core errors into HTTP responses. Not-found
// and validation failures keep their structure on the wire; anything else is
// an opaque 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		writeError(w, http.StatusNotFound, string(nf.Kind)+"_not_found", nf.Error())
		return
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, "validation_failed", ve.Error())
		return
	}

	writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
}

// idParam parses the {id} URL parameter. False means the response has
// already been written.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return 0, false
	}
	return id, true
}
