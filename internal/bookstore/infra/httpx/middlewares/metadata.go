package middlewares

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// contextKey is an unexported type for context keys in this package, so keys
// cannot collide with other packages using the same underlying string.
type contextKey string

const (
	// HeaderXRequestID is the wire header carrying the request id.
	HeaderXRequestID = "X-Request-Id"

	// ContextKeyRequestID is the context key for the request id.
	ContextKeyRequestID contextKey = "x-request-id"
)

// AttachRequestMetadata makes a request id available to handlers and echoes
// it back on the response. An id supplied by the caller wins; otherwise the
// chi RequestID middleware value is used, with a uuid as last resort.
func AttachRequestMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderXRequestID)
		if requestID == "" {
			requestID = middleware.GetReqID(r.Context())
		}
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), ContextKeyRequestID, requestID)
		w.Header().Set(HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request id attached by
// AttachRequestMetadata, or "" when the middleware did not run.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyRequestID).(string)
	return id
}
