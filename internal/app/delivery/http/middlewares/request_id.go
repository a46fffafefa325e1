package middlewares

import (
	"context"
	"net/http"

	"caregate-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

// RequestID assigns every request an id, honoring one the caller already
// sent. The id travels through context into the FHIR client logs and the
// mutation audit trail.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(constvars.HeaderRequestID, requestID)

		ctx := context.WithValue(r.Context(), constvars.ContextRequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
