// Package middleware holds adapters and in house middlewares
package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"herodex/internal/platform/logger"
	pnet "herodex/internal/platform/net"
)

// RequestID propagates X-Request-ID or mints a fresh uuid, storing it on
// both the request context and the response header
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		ctx := pnet.WithRequestID(r.Context(), reqID)
		ctx = logger.WithRequest(ctx, reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
