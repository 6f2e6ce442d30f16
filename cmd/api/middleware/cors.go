package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// WithCORS wraps the whole engine so preflight requests are answered
// before gin routing. An empty origin list allows any origin.
func WithCORS(h http.Handler, allowedOrigins []string) http.Handler {
	opts := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", headerRequestID},
		ExposedHeaders: []string{headerRequestID, headerSpanID},
		MaxAge:         600,
	}
	if len(allowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	return cors.New(opts).Handler(h)
}
