package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// CORS allows the configured frontend origins (case-insensitive) and answers
// preflight requests with 200 so they never reach the route guards.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o = strings.ToLower(strings.TrimSpace(o)); o != "" {
			allowed[o] = true
		}
	}

	return cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return allowed[strings.ToLower(strings.TrimSpace(origin))]
		},
		AllowedMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Requested-With", TraceIDHeader},
		ExposedHeaders:     []string{"Content-Disposition", TraceIDHeader},
		AllowCredentials:   true,
		MaxAge:             300,
		OptionsPassthrough: false,
	})
}
