package middlewares

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORSMiddleware allows browser clients from origins. A "*" entry allows any
// origin, in which case credentials are not allowed.
func CORSMiddleware(origins []string) func(http.Handler) http.Handler {
	opts := []handlers.CORSOption{
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", RequestIDHeader}),
		handlers.ExposedHeaders([]string{RequestIDHeader}),
		handlers.MaxAge(600),
	}

	wildcard := false
	for _, o := range origins {
		if o == "*" {
			wildcard = true
		}
	}
	if !wildcard {
		opts = append(opts, handlers.AllowCredentials())
	}

	return handlers.CORS(opts...)
}
