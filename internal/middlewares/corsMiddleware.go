package middlewares

import (
	"net/http"
	"os"
	"strings"
)

var allowedOrigins []string

func init() {
	if allowed := os.Getenv("ALLOWED_ORIGINS"); allowed != "" {
		allowedOrigins = strings.Split(allowed, ",")
	}
}

// CorsMiddleware allows the origins listed in ALLOWED_ORIGINS, or any origin
// when the variable is unset (the public showcase site is served elsewhere).
func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if len(allowedOrigins) == 0 {
			setCorsHeaders(w, "*")
		} else {
			for _, allowed := range allowedOrigins {
				if strings.TrimSpace(allowed) == origin {
					setCorsHeaders(w, allowed)
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					break
				}
			}
		}

		// Handle preflight OPTIONS requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func setCorsHeaders(w http.ResponseWriter, origin string) {
	w.Header().Set("Access-Control-Allow-Origin", origin)
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
	w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")
}
