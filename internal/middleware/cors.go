package middleware

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// Cors allows requests from the configured frontend origins, plus
// origin-less requests (curl, server-to-server, the OAuth redirect hop).
func Cors(allowedOrigins []string) func(next http.Handler) http.Handler {
	originAllowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		originAllowed[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !originAllowed[origin] {
				log.Warnf("CORS: origin not allowed for path [%s] and origin [%s]", r.URL.Path, origin)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Headers",
				"Accept, Content-Type, Content-Length, Accept-Encoding, Authorization",
			)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")

			next.ServeHTTP(w, r)
		})
	}
}
