package httpapi

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// requireToken gates a route subtree behind a bearer capability token.
// Callers must only mount it with a non-empty token; the admin surface is
// not mounted at all when no token is configured.
func requireToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				writeJSONError(w, http.StatusUnauthorized, "missing or invalid token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
