package httpapi

import (
	"net/http"

	"dealerd/internal/compare"
)

// sessionCookie carries the visitor's comparison session token.
const sessionCookie = "dealerd_session"

// sessionToken returns the visitor's token, or "" when none was sent.
func sessionToken(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// ensureSession returns the visitor's token, minting one and setting the
// cookie when absent.
func ensureSession(w http.ResponseWriter, r *http.Request, reg *compare.Registry) (string, error) {
	if tok := sessionToken(r); tok != "" {
		return tok, nil
	}
	tok, err := reg.NewToken()
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return tok, nil
}
