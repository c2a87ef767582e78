package web

import (
	"net/http"

	"github.com/google/uuid"
)

const sessionCookie = "storefront_session"

// cartID resolves the request's cart identity from the session cookie,
// issuing a fresh one when absent. Each session owns exactly one cart.
func cartID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
