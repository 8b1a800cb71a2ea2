package server

import (
	"crypto/subtle"
	"net/http"
)

type admin struct {
	key             string
	notFoundHandler http.Handler
}

func newAdmin(key string, notFoundHandler http.Handler) *admin {
	return &admin{
		key:             key,
		notFoundHandler: notFoundHandler,
	}
}

// middleware hides next behind a not found response unless the request
// carries the admin key. An empty key disables next entirely.
func (a *admin) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, _ := r.Cookie("X-Admin-Key"); a.key != "" && cookie != nil &&
			subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(a.key)) == 1 {
			next.ServeHTTP(w, r)
			return
		}

		a.notFoundHandler.ServeHTTP(w, r)
	})
}
