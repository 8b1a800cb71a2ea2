package server

import (
	"net/http"
)

// headersMiddleware marks every response as private to the client.
// Ciphertexts and plaintexts must not end up in shared caches or search indexes.
func headersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Robots-Tag", "noindex, nofollow")
		h.Set("Cache-Control", "no-store")
		h.Set("X-Content-Type-Options", "nosniff")
		next.ServeHTTP(w, r)
	})
}

func hostMiddleware(host string, next http.Handler) http.Handler {
	if host == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Host != host {
			w.Header().Set("Location", "//"+host+r.URL.RequestURI())
			// Preserves method and body so redirected POSTs still work
			w.WriteHeader(http.StatusPermanentRedirect)
			return
		}

		next.ServeHTTP(w, r)
	})
}
