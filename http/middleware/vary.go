package middleware

import "net/http"

// Vary advertises through the "Vary" header that responses under the
// adapted handler differ by the request's Accept header,
// keeping shared caches from serving one client's representation to another.
func Vary() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept")
			h.ServeHTTP(w, r)
		})
	}
}
