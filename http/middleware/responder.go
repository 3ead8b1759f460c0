package middleware

import (
	"context"
	"net/http"

	"github.com/switchbacklabs/switchback"
	"github.com/switchbacklabs/switchback/http/resp"
)

// InjectResponder stores a *resp.Responder in the *http.Request.Context
// thereby making it available to handlers through resp.FromCtx.
func InjectResponder(rp *resp.Responder, key switchback.Key) Adapter {
	if rp == nil || key == "" {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), key, rp)))
		})
	}
}
