package trailhead

import (
	"net/http"

	"github.com/switchbacklabs/switchback/http/resp"
)

// maintenanceRetryAfter steers well-behaved clients to check back in ten minutes.
const maintenanceRetryAfter = "600"

// MaintenanceHandler responds to every request with 503 Service Unavailable,
// rendering whichever representation of the maintenance notice d negotiates
// from the opts. Wire it up with [*router.Router.CatchAll] when entering
// maintenance mode.
//
// When rendering fails - say, no maintenance templates were registered -
// the 503 and Retry-After still go out, just without a body.
func MaintenanceHandler(d *resp.Responder, opts ...resp.Fn) http.HandlerFunc {
	opts = append(opts, resp.Code(http.StatusServiceUnavailable))

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", maintenanceRetryAfter)
		if err := d.Render(w, r, opts...); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}
}
