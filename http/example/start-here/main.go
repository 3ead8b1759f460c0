/*

start-here provides a toy example use of switchback's http stack,
focusing on the basics of:

(1) constructing a default Trailhead;
(2) binding routes to handlers;
(3) using resp.Responder methods for responding to requests;
(4) and the use of resp.Fn functional options for declaring how
	the method forms the response payload.
*/
package main

import (
	"embed"
	"fmt"
	"net/http"

	. "github.com/switchbacklabs/switchback/http/resp"
	"github.com/switchbacklabs/switchback/http/router"
	"github.com/switchbacklabs/switchback/trailhead"
)

const (
	// these refer to templates available for rendering
	dir  string = "tmpl/"
	page string = dir + "hello.html.tmpl"
	feed string = dir + "hello.json.tmpl"
)

//go:embed tmpl/*.tmpl
var files embed.FS

// A TrailheadHandler wraps a configured *Trailhead.
// The methods attached to it are the handlers the Router
// will direct requests to.
type TrailheadHandler struct {
	*trailhead.Trailhead
}

// hello is a fully-formed use of Responder,
// registering an HTML and a JSON representation of the same greeting
// and letting content negotiation elect between them.
func (h TrailheadHandler) hello(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"sick": "such data",
		"wow":  "so data",
		"ooh":  "dataaaa",
	}
	if err := h.Render(w, r, Tmpl("html", page), Tmpl("json", feed), Data(data)); err != nil {
		h.Err(w, r, err)
	}
}

func main() {
	// construct a Trailhead using all defaults,
	// parsing templates out of the embedded filesystem.
	th, err := trailhead.New(trailhead.WithFS(files))
	if err != nil {
		fmt.Println(err)
		return
	}

	// wrap the constructed Trailhead so it is exposed to all HTTP handlers.
	h := TrailheadHandler{th}

	// bind routes and handlers to one another.
	// this is a group of routes that share a middleware stack.
	// in this case, no additional middleware is needed
	// beyond the default stack set for every request.
	th.HandleRoutes([]router.Route{
		{Path: "/hello", Method: http.MethodGet, Handler: h.hello},
		{Path: "/", Method: http.MethodGet, Handler: h.hello},
	})

	// start the web server until receiving a signal to stop.
	if err := th.Serve(); err != nil {
		fmt.Println(err)
		return
	}
}
