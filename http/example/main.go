/*

Package main is a toy example use of switchback's http stack,
focusing on the basics of:

(1) constructing Responders around different negotiation strategies;
(2) registering a template for each representation of a resource;
(3) binding gorilla/mux routes to handlers embedding a Responder;
(4) and the use of resp.Fn functional options for declaring how
	the method forms the response payload.

Once it's running, take it for a spin:

	curl -H "Accept: application/json" http://localhost:3000/people
	curl -H "Accept: text/html;q=0.4, application/xml" http://localhost:3000/people
	curl -H "Accept: application/vnd.switchback+json" http://localhost:3000/people
	curl -H "Accept: application/json" http://localhost:3000/people/json
	curl http://localhost:3000/whoami
*/
package main

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/joho/godotenv/autoload"
	"github.com/switchbacklabs/switchback"
	"github.com/switchbacklabs/switchback/http/middleware"
	"github.com/switchbacklabs/switchback/http/negotiate"
	"github.com/switchbacklabs/switchback/http/resp"
	"github.com/switchbacklabs/switchback/http/template"
	"github.com/switchbacklabs/switchback/logger"
)

const (
	// these refer to templates available for rendering
	dir    string = "tmpl/"
	asHTML string = dir + "people.html.tmpl"
	asJSON string = dir + "people.json.tmpl"
	asXML  string = dir + "people.xml.tmpl"
	asText string = dir + "people.txt.tmpl"

	whoamiJSON string = dir + "whoami.json.tmpl"
	whoamiText string = dir + "whoami.txt.tmpl"
)

//go:embed tmpl/*.tmpl
var files embed.FS

// A person is the resource every route serves,
// in whichever representation negotiation elects.
type person struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

var people = []person{
	{Name: "Ada Lovelace", Role: "analyst"},
	{Name: "Grace Hopper", Role: "admiral"},
	{Name: "Katherine Johnson", Role: "computer"},
}

// A Handler wraps a configured *resp.Responder.
// The methods attached to it are the handlers the Router
// will direct requests to.
type Handler struct {
	*resp.Responder
}

// people registers every representation of the people resource
// and lets the Responder's strategy elect the winner.
//
// The same method serves /people and /people/{ext} because
// the strategy, not the handler, decides how to read the request.
func (h Handler) people(w http.ResponseWriter, r *http.Request) {
	if err := h.Render(w, r,
		resp.Tmpl("html", asHTML),
		resp.Tmpl("json", asJSON),
		resp.Tmpl("xml", asXML),
		resp.Tmpl("txt", asText),
		resp.Data(people),
	); err != nil {
		h.Err(w, r, err)
	}
}

// whoami grabs the Responder middleware.InjectResponder stashed
// in the *http.Request.Context instead of wrapping one itself.
//
// DefaultTmpl elects "txt" the fallback, so a request accepting
// neither JSON nor text still receives the text representation.
func whoami(w http.ResponseWriter, r *http.Request) {
	d, err := resp.FromCtx(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	id, _ := r.Context().Value(switchback.RequestIDKey).(string)
	if err := d.Render(w, r,
		resp.Tmpl("json", whoamiJSON),
		resp.DefaultTmpl("txt", whoamiText),
		resp.Data(map[string]any{"requestID": id}),
	); err != nil {
		d.Err(w, r, err)
	}
}

func main() {
	l := logger.New(logger.WithEnv(switchback.EnvVarOrEnv("ENVIRONMENT", switchback.Development)))

	// NOTE: text/template keeps the JSON and XML representations
	// from being HTML-escaped into invalid documents.
	renderer := template.NewText(
		template.WithFS(files),
		template.WithFn(template.JSON()),
	)

	// accepts extends the builtin table so our vendored JSON type
	// resolves to the same short key - and template - as plain JSON.
	accepts := negotiate.NewAcceptMap(map[string]string{
		"application/vnd.switchback+json": "json",
	})

	// best ranks the Accept header's media ranges by quality value.
	best := resp.NewResponder(
		resp.WithLogger(l),
		resp.WithRenderer(renderer),
		resp.WithAcceptMap(accepts),
	)

	// trail trusts the trailing path segment,
	// so long as the Accept header corroborates it.
	trail := resp.NewResponder(
		resp.WithLogger(l),
		resp.WithRenderer(renderer),
		resp.WithAcceptMap(accepts),
		resp.WithStrategy(negotiate.PathExtension()),
	)

	// bind routes and handlers to one another.
	r := mux.NewRouter()
	r.HandleFunc("/people", Handler{best}.people).Methods(http.MethodGet)
	r.HandleFunc("/people/{ext}", Handler{trail}.people).Methods(http.MethodGet)
	r.HandleFunc("/whoami", whoami).Methods(http.MethodGet)

	// NOTE: RequestID precedes LogRequest so log lines carry the ID.
	h := handlers.RecoveryHandler()(middleware.Chain(
		r,
		middleware.RequestID(switchback.RequestIDKey),
		middleware.LogRequest(l),
		middleware.Vary(),
		middleware.Compress(),
		middleware.InjectResponder(best, switchback.ResponderKey),
	))

	srv := &http.Server{
		Addr:         switchback.EnvVarOrString("PORT", ":3000"),
		Handler:      h,
		IdleTimeout:  switchback.EnvVarOrDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		ReadTimeout:  switchback.EnvVarOrDuration("SERVER_READ_TIMEOUT", 5*time.Second),
		WriteTimeout: switchback.EnvVarOrDuration("SERVER_WRITE_TIMEOUT", 5*time.Second),
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)

	go func() {
		s := <-ch
		l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
		cancel()
	}()

	go func() {
		l.Info(fmt.Sprintf("running web server at %s", srv.Addr), nil)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			l.Error(fmt.Errorf("could not listen: %w", err).Error(), nil)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, timeout := context.WithTimeout(context.Background(), 5*time.Second)
	defer timeout()

	l.Info("shutting down web server", nil)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error(fmt.Errorf("could not shutdown: %w", err).Error(), nil)
		return
	}

	l.Info("web server shutdown successfully", nil)
}
