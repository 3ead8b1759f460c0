package trailhead

import (
	"context"
	"io/fs"
	"net/http"
	"strings"

	"github.com/switchbacklabs/switchback"
	"github.com/switchbacklabs/switchback/http/negotiate"
	"github.com/switchbacklabs/switchback/http/resp"
	"github.com/switchbacklabs/switchback/http/router"
	"github.com/switchbacklabs/switchback/http/template"
	"github.com/switchbacklabs/switchback/logger"
)

// An Option configures a *Trailhead either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Options requiring data from other Options delay configuring the *Trailhead
// until that data is available,
// returning an OptFollowup to be called once every immediate Option has run.
//
// WithLogger is an example of the first.
// An unexported field on the passed in *Trailhead is updated with the enclosed value.
//
// The default options are examples of the second.
// Each fills its component only when the caller's Options left it unconfigured.
type Option func(th *Trailhead) (OptFollowup, error)
type OptFollowup func() error

// WithAcceptMap exposes the provided accept table to the switchback app.
func WithAcceptMap(am negotiate.AcceptMap) Option {
	return func(th *Trailhead) (OptFollowup, error) {
		th.accepts = am
		return nil, nil
	}
}

// WithContext exposes the provided context.Context to the switchback app.
// The web server scopes its base context to it
// and [*Trailhead.Serve] stops when it is canceled.
func WithContext(ctx context.Context) Option {
	return func(th *Trailhead) (OptFollowup, error) {
		th.ctx = ctx
		return nil, nil
	}
}

// WithEnv casts the provided string into a valid switchback.Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the Environment is Development.
func WithEnv(env string) Option {
	return func(th *Trailhead) (OptFollowup, error) {
		e := switchback.Environment(strings.ToUpper(env))
		if err := e.Valid(); err != nil {
			e = switchback.EnvVarOrEnv(environmentEnvVar, switchback.Development)
		}

		th.env = e
		return nil, nil
	}
}

// WithFS exposes the provided filesystem to the switchback app;
// the default renderer parses templates out of it.
func WithFS(fsys fs.FS) Option {
	return func(th *Trailhead) (OptFollowup, error) {
		th.fsys = fsys
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the switchback app.
func WithLogger(l logger.Logger) Option {
	return func(th *Trailhead) (OptFollowup, error) {
		th.l = l
		return nil, nil
	}
}

// WithRenderer exposes the provided template.Renderer to the switchback app.
func WithRenderer(r template.Renderer) Option {
	return func(th *Trailhead) (OptFollowup, error) {
		th.renderer = r
		return nil, nil
	}
}

// WithResponder exposes the *resp.Responder to the switchback app.
//
// A Responder supplied here is taken whole;
// the logger, renderer, accept table and strategy other Options configure
// only shape the default Responder.
func WithResponder(d *resp.Responder) Option {
	return func(th *Trailhead) (OptFollowup, error) {
		th.Responder = d
		return nil, nil
	}
}

// WithRouter exposes the *router.Router to the switchback app.
//
// A Router supplied here keeps its own middleware stack;
// the standard stack only applies to the default Router.
func WithRouter(r *router.Router) Option {
	return func(th *Trailhead) (OptFollowup, error) {
		th.Router = r
		return nil, nil
	}
}

// WithServer exposes the *http.Server to the switchback app.
func WithServer(s *http.Server) Option {
	return func(th *Trailhead) (OptFollowup, error) {
		th.srv = s
		return nil, nil
	}
}

// WithStrategy sets the negotiation strategy the default Responder applies.
func WithStrategy(s negotiate.Strategy) Option {
	return func(th *Trailhead) (OptFollowup, error) {
		th.strategy = s
		return nil, nil
	}
}
