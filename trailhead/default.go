package trailhead

import (
	"context"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/switchbacklabs/switchback"
	"github.com/switchbacklabs/switchback/http/middleware"
	"github.com/switchbacklabs/switchback/http/negotiate"
	"github.com/switchbacklabs/switchback/http/resp"
	"github.com/switchbacklabs/switchback/http/router"
	"github.com/switchbacklabs/switchback/http/template"
	"github.com/switchbacklabs/switchback/logger"
)

const (
	// Accept table defaults
	acceptMapEnvVar = "ACCEPT_MAP_FILE"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"

	// Web server defaults
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	shutdownTimeout = 5 * time.Second
)

// defaultOpts returns the Options filling in whatever the Options
// passed to New left unconfigured.
//
// Followups run in this order; later components consume earlier ones,
// ending with the Router injecting the finished Responder.
func defaultOpts() []Option {
	return []Option{
		defaultEnv(),
		defaultLogger(),
		defaultAcceptMap(),
		defaultRenderer(),
		defaultResponder(),
		defaultRouter(),
		defaultServer(),
	}
}

func defaultEnv() Option {
	return func(th *Trailhead) (OptFollowup, error) {
		return func() error {
			if th.env != "" {
				return nil
			}

			th.env = switchback.EnvVarOrEnv(environmentEnvVar, switchback.Development)
			return nil
		}, nil
	}
}

func defaultLogger() Option {
	return func(th *Trailhead) (OptFollowup, error) {
		return func() error {
			if th.l != nil {
				return nil
			}

			opts := []logger.LoggerOptFn{logger.WithEnv(th.env)}
			if ll := logger.NewLogLevel(os.Getenv(logLevelEnvVar)); ll != logger.LogLevelUnk {
				opts = append(opts, logger.WithLevel(ll))
			}

			th.l = logger.New(opts...)
			return nil
		}, nil
	}
}

// defaultAcceptMap merges the YAML table named by the ACCEPT_MAP_FILE
// env var over the builtin one; absent that, the builtin table serves alone.
func defaultAcceptMap() Option {
	return func(th *Trailhead) (OptFollowup, error) {
		return func() error {
			if th.accepts.Len() > 0 {
				return nil
			}

			if fp := os.Getenv(acceptMapEnvVar); fp != "" {
				am, err := negotiate.AcceptMapFromFile(fp)
				if err != nil {
					return err
				}

				th.accepts = am
				return nil
			}

			th.accepts = negotiate.NewAcceptMap(nil)
			return nil
		}, nil
	}
}

// defaultRenderer constructs a text template.Renderer over the filesystem
// supplied through WithFS, with the "json" helper preloaded.
//
// NOTE: text templates keep JSON and XML representations
// from being HTML-escaped into invalid documents.
func defaultRenderer() Option {
	return func(th *Trailhead) (OptFollowup, error) {
		return func() error {
			if th.renderer != nil {
				return nil
			}

			opts := []template.RendererOptFn{template.WithFn(template.JSON())}
			if th.fsys != nil {
				opts = append(opts, template.WithFS(th.fsys))
			}

			th.renderer = template.NewText(opts...)
			return nil
		}, nil
	}
}

// defaultResponder configures the [*resp.Responder] to be used by http.Handlers.
func defaultResponder() Option {
	return func(th *Trailhead) (OptFollowup, error) {
		return func() error {
			if th.Responder != nil {
				return nil
			}

			opts := []resp.ResponderOptFn{
				resp.WithLogger(th.l),
				resp.WithRenderer(th.renderer),
				resp.WithAcceptMap(th.accepts),
			}
			if th.strategy != nil {
				opts = append(opts, resp.WithStrategy(th.strategy))
			}

			th.Responder = resp.NewResponder(opts...)
			return nil
		}, nil
	}
}

// defaultRouter constructs the [*router.Router] to be used by the web server,
// applying the standard middleware stack to every route.
func defaultRouter() Option {
	return func(th *Trailhead) (OptFollowup, error) {
		return func() error {
			if th.Router != nil {
				return nil
			}

			th.Router = router.New()
			th.Router.OnEveryRequest(
				middleware.RequestID(switchback.RequestIDKey),
				middleware.LogRequest(th.l),
				middleware.Vary(),
				middleware.Compress(),
				middleware.InjectResponder(th.Responder, switchback.ResponderKey),
			)
			return nil
		}, nil
	}
}

// defaultServer constructs a default [*http.Server],
// configured by the PORT and SERVER_*_TIMEOUT env vars.
func defaultServer() Option {
	return func(th *Trailhead) (OptFollowup, error) {
		return func() error {
			if th.srv != nil {
				return nil
			}

			port := switchback.EnvVarOrString(portEnvVar, DefaultPort)
			if port[0] != ':' {
				port = ":" + port
			}

			th.srv = &http.Server{
				Addr:         port,
				IdleTimeout:  switchback.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
				ReadTimeout:  switchback.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
				WriteTimeout: switchback.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
			}
			if th.ctx != nil {
				ctx := th.ctx
				th.srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
			}

			return nil
		}, nil
	}
}
