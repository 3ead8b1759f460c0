package trailhead

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	// TODO: configurable env files
	_ "github.com/joho/godotenv/autoload"
	"github.com/switchbacklabs/switchback"
	"github.com/switchbacklabs/switchback/http/negotiate"
	"github.com/switchbacklabs/switchback/http/resp"
	"github.com/switchbacklabs/switchback/http/router"
	"github.com/switchbacklabs/switchback/http/template"
	"github.com/switchbacklabs/switchback/logger"
)

// A Trailhead manages and exposes all components of a switchback app to one another.
type Trailhead struct {
	*resp.Responder
	*router.Router

	accepts  negotiate.AcceptMap
	ctx      context.Context
	env      switchback.Environment
	fsys     fs.FS
	l        logger.Logger
	renderer template.Renderer
	srv      *http.Server
	strategy negotiate.Strategy
}

// New constructs a Trailhead from the provided options.
// Options passed into New apply first;
// default options then fill in whatever they left unconfigured.
func New(opts ...Option) (*Trailhead, error) {
	th := new(Trailhead)
	followups := make([]OptFollowup, 0)

	// NOTE: calling an option configures the *Trailhead under construction.
	// Some options require data from other options.
	// These options, therefore, must delay configuring the *Trailhead
	// until the immediate options have configured it first.
	// They return an OptFollowup to be called after the initial set of options are run.
	for _, opt := range append(opts, defaultOpts()...) {
		fn, err := opt(th)
		if err != nil {
			return nil, badConfig(err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, badConfig(err)
		}
	}

	return th, nil
}

// EmitAcceptMap returns the accept table the app's Responder negotiates with.
func (th *Trailhead) EmitAcceptMap() negotiate.AcceptMap { return th.accepts }

// EmitEnv returns the Environment the app operates in.
func (th *Trailhead) EmitEnv() switchback.Environment { return th.env }

// EmitLogger returns the logger.Logger shared across the app.
func (th *Trailhead) EmitLogger() logger.Logger { return th.l }

// Serve begins the web server.
//
// These, and [*Trailhead.Shutdown], stop Serve:
//
//   - canceling the context supplied through [WithContext]
//   - os.Interrupt
//   - syscall.SIGHUP
//   - syscall.SIGINT
//   - syscall.SIGQUIT
//   - syscall.SIGTERM
func (th *Trailhead) Serve() error {
	base := th.ctx
	if base == nil {
		base = context.Background()
	}

	ctx, cancel := context.WithCancel(base)
	defer cancel()

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
		select {
		case s := <-ch:
			th.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			cancel()
		case <-ctx.Done():
		}
	}()

	go func() {
		th.l.Info(fmt.Sprintf("running web server at %s", th.srv.Addr), nil)
		th.srv.Handler = th.Router
		if err := th.srv.ListenAndServe(); err != http.ErrServerClosed {
			th.l.Error(fmt.Errorf("could not listen: %w", err).Error(), nil)
			cancel()
		}
	}()

	<-ctx.Done()
	return th.Shutdown()
}

// Shutdown shutdowns the web server.
func (th *Trailhead) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	th.l.Info("shutting down web server", nil)
	err := th.srv.Shutdown(shutdownCtx)
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	th.l.Info("web server shutdown successfully", nil)
	return nil
}

// badConfig stamps err as a configuration problem,
// unless an upstream constructor already did.
func badConfig(err error) error {
	if errors.Is(err, switchback.ErrBadConfig) {
		return err
	}

	return fmt.Errorf("%w: %s", switchback.ErrBadConfig, err)
}
