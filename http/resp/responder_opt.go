package resp

import (
	"github.com/switchbacklabs/switchback/http/negotiate"
	"github.com/switchbacklabs/switchback/http/template"
	"github.com/switchbacklabs/switchback/logger"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithAcceptMap sets the table translating the full mime types requests state
// into the short keys templates are registered under.
//
// If no AcceptMap is provided through this option,
// the built-in table from negotiate.NewAcceptMap applies.
func WithAcceptMap(am negotiate.AcceptMap) func(*Responder) {
	return func(d *Responder) {
		d.accepts = am
	}
}

// WithCharset sets the charset stamped on the Content-Type header
// of every rendered response.
//
// If no charset is provided through this option, or cs is zero-value,
// responses carry "utf-8".
func WithCharset(cs string) func(*Responder) {
	return func(d *Responder) {
		if cs == "" {
			return
		}

		d.charset = cs
	}
}

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
//
// If no Logger is provided through this option, a default logger.Logger will be configured.
func WithLogger(log logger.Logger) func(*Responder) {
	return func(d *Responder) {
		d.logger = log
	}
}

// WithRenderer sets the provided implementation of template.Renderer
// to use for executing the templates negotiation elects.
func WithRenderer(re template.Renderer) func(*Responder) {
	return func(d *Responder) {
		d.renderer = re
	}
}

// WithStrategy sets the provided implementation of negotiate.Strategy
// to use for electing the representation each request receives.
//
// If no Strategy is provided through this option, or s is nil,
// negotiate.BestMatch applies.
func WithStrategy(s negotiate.Strategy) func(*Responder) {
	return func(d *Responder) {
		if s == nil {
			return
		}

		d.strategy = s
	}
}

// WithVary advertises through the "Vary" header that rendered responses
// differ by the request's Accept header.
func WithVary() func(*Responder) {
	return func(d *Responder) {
		d.vary = true
	}
}
