package resp

import (
	"fmt"
	"net/http"

	"github.com/switchbacklabs/switchback"
	"github.com/switchbacklabs/switchback/http/negotiate"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while applying all
// functional options.
//
// Notably, a Response holds the *negotiate.Registry of short mime key, template pairings
// available for responding to the HTTP request.
type Response struct {
	w         http.ResponseWriter
	r         *http.Request
	closeBody bool
	code      int
	data      any
	registry  *negotiate.Registry
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data stores the provided value for rendering the winning template with.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// DefaultTmpl registers tmpl under the short mime key and marks the pairing
// as the default representation, the one Render falls back on when
// negotiation matches nothing.
//
// Registering a second default overwrites the first.
func DefaultTmpl(key, tmpl string) Fn {
	return func(_ Responder, r *Response) error {
		if key == "" || tmpl == "" {
			return fmt.Errorf("%w: key and tmpl required", switchback.ErrNotValid)
		}

		r.registry.RegisterDefault(key, tmpl)
		return nil
	}
}

// Err sets the status code http.StatusInternalServerError and logs the error.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if e != nil {
			d.logger.Error(e.Error(), newLogContext(r.r, e, map[string]any{"data": r.data}))
		}

		if err := Code(http.StatusInternalServerError)(d, r); err != nil {
			return err
		}

		return nil
	}
}

// Tmpl registers tmpl as the representation to render
// when negotiation elects the short mime key.
//
// Registering a key twice overwrites the earlier template.
func Tmpl(key, tmpl string) Fn {
	return func(_ Responder, r *Response) error {
		if key == "" || tmpl == "" {
			return fmt.Errorf("%w: key and tmpl required", switchback.ErrNotValid)
		}

		r.registry.Register(key, tmpl)
		return nil
	}
}
