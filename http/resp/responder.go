package resp

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"

	"github.com/switchbacklabs/switchback"
	"github.com/switchbacklabs/switchback/http/negotiate"
	"github.com/switchbacklabs/switchback/http/template"
	"github.com/switchbacklabs/switchback/logger"
)

const (
	responderFrames = 0

	defaultCharset = "utf-8"
)

// Responder maintains reusable pieces for responding to HTTP requests
// with whichever registered representation a request negotiates.
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
// Meaning, one needs only application-wide configuration of how HTTP responses should look:
// the template.Renderer producing bodies, the negotiate.Strategy electing representations,
// the negotiate.AcceptMap translating mime types, and the charset stamped on Content-Type.
// Our suggestion does not exclude creating diverse Responders
// for non-overlapping segments of an application,
// say, one negotiating off the Accept header and another off the URL path.
//
// When handling a specific HTTP request, calling code supplies the available
// representations, data, and so forth through Fn functions. While one can create
// functions of the same type, the Responder and Response structs do not expose
// much - if anything - to interact with.
type Responder struct {
	logger logger.Logger

	// Initialized template renderer
	renderer template.Renderer

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool

	// Table translating the full mime types requests state
	// into the short keys templates are registered under
	accepts negotiate.AcceptMap

	// Strategy electing the representation each request receives
	strategy negotiate.Strategy

	// Charset stamped on the Content-Type header
	charset string

	// Whether rendered responses advertise Accept in the Vary header
	vary bool
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	// ranging over opts may or may not overwrite defaults
	d := &Responder{
		accepts:  negotiate.NewAcceptMap(nil),
		charset:  defaultCharset,
		pool:     &sync.Pool{New: func() any { return new(bytes.Buffer) }},
		strategy: negotiate.BestMatch(),
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	return d
}

// Err wraps http.Error(), logging the error causing the failure state.
//
// Use in exceptional circumstances when no Render can occur.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	rr, nested := doer.do(w, r, append(opts, Err(err))...)
	defer r.Body.Close()
	if nested != nil {
		err = fmt.Errorf("%w: %s", err, nested)
	}

	var msg string
	if err != nil {
		msg = err.Error()
	}

	if rr.code == 0 {
		rr.code = http.StatusInternalServerError
	}

	http.Error(w, msg, rr.code)
}

// Render writes the representation of the response negotiated between
// the templates registered by the passed in Fns
// and the preferences the *http.Request states.
//
// Tmpl and DefaultTmpl register the short mime key, template pairings
// available to this response; the Responder's negotiate.Strategy reads
// the request's Accept header and URL path against those registrations.
// When the strategy matches nothing, Render falls back to the default
// registration and the strategy's fallback content type,
// noting the mismatch through the configured logger.
//
// The winning template renders with the value passed into Data, if any,
// into a buffer first, so a failed render writes no partial body.
// Only then does Render stamp "Content-Type: <type>; charset=<charset>",
// write the status code set by Code - http.StatusOK when none was -
// and the body.
//
// Render fails before writing anything when no templates were registered
// or no template.Renderer was configured, both wrapping
// switchback.ErrBadConfig; the caller owns the response in those cases,
// most simply by handing the error to Err.
func (doer *Responder) Render(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.closeBody {
		defer r.Body.Close()
	}

	if doer.renderer == nil {
		return fmt.Errorf("%w: no renderer configured", switchback.ErrBadConfig)
	}

	if rr.registry.Empty() {
		return fmt.Errorf("%w: no templates registered", switchback.ErrBadConfig)
	}

	accept := r.Header.Get("Accept")
	res := doer.strategy.Negotiate(rr.registry, doer.accepts, accept, r.URL.Path)
	if !res.Matched {
		tmpl, err := rr.registry.DefaultTemplate()
		if err != nil {
			return err
		}

		res = negotiate.Result{
			ContentType: doer.strategy.Fallback(),
			Key:         rr.registry.Default(),
			Template:    tmpl,
		}

		data := map[string]any{"accept": accept, "path": r.URL.Path, "default": res.Key}
		doer.logger.Warn("no representation matched, responding with default", newLogContext(r, nil, data))
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := doer.renderer.Render(b, res.Template, rr.data); err != nil {
		err = fmt.Errorf("cannot render %q: %w", res.Template, err)
		doer.logger.Error(err.Error(), newLogContext(r, err, nil))
		return err
	}

	w.Header().Set("Content-Type", res.ContentType+"; charset="+doer.charset)
	if doer.vary {
		w.Header().Add("Vary", "Accept")
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	w.WriteHeader(rr.code)
	if _, err := b.WriteTo(w); err != nil {
		err = fmt.Errorf("cannot write response: %w", err)
		doer.logger.Error(err.Error(), newLogContext(r, err, nil))
		return err
	}

	return nil
}

// do applies all options to the passed in http.ResponseWriter and *http.Request.
//
// do closes the *http.Request.Body, which no calling code can read from again.
//
// Calling code ought to pass Options in the correct order.
// An option requiring something set by another one should come after.
// do nonetheless attempts to retry calling functional options until all do not return errors or,
// a set of options unable to not return errors is reached.
//
// Should all options apply successfully, do returns a validly formed *Response.
func (doer *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	resp := &Response{
		closeBody: true,
		w:         w,
		r:         r,
		registry:  negotiate.NewRegistry(),
	}

	var err error
	redos := make([]Fn, 0)
	for _, opt := range opts {
		if err = opt(*doer, resp); err != nil {
			redos = append(redos, opt)
		}
	}

	var i int
	for i < len(redos) {
		// NOTE: because doer.redo mutates the length of redos,
		// confirm we are running up against a set of functions
		// that will not return anything other than errors by checking
		// the length of redos has not changed since calling doer.redo.
		i = len(redos)
		redos = doer.redo(resp, redos...)
	}

	// NOTE: wrapup errors to send back
	if len(redos) != 0 {
		for i, opt := range redos {
			nested := opt(*doer, resp)
			if i == 0 {
				err = nested
				continue
			}
			err = fmt.Errorf("%w: %s", nested, err)
		}
	}

	if err != nil {
		return resp, err
	}

	return resp, nil
}

// redo applies as many Options as it can, returning those Options that continue to throw an error.
func (doer *Responder) redo(r *Response, opts ...Fn) []Fn {
	bad := make([]Fn, 0)
	for _, opt := range opts {
		if err := opt(*doer, r); err != nil {
			bad = append(bad, opt)
		}
	}

	return bad
}
