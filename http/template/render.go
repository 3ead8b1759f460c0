package template

import (
	"fmt"
	html "html/template"
	"io"
	"io/fs"
	"path"
	text "text/template"
)

// Renderer is the interface for rendering a named template with data
// into an io.Writer.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// HTML implements Renderer over html/template,
// contextually escaping data as it renders.
type HTML struct {
	fs  fs.FS
	fns map[string]any
}

// NewHTML constructs an *HTML with the provided functional options,
// with a focus on utilizing embedded templates through fs.FS.
func NewHTML(opts ...RendererOptFn) *HTML {
	cfg := newRendererCfg(opts...)

	return &HTML{fs: cfg.fsys(), fns: cfg.fns}
}

// Render parses the named template found in the *HTML's fs.FS
// with the functions provided previously and executes it with data.
func (h *HTML) Render(w io.Writer, name string, data any) error {
	if name == "" {
		return fmt.Errorf("%w", ErrNoTemplate)
	}

	tmpl, err := html.New(path.Base(name)).Funcs(html.FuncMap(h.fns)).ParseFS(h.fs, name)
	if err != nil {
		return fmt.Errorf("cannot parse %s: %w", name, err)
	}

	return tmpl.Execute(w, data)
}

// Text implements Renderer over text/template for representations
// needing no contextual escaping, such as JSON, XML or plain text.
type Text struct {
	fs  fs.FS
	fns map[string]any
}

// NewText constructs a *Text with the provided functional options.
func NewText(opts ...RendererOptFn) *Text {
	cfg := newRendererCfg(opts...)

	return &Text{fs: cfg.fsys(), fns: cfg.fns}
}

// Render parses the named template found in the *Text's fs.FS
// with the functions provided previously and executes it with data.
func (t *Text) Render(w io.Writer, name string, data any) error {
	if name == "" {
		return fmt.Errorf("%w", ErrNoTemplate)
	}

	tmpl, err := text.New(path.Base(name)).Funcs(text.FuncMap(t.fns)).ParseFS(t.fs, name)
	if err != nil {
		return fmt.Errorf("cannot parse %s: %w", name, err)
	}

	return tmpl.Execute(w, data)
}
