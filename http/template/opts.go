package template

import (
	"io/fs"
	"os"
)

// The RendererOptFn applies functional options when constructing a Renderer.
type RendererOptFn func(*rendererCfg)

type rendererCfg struct {
	fss []fs.FS
	fns map[string]any
}

func newRendererCfg(opts ...RendererOptFn) *rendererCfg {
	cfg := &rendererCfg{fns: make(map[string]any)}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// fsys resolves the fs.FS a Renderer reads templates from,
// the current working directory when none was provided.
func (cfg *rendererCfg) fsys() fs.FS {
	switch len(cfg.fss) {
	case 0:
		return os.DirFS(".")
	case 1:
		return cfg.fss[0]
	}

	return newMultiFS(cfg.fss...)
}

// WithFn encloses a named function so it can be added to the Renderer's function map.
func WithFn(name string, fn any) RendererOptFn {
	return func(cfg *rendererCfg) {
		cfg.fns[name] = fn
	}
}

// WithFS adds a filesystem for the Renderer to read templates from.
// Providing multiple filesystems searches them in order.
func WithFS(filesys fs.FS) RendererOptFn {
	return func(cfg *rendererCfg) {
		cfg.fss = append(cfg.fss, filesys)
	}
}
