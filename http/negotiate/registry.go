package negotiate

import (
	"fmt"

	"github.com/switchbacklabs/switchback"
)

// A Registry is an ordered set of short mime keys paired with the name of
// the template rendering that representation.
//
// A Registry is assembled fresh for each render call and discarded with it;
// it is not safe for concurrent use.
type Registry struct {
	entries map[string]string
	order   []string
	def     string
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]string)}
}

// Register adds or overwrites the template registered under key.
//
// The first key registered becomes the Registry's default.
// Re-registering a key overwrites its template without changing
// either its position or the default. Zero-value keys are elided.
func (r *Registry) Register(key, tmpl string) {
	r.register(key, tmpl, false)
}

// RegisterDefault adds or overwrites the template registered under key
// and makes key the Registry's default, regardless of registration order.
func (r *Registry) RegisterDefault(key, tmpl string) {
	r.register(key, tmpl, true)
}

func (r *Registry) register(key, tmpl string, def bool) {
	if key == "" {
		return
	}

	if r.Empty() || def {
		r.def = key
	}

	if _, ok := r.entries[key]; !ok {
		r.order = append(r.order, key)
	}

	r.entries[key] = tmpl
}

// Empty asserts whether any registrations have been made.
func (r *Registry) Empty() bool { return len(r.entries) == 0 }

// Len counts the keys registered.
func (r *Registry) Len() int { return len(r.entries) }

// Has asserts whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.entries[key]
	return ok
}

// Lookup returns the template registered under key.
// An absent key is a normal state, not an error.
func (r *Registry) Lookup(key string) (string, bool) {
	tmpl, ok := r.entries[key]
	return tmpl, ok
}

// Keys returns the registered short keys in registration order.
func (r *Registry) Keys() []string {
	ks := make([]string, len(r.order))
	copy(ks, r.order)

	return ks
}

// Default returns the current default short key,
// zero-value until a first registration is made.
func (r *Registry) Default() string { return r.def }

// DefaultTemplate returns the template registered under the default key.
//
// It fails wrapping [switchback.ErrBadConfig] when the default key resolves
// to no registration, which is only reachable on an empty Registry.
func (r *Registry) DefaultTemplate() (string, error) {
	tmpl, ok := r.Lookup(r.def)
	if !ok {
		return "", fmt.Errorf("%w: no template registered under default key %q", switchback.ErrBadConfig, r.def)
	}

	return tmpl, nil
}
