package negotiate

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/switchbacklabs/switchback"
	"gopkg.in/yaml.v3"
)

// builtin pairs full mime types with their short keys, in compatibility order.
var builtin = [...][2]string{
	{"text/html", "html"},
	{"application/xml", "xml"},
	{"text/xml", "xml"},
	{"application/json", "json"},
	{"text/plain", "txt"},
}

// An AcceptMap translates full mime types into the short keys a Registry is
// keyed by. Many full mime types may share one short key, letting a single
// template serve several content types.
//
// An AcceptMap is immutable after construction and safe to share across
// requests.
type AcceptMap struct {
	order []string
	m     map[string]string
}

// NewAcceptMap constructs an AcceptMap from the built-in table merged with
// overrides. An override for a known full mime type replaces it in place;
// new pairs follow the built-ins in sorted order, keeping iteration stable.
// Zero-value entries and mime types missing a type/subtype shape are elided.
func NewAcceptMap(overrides map[string]string) AcceptMap {
	am := AcceptMap{
		order: make([]string, 0, len(builtin)+len(overrides)),
		m:     make(map[string]string, len(builtin)+len(overrides)),
	}
	for _, pair := range builtin {
		am.order = append(am.order, pair[0])
		am.m[pair[0]] = pair[1]
	}

	extra := make([]string, 0, len(overrides))
	for full, key := range overrides {
		if full == "" || key == "" || !strings.Contains(full, "/") {
			continue
		}

		if _, ok := am.m[full]; !ok {
			extra = append(extra, full)
		}

		am.m[full] = key
	}

	sort.Strings(extra)
	am.order = append(am.order, extra...)

	return am
}

// AcceptMapFromFile constructs an AcceptMap from the built-in table merged
// with the override table read from the YAML file at fp.
//
// The file holds a flat mapping of full mime type to short key:
//
//	application/vnd.custom+json: json
//	text/markdown: txt
func AcceptMapFromFile(fp string) (AcceptMap, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return AcceptMap{}, fmt.Errorf("%w: %s", switchback.ErrBadConfig, err)
	}

	overrides := make(map[string]string)
	if err := yaml.Unmarshal(b, &overrides); err != nil {
		return AcceptMap{}, fmt.Errorf("%w: %s", switchback.ErrBadConfig, err)
	}

	return NewAcceptMap(overrides), nil
}

// ShortKey returns the short key for the full mime type.
// An absent mime type is a normal state, not an error.
func (am AcceptMap) ShortKey(full string) (string, bool) {
	key, ok := am.m[full]
	return key, ok
}

// FullTypes returns the full mime types sharing the short key,
// in table order.
func (am AcceptMap) FullTypes(key string) []string {
	var fulls []string
	for _, full := range am.order {
		if am.m[full] == key {
			fulls = append(fulls, full)
		}
	}

	return fulls
}

// Types returns all full mime types in table order.
func (am AcceptMap) Types() []string {
	ts := make([]string, len(am.order))
	copy(ts, am.order)

	return ts
}

// Len counts the full mime types in the table.
func (am AcceptMap) Len() int { return len(am.m) }
