package switchback

import "sort"

type Key string

const (
	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// ResponderKey stashes the resp.Responder shared by an application's handlers.
	ResponderKey Key = "ResponderKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "switchback context key: " + string(k)
}

// A ByKey is a sortable set of Keys.
type ByKey []Key

var _ sort.Interface = ByKey([]Key{})

func (ks ByKey) Len() int           { return len(ks) }
func (ks ByKey) Swap(i, j int)      { ks[i], ks[j] = ks[j], ks[i] }
func (ks ByKey) Less(i, j int) bool { return ks[i] < ks[j] }

// UniqueSort sorts the set of Keys lexicographically,
// eliding duplicates and zero-value Keys.
func (ks ByKey) UniqueSort() ByKey {
	seen := make(map[Key]struct{}, len(ks))
	unique := make(ByKey, 0, len(ks))
	for _, k := range ks {
		if k == "" {
			continue
		}

		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		unique = append(unique, k)
	}

	sort.Sort(unique)

	return unique
}
