package negotiate

import "github.com/munnerz/goautoneg"

// A Matcher selects the best candidate full mime type for a raw Accept
// header value, implementing weighted media-range matching. A zero-value
// return reports that no candidate is acceptable.
type Matcher interface {
	BestMatch(candidates []string, accept string) string
}

// MatcherFunc adapts an ordinary function into a Matcher.
type MatcherFunc func(candidates []string, accept string) string

// BestMatch calls fn.
func (fn MatcherFunc) BestMatch(candidates []string, accept string) string {
	return fn(candidates, accept)
}

// Autoneg constructs the default Matcher, delegating quality value and
// specificity handling to goautoneg. Ties between candidates break toward
// the earliest, so candidate order decides wildcard matches.
func Autoneg() Matcher {
	return MatcherFunc(func(candidates []string, accept string) string {
		return goautoneg.Negotiate(accept, candidates)
	})
}
