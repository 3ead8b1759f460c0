package negotiate

import "strings"

const (
	// fallbackBestMatch deliberately mismatches most defaults,
	// signaling the default template was not actually negotiated.
	fallbackBestMatch = "text/plain"

	fallbackPathExtension = "text/html"
)

// A Result is the outcome of one negotiation.
type Result struct {
	// ContentType is the full mime type for the Content-Type header.
	ContentType string

	// Key is the short key ContentType resolved to.
	Key string

	// Template is the name of the template registered under Key.
	Template string

	// Matched reports whether the pairing came from client preference.
	// When false, the caller falls back to the Registry's default
	// template and the Strategy's fallback content type.
	Matched bool
}

// A Strategy computes the winning (content type, template) pairing for a
// request from its raw Accept header value and URL path. An empty accept
// stands in for an absent header.
type Strategy interface {
	Negotiate(reg *Registry, accepts AcceptMap, accept, path string) Result
	Fallback() string
}

// BestMatch constructs the Strategy ranking the Accept header's media
// ranges against the candidate mime types servable by the Registry,
// using the default Matcher. Its fallback content type is "text/plain".
func BestMatch() Strategy { return headerMatch{m: Autoneg()} }

// BestMatchWith constructs the BestMatch Strategy around m.
func BestMatchWith(m Matcher) Strategy {
	if m == nil {
		return BestMatch()
	}

	return headerMatch{m: m}
}

type headerMatch struct {
	m Matcher
}

// Negotiate selects the best candidate for the Accept header.
//
// Candidates are the full mime types whose short keys are registered,
// in AcceptMap table order. An absent Accept header, an empty candidate
// list, or a winner resolving to an unregistered key all report no match.
func (s headerMatch) Negotiate(reg *Registry, accepts AcceptMap, accept, path string) Result {
	cs := candidates(reg, accepts)
	if accept == "" || len(cs) == 0 {
		return Result{}
	}

	full := s.m.BestMatch(cs, accept)
	if full == "" {
		return Result{}
	}

	key, ok := accepts.ShortKey(full)
	if !ok {
		return Result{}
	}

	tmpl, ok := reg.Lookup(key)
	if !ok {
		return Result{}
	}

	return Result{ContentType: full, Key: key, Template: tmpl, Matched: true}
}

func (s headerMatch) Fallback() string { return fallbackBestMatch }

// PathExtension constructs the Strategy trusting the last URL path segment
// when the Accept header corroborates it. Its fallback content type is
// "text/html".
func PathExtension() Strategy { return pathExtension{} }

type pathExtension struct{}

// Negotiate pairs the trailing path segment with the first Accept header
// entry resolving to the same short key.
//
// The Accept header is read as a flat ordered list: split on commas,
// whitespace trimmed, parameters stripped, quality values ignored. An
// extension matching a registered key still reports no match when nothing
// in the Accept header corroborates it.
func (pathExtension) Negotiate(reg *Registry, accepts AcceptMap, accept, path string) Result {
	ext := lastSegment(path)
	if ext == "" {
		return Result{}
	}

	tmpl, ok := reg.Lookup(ext)
	if !ok {
		return Result{}
	}

	for _, mime := range cleanAccept(accept) {
		key, ok := accepts.ShortKey(mime)
		if !ok || key != ext {
			continue
		}

		return Result{ContentType: mime, Key: ext, Template: tmpl, Matched: true}
	}

	return Result{}
}

func (pathExtension) Fallback() string { return fallbackPathExtension }

// candidates filters the AcceptMap's full mime types, in table order,
// down to those whose short key reg can serve.
func candidates(reg *Registry, accepts AcceptMap) []string {
	var cs []string
	for _, full := range accepts.order {
		if reg.Has(accepts.m[full]) {
			cs = append(cs, full)
		}
	}

	return cs
}

// cleanAccept parses header as a flat list of media types, stripping
// parameters and eliding empty entries. Malformed entries pass through
// and miss the AcceptMap instead of aborting negotiation.
func cleanAccept(header string) []string {
	var mimes []string
	for _, part := range strings.Split(header, ",") {
		mime, _, _ := strings.Cut(part, ";")
		mime = strings.TrimSpace(mime)
		if mime == "" {
			continue
		}

		mimes = append(mimes, mime)
	}

	return mimes
}

// lastSegment returns the final non-empty segment of a "/"-separated path,
// zero-value when the path has none.
func lastSegment(path string) string {
	segs := strings.Split(path, "/")
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i] != "" {
			return segs[i]
		}
	}

	return ""
}
