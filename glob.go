package pathroute

import "github.com/gobwas/glob"

// GlobPattern compiles a gobwas/glob expression into a prebuilt pattern,
// with "/" as the separator ("*" stays within one segment, "**" crosses
// them). Glob matchers are opaque: they report no captures, so a matched
// route carries an empty parameter mapping.
func GlobPattern(pattern string) (RoutePattern, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return RoutePattern{}, newPatternError(err, pattern)
	}
	return Prebuilt(globMatcher{glob: g, text: pattern}), nil
}

// MustGlobPattern is GlobPattern for static patterns; it panics on a
// malformed expression.
func MustGlobPattern(pattern string) RoutePattern {
	p, err := GlobPattern(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

type globMatcher struct {
	glob glob.Glob
	text string
}

func (m globMatcher) String() string {
	return "glob:" + m.text
}

// Match implements Matcher. A glob consumes the whole path, so the
// consumed base is the path itself.
func (m globMatcher) Match(path string) (string, []string, bool) {
	if !m.glob.Match(path) {
		return "", nil, false
	}
	return path, nil, true
}
