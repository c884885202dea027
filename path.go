package pathroute

import (
	"net/url"
	ppath "path"
	"strings"
)

// AbsoluteMarker escapes a path so it bypasses base-relative
// interpretation in nested scopes.
const AbsoluteMarker = "~"

// RelativePath strips base from path, case-insensitively. A path outside
// base comes back escaped with the absolute marker so it is never
// re-prefixed downstream; an exact base match normalizes to "/".
//
// The prefix is compared fold-wise over the original bytes. Folding via
// ToLower would shift byte offsets for characters whose case pair has a
// different encoded length (U+212A Kelvin sign folds to "k"), and the
// strip below slices the unfolded path.
func RelativePath(base, path string) string {
	if len(path) < len(base) || !strings.EqualFold(path[:len(base)], base) {
		return AbsoluteMarker + path
	}
	rel := path[len(base):]
	if rel == "" {
		return "/"
	}
	return rel
}

// AbsolutePath resolves to against base. A leading "~" unescapes the
// path: the marker is dropped and no base is applied.
func AbsolutePath(to, base string) string {
	if strings.HasPrefix(to, AbsoluteMarker) {
		return to[len(AbsoluteMarker):]
	}
	return base + to
}

// DecodePath percent-decodes path for consumption. Malformed escape
// sequences fail open: the input comes back unchanged rather than
// aborting routing.
func DecodePath(path string) string {
	decoded, err := url.PathUnescape(path)
	if err != nil {
		return path
	}
	return decoded
}

// StripSearch removes a single leading "?" from a search string.
func StripSearch(search string) string {
	return strings.TrimPrefix(search, "?")
}

// DecodeSearch strips the leading "?" and percent-decodes the rest,
// failing open like DecodePath.
func DecodeSearch(search string) string {
	return DecodePath(StripSearch(search))
}

// NormalizePath cleans p and trims surrounding slashes, collapsing "."
// to the empty string.
func NormalizePath(p string) string {
	p = ppath.Clean(p)
	p = strings.Trim(p, "/")
	if p == "." {
		return ""
	}
	return p
}

// JoinBase concatenates two base prefixes, keeping exactly one slash
// between non-empty parts.
func JoinBase(base, sub string) string {
	base = NormalizePath(base)
	sub = NormalizePath(sub)
	switch {
	case base == "":
		if sub == "" {
			return ""
		}
		return "/" + sub
	case sub == "":
		return "/" + base
	default:
		return "/" + base + "/" + sub
	}
}
