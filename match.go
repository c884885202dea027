package pathroute

// Params maps parameter names to the path fragments they captured.
// Optional captures that did not participate in a match are absent.
type Params map[string]string

// MatchResult is the verdict of applying one pattern to one path.
type MatchResult struct {
	// Matched reports whether the pattern fired. Params and Base are
	// only meaningful when it is true.
	Matched bool

	// Params are the extracted route parameters. Non-nil on every
	// match; empty when the pattern has no captures or was prebuilt.
	Params Params

	// Base is the prefix of the path consumed by the pattern. Set in
	// loose mode only; nested scopes append it to their base.
	Base string
}

// MatchRoute applies pattern to path using parser. An empty pattern
// always matches with no parameters, the convention for always-active
// nesting scopes. In loose mode trailing path content is left for a
// nested scope to consume and the consumed prefix is reported in Base.
//
// A failed match is a value, not an error; the only error out of here is
// a pattern construction failure surfaced by the parser.
func MatchRoute(parser PatternParser, pattern RoutePattern, path string, loose bool) (MatchResult, error) {
	if pattern.IsZero() {
		return MatchResult{Matched: true, Params: Params{}}, nil
	}

	compiled, err := parser.Parse(pattern, loose)
	if err != nil {
		return MatchResult{}, err
	}

	base, captures, ok := compiled.Match(path)
	if !ok {
		return MatchResult{}, nil
	}

	// Zip captures positionally against the compiled keys. Keys beyond
	// the available captures, and captures that did not participate,
	// stay absent. Repeated keys ("wild") overwrite in order, so the
	// last capture wins.
	params := make(Params, len(compiled.Keys))
	for i, key := range compiled.Keys {
		if i >= len(captures) {
			break
		}
		if captures[i] == "" {
			continue
		}
		params[key] = captures[i]
	}

	result := MatchResult{Matched: true, Params: params}
	if loose {
		result.Base = base
	}
	return result, nil
}
