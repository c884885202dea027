package pathroute

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// WildKey is the parameter name bound to unnamed wildcard captures. Two
// wildcards in the same pattern both bind to this key; the last capture
// wins when the result is read as a mapping.
const WildKey = "wild"

// Matcher matches a path and reports its positional captures. base is the
// prefix of the path the matcher consumed, captures are the parameter
// values in pattern order. An empty capture is treated as "did not
// participate" by the match engine.
type Matcher interface {
	Match(path string) (base string, captures []string, ok bool)
}

// RoutePattern is either a literal pattern string or a prebuilt Matcher.
// The zero value is the empty literal, which matches every path. Patterns
// are immutable once created.
type RoutePattern struct {
	text     string
	prebuilt Matcher
}

// Literal returns a pattern backed by text, using the segment grammar
// understood by Parser.
func Literal(text string) RoutePattern {
	return RoutePattern{text: text}
}

// Prebuilt returns a pattern backed by an opaque matcher. Capture
// identities are unknown for prebuilt patterns, so successful matches
// report an empty parameter mapping.
func Prebuilt(m Matcher) RoutePattern {
	return RoutePattern{prebuilt: m}
}

// IsZero reports whether the pattern is the universal empty pattern.
func (p RoutePattern) IsZero() bool {
	return p.text == "" && p.prebuilt == nil
}

// IsPrebuilt reports whether the pattern wraps an opaque matcher.
func (p RoutePattern) IsPrebuilt() bool {
	return p.prebuilt != nil
}

func (p RoutePattern) String() string {
	if p.prebuilt != nil {
		if s, ok := p.prebuilt.(fmt.Stringer); ok {
			return s.String()
		}
		return "<prebuilt>"
	}
	return p.text
}

// CompiledMatcher pairs a positional-capture matcher with the ordered
// parameter names its captures bind to. Keys is nil when the pattern was
// supplied prebuilt and capture identities are unknown; for compiled
// literal patterns len(Keys) equals the matcher's capture count.
type CompiledMatcher struct {
	Keys    []string
	matcher Matcher
}

// Match applies the underlying matcher to path.
func (c *CompiledMatcher) Match(path string) (string, []string, bool) {
	return c.matcher.Match(path)
}

// PatternParser compiles route patterns into matchers. RouterConfig
// carries one so nested scopes can swap in a custom grammar.
type PatternParser interface {
	Parse(pattern RoutePattern, loose bool) (*CompiledMatcher, error)
}

type parserKey struct {
	pattern string
	loose   bool
}

// Parser is the default PatternParser. Compilation is a pure function of
// (pattern, loose); the cache only saves repeated work.
type Parser struct {
	mu    sync.Mutex
	cache map[parserKey]*CompiledMatcher
}

func NewParser() *Parser {
	return &Parser{cache: make(map[parserKey]*CompiledMatcher)}
}

// Parse compiles pattern. Prebuilt patterns pass through unchanged with
// nil Keys. Literal patterns compile per segment:
//
//	"*"        wildcard, captures the remainder (key "wild")
//	"*?"       optional wildcard
//	":name"    one non-slash segment
//	":name?"   optional segment
//	":name.x"  segment with a literal suffix from the "." onward
//
// Any other segment is spliced into the matcher verbatim and is NOT
// regex-escaped, so metacharacters in plain segments are interpreted as
// regular-expression syntax. Callers that need exact literals must escape
// their own segments. Matching is case-insensitive.
//
// A malformed pattern (for example an unbalanced suffix after ":name.")
// surfaces the underlying construction error; static route patterns are
// programmer input, so this is not recovered internally.
func (p *Parser) Parse(pattern RoutePattern, loose bool) (*CompiledMatcher, error) {
	if pattern.prebuilt != nil {
		return &CompiledMatcher{matcher: pattern.prebuilt}, nil
	}

	key := parserKey{pattern: pattern.text, loose: loose}
	p.mu.Lock()
	cached, ok := p.cache[key]
	p.mu.Unlock()
	if ok {
		return cached, nil
	}

	compiled, err := compilePattern(pattern.text, loose)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.cache[key] = compiled
	p.mu.Unlock()
	return compiled, nil
}

// regexpMatcher anchors the compiled expression so that submatch 1 is the
// consumed prefix and parameter captures start at submatch 2.
type regexpMatcher struct {
	re *regexp.Regexp
}

func (m regexpMatcher) Match(path string) (string, []string, bool) {
	groups := m.re.FindStringSubmatch(path)
	if groups == nil {
		return "", nil, false
	}
	return groups[1], groups[2:], true
}

// compilePattern translates the segment grammar into an anchored,
// case-insensitive regular expression. RE2 has no lookahead, so the loose
// mode tail "(?=/|$)" is expressed by wrapping the pattern core in a
// group and allowing "(?:/.*)?$" after it: group 1 is then exactly the
// consumed base. Strict mode wraps the same way so capture indices stay
// uniform across modes.
func compilePattern(pattern string, loose bool) (*CompiledMatcher, error) {
	keys := []string{}
	var core strings.Builder

	for _, segment := range strings.Split(pattern, "/") {
		switch {
		case segment == "":
			// leading, trailing or doubled slash
		case strings.HasPrefix(segment, "*"):
			keys = append(keys, WildKey)
			if len(segment) > 1 && segment[1] == '?' {
				core.WriteString("(?:/(.*))?")
			} else {
				core.WriteString("/(.*)")
			}

		case strings.HasPrefix(segment, ":"):
			opt := strings.Index(segment[1:], "?")
			ext := strings.Index(segment[1:], ".")
			if opt >= 0 {
				opt++
			}
			if ext >= 0 {
				ext++
			}

			end := len(segment)
			if opt >= 0 {
				end = opt
			} else if ext >= 0 {
				end = ext
			}
			keys = append(keys, segment[1:end])

			if opt >= 0 && ext < 0 {
				core.WriteString("(?:/([^/]+?))?")
			} else {
				core.WriteString("/([^/]+?)")
			}
			if ext >= 0 {
				if opt >= 0 {
					core.WriteString("?")
				}
				// Escape the dot; everything after it is spliced raw.
				core.WriteString("\\")
				core.WriteString(segment[ext:])
			}

		default:
			core.WriteString("/")
			core.WriteString(segment)
		}
	}

	tail := "/?$"
	if loose {
		tail = "(?:/.*)?$"
	}

	re, err := regexp.Compile("(?i)^(" + core.String() + ")" + tail)
	if err != nil {
		return nil, newPatternError(err, pattern)
	}

	return &CompiledMatcher{Keys: keys, matcher: regexpMatcher{re: re}}, nil
}
