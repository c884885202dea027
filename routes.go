package pathroute

import "strings"

// Handler consumes a successful match. The rendering glue owns what
// happens after a route fires; the route set only decides which entry
// that is.
type Handler func(MatchResult)

// RouteEntry is one declared route in scan order.
type RouteEntry struct {
	Pattern RoutePattern
	Handler Handler

	// Nest marks the entry as a nesting scope: it is matched loosely
	// and the consumed base is reported for a child router.
	Nest bool
}

type routeNode struct {
	entry *RouteEntry
	group *RouteSet
}

// RouteSet is an ordered list of route declarations. Nested groups are
// spliced into their parent's scan position in declaration order, so a
// group is never matched itself; only its entries are.
type RouteSet struct {
	parent *RouteSet
	prefix string
	nodes  []routeNode
	logger Logger
}

func NewRouteSet() *RouteSet {
	return &RouteSet{logger: &defaultLogger{}}
}

// WithLogger replaces the logger used for scan diagnostics.
func (s *RouteSet) WithLogger(logger Logger) *RouteSet {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Add declares a literal route pattern at the current scan position.
func (s *RouteSet) Add(pattern string, handler Handler) *RouteSet {
	return s.AddRoute(RouteEntry{Pattern: Literal(pattern), Handler: handler})
}

// AddNested declares a loosely-matched nesting scope.
func (s *RouteSet) AddNested(pattern string, handler Handler) *RouteSet {
	return s.AddRoute(RouteEntry{Pattern: Literal(pattern), Handler: handler, Nest: true})
}

// AddRoute declares a fully-specified entry at the current scan
// position. Use it for prebuilt patterns.
func (s *RouteSet) AddRoute(entry RouteEntry) *RouteSet {
	s.nodes = append(s.nodes, routeNode{entry: &entry})
	return s
}

// Group creates a child set whose entries are spliced into this set's
// scan order at the current position. prefix is prepended to the child's
// literal patterns with a slash kept between them; prebuilt patterns
// cannot be prefixed and are scanned as declared.
func (s *RouteSet) Group(prefix string) *RouteSet {
	child := &RouteSet{parent: s, prefix: prefix, logger: s.logger}
	s.nodes = append(s.nodes, routeNode{group: child})
	return child
}

// Flatten returns the declared entries in scan order, with group
// prefixes applied. Declaration order is preserved through nesting.
func (s *RouteSet) Flatten() []*RouteEntry {
	return s.flattenInto(nil, "")
}

func (s *RouteSet) flattenInto(out []*RouteEntry, prefix string) []*RouteEntry {
	prefix = JoinBase(prefix, s.prefix)
	for _, node := range s.nodes {
		if node.group != nil {
			out = node.group.flattenInto(out, prefix)
			continue
		}
		entry := *node.entry
		if prefix != "" && !entry.Pattern.IsPrebuilt() && !entry.Pattern.IsZero() {
			text := entry.Pattern.text
			if !strings.HasPrefix(text, "/") {
				text = "/" + text
			}
			entry.Pattern = Literal(prefix + text)
		}
		out = append(out, &entry)
	}
	return out
}

// Select runs the first-match-wins scan: a strictly sequential walk of
// the flattened declarations that stops at the first entry whose pattern
// matches path. It returns nil when nothing matched.
func (s *RouteSet) Select(parser PatternParser, path string) (*RouteEntry, MatchResult, error) {
	if s.parent != nil {
		return s.parent.Select(parser, path)
	}
	if parser == nil {
		parser = defaultParser
	}

	for _, entry := range s.Flatten() {
		result, err := MatchRoute(parser, entry.Pattern, path, entry.Nest)
		if err != nil {
			return nil, MatchResult{}, err
		}
		if result.Matched {
			s.logger.Debug("route %q matched %q params=%v", entry.Pattern, path, result.Params)
			return entry, result, nil
		}
		s.logger.Debug("route %q skipped for %q", entry.Pattern, path)
	}

	s.logger.Debug("no route matched %q", path)
	return nil, MatchResult{}, nil
}
