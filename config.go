package pathroute

import (
	"strings"

	"dario.cat/mergo"
)

// RouterConfig is the effective configuration of one router scope. It is
// a record: scopes compare configs field-by-field and rely on pointer
// identity staying stable while the values do not change. Hook and
// parser implementations must be comparable (pointer-backed is the
// norm); configs are compared with ==.
type RouterConfig struct {
	// Location supplies the current path and navigation.
	Location LocationHook

	// Search supplies the current search string.
	Search SearchHook

	// Parser compiles route patterns for this scope.
	Parser PatternParser

	// Base is the path prefix this scope has already consumed. Paths
	// are made relative to it before matching.
	Base string

	// SSRPath and SSRSearch pin the location for render passes that
	// have no live location source.
	SSRPath   string
	SSRSearch string
}

var (
	defaultParser   = NewParser()
	defaultLocation = NewMemoryLocation("/")

	// defaultRouter is the root configuration every scope ultimately
	// derives from. Lineage resets restart composition here.
	defaultRouter = &RouterConfig{
		Location: defaultLocation,
		Search:   defaultLocation,
		Parser:   defaultParser,
	}
)

// DefaultRouter returns the root configuration. The same pointer is
// returned on every call so identity comparisons against it hold.
func DefaultRouter() *RouterConfig {
	return defaultRouter
}

// DefaultParser returns the shared pattern parser used by the root
// configuration.
func DefaultParser() *Parser {
	return defaultParser
}

// NewRouterConfig builds a root-level configuration from cfg, filling
// unset fields from the defaults. An SSRPath containing "?" is split
// into SSRPath and SSRSearch.
func NewRouterConfig(cfg RouterConfig) (*RouterConfig, error) {
	if i := strings.IndexByte(cfg.SSRPath, '?'); i >= 0 {
		cfg.SSRSearch = cfg.SSRPath[i+1:]
		cfg.SSRPath = cfg.SSRPath[:i]
	}
	if err := mergo.Merge(&cfg, *defaultRouter); err != nil {
		return nil, err
	}
	return &cfg, nil
}
