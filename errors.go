package pathroute

import (
	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to errors produced by this package.
const (
	TextCodeInvalidPattern = "INVALID_PATTERN"
	TextCodeRouteDuplicate = "ROUTE_DUPLICATE"
	TextCodeRouteShadowed  = "ROUTE_SHADOWED"
)

func newPatternError(err error, pattern string) error {
	return goerrors.Wrap(err, goerrors.CategoryRouting, "invalid route pattern").
		WithTextCode(TextCodeInvalidPattern).
		WithMetadata(map[string]any{
			"pattern": pattern,
		})
}

// IsPatternError reports whether err came from compiling a malformed
// route pattern.
func IsPatternError(err error) bool {
	var e *goerrors.Error
	if !goerrors.As(err, &e) {
		return false
	}
	return e.TextCode == TextCodeInvalidPattern
}
