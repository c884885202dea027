package pathroute

import (
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

type segmentKind int

const (
	segmentStatic segmentKind = iota
	segmentParam
	segmentCatchAll
)

func splitPathSegments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func classifySegment(segment string) segmentKind {
	if strings.HasPrefix(segment, "*") {
		return segmentCatchAll
	}
	if strings.HasPrefix(segment, ":") {
		return segmentParam
	}
	return segmentStatic
}

// ValidateRoutes flags declarations that can never fire under the
// first-match-wins scan: exact duplicates, and entries shadowed by an
// earlier, broader sibling (an earlier "/:id" makes a later "/a"
// unreachable). Prebuilt patterns are opaque and skipped.
func ValidateRoutes(entries []*RouteEntry) []error {
	var errs []error

	for i := 0; i < len(entries); i++ {
		earlier := entries[i]
		if earlier.Pattern.IsPrebuilt() {
			continue
		}
		for j := i + 1; j < len(entries); j++ {
			later := entries[j]
			if later.Pattern.IsPrebuilt() {
				continue
			}

			if strings.EqualFold(earlier.Pattern.text, later.Pattern.text) {
				errs = append(errs, newShadowError(earlier, later, i, j, true))
				continue
			}

			if patternShadows(earlier.Pattern.text, later.Pattern.text) {
				errs = append(errs, newShadowError(earlier, later, i, j, false))
			}
		}
	}

	return errs
}

// patternShadows reports whether every path matched by later is also
// matched by earlier, judged segment-wise. Optional markers and literal
// suffixes are ignored for the comparison: the check is a lint, not a
// proof, and errs toward silence.
func patternShadows(earlier, later string) bool {
	earlierParts := splitPathSegments(earlier)
	laterParts := splitPathSegments(later)

	for i, seg := range earlierParts {
		kind := classifySegment(seg)
		if kind == segmentCatchAll {
			return true
		}
		if i >= len(laterParts) {
			return false
		}
		switch kind {
		case segmentParam:
			if classifySegment(laterParts[i]) == segmentCatchAll {
				return false
			}
		case segmentStatic:
			if !strings.EqualFold(seg, laterParts[i]) {
				return false
			}
		}
	}

	return len(earlierParts) == len(laterParts)
}

func newShadowError(earlier, later *RouteEntry, earlierIdx, laterIdx int, duplicate bool) error {
	textCode := TextCodeRouteShadowed
	reason := "unreachable under first-match-wins"
	if duplicate {
		textCode = TextCodeRouteDuplicate
		reason = "duplicate route"
	}

	message := fmt.Sprintf("route %q is never reached: %q fires first (%s)",
		later.Pattern, earlier.Pattern, reason)

	return goerrors.New(message, goerrors.CategoryConflict).
		WithTextCode(textCode).
		WithMetadata(map[string]any{
			"pattern":       later.Pattern.String(),
			"earlier":       earlier.Pattern.String(),
			"index":         laterIdx,
			"earlier_index": earlierIdx,
			"reason":        reason,
		})
}
