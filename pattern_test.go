package pathroute

import (
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserParse_Keys(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{name: "literal only", pattern: "/users", want: []string{}},
		{name: "single param", pattern: "/users/:id", want: []string{"id"}},
		{name: "two params", pattern: "/:a/:b", want: []string{"a", "b"}},
		{name: "optional param", pattern: "/users/:id?", want: []string{"id"}},
		{name: "param with suffix", pattern: "/files/:name.jpg", want: []string{"name"}},
		{name: "optional with suffix", pattern: "/files/:name?.jpg", want: []string{"name"}},
		{name: "wildcard", pattern: "/static/*", want: []string{"wild"}},
		{name: "optional wildcard", pattern: "/static/*?", want: []string{"wild"}},
		{name: "repeated wildcards", pattern: "/*/*", want: []string{"wild", "wild"}},
		{name: "mixed", pattern: "/api/:version/files/*", want: []string{"version", "wild"}},
	}

	parser := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled, err := parser.Parse(Literal(tt.pattern), false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, compiled.Keys)
		})
	}
}

// Every parameter key must line up with exactly one capture group.
func TestParserParse_KeyCaptureAlignment(t *testing.T) {
	parser := NewParser()

	compiled, err := parser.Parse(Literal("/:a/:b/files/*"), false)
	require.NoError(t, err)

	_, captures, ok := compiled.Match("/1/2/files/x/y")
	require.True(t, ok)
	assert.Len(t, captures, len(compiled.Keys))
}

func TestParserParse_CachesByPatternAndMode(t *testing.T) {
	parser := NewParser()

	first, err := parser.Parse(Literal("/users/:id"), false)
	require.NoError(t, err)
	second, err := parser.Parse(Literal("/users/:id"), false)
	require.NoError(t, err)
	assert.Same(t, first, second)

	loose, err := parser.Parse(Literal("/users/:id"), true)
	require.NoError(t, err)
	assert.NotSame(t, first, loose)
}

func TestParserParse_Prebuilt(t *testing.T) {
	parser := NewParser()

	pattern := MustGlobPattern("/static/**")
	compiled, err := parser.Parse(pattern, false)
	require.NoError(t, err)

	assert.Nil(t, compiled.Keys, "capture identities are unknown for prebuilt matchers")

	base, captures, ok := compiled.Match("/static/css/site.css")
	assert.True(t, ok)
	assert.Equal(t, "/static/css/site.css", base)
	assert.Empty(t, captures)
}

func TestParserParse_InvalidSuffix(t *testing.T) {
	parser := NewParser()

	_, err := parser.Parse(Literal("/files/:name.(jpg"), false)
	require.Error(t, err)
	assert.True(t, IsPatternError(err))

	var e *goerrors.Error
	require.True(t, goerrors.As(err, &e))
	assert.Equal(t, goerrors.CategoryRouting, e.Category)
	assert.Equal(t, TextCodeInvalidPattern, e.TextCode)
}

func TestCompilePattern_StrictMatching(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		ok      bool
	}{
		{name: "exact literal", pattern: "/about", path: "/about", ok: true},
		{name: "case insensitive", pattern: "/About", path: "/about", ok: true},
		{name: "trailing slash tolerated", pattern: "/about", path: "/about/", ok: true},
		{name: "trailing content rejected", pattern: "/about", path: "/about/us", ok: false},
		{name: "pattern trailing slash", pattern: "/about/", path: "/about", ok: true},
		{name: "root", pattern: "/", path: "/", ok: true},
		{name: "mandatory param requires segment", pattern: "/users/:id", path: "/users", ok: false},
		{name: "optional param present", pattern: "/users/:id?", path: "/users/42", ok: true},
		{name: "optional param absent", pattern: "/users/:id?", path: "/users", ok: true},
		{name: "suffix match", pattern: "/files/:name.jpg", path: "/files/photo.jpg", ok: true},
		{name: "suffix mismatch", pattern: "/files/:name.jpg", path: "/files/photo.png", ok: false},
		{name: "wildcard needs segment", pattern: "/a/*", path: "/a", ok: false},
		{name: "optional wildcard absent", pattern: "/a/*?", path: "/a", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled, err := compilePattern(tt.pattern, false)
			require.NoError(t, err)

			_, _, ok := compiled.Match(tt.path)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestCompilePattern_LooseConsumedBase(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		base    string
		ok      bool
	}{
		{name: "consumes prefix", pattern: "/a/:b", path: "/a/1/2/3", base: "/a/1", ok: true},
		{name: "whole path", pattern: "/a/:b", path: "/a/1", base: "/a/1", ok: true},
		{name: "segment boundary enforced", pattern: "/a", path: "/ab", ok: false},
		{name: "literal prefix", pattern: "/app", path: "/app/users/5", base: "/app", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled, err := compilePattern(tt.pattern, true)
			require.NoError(t, err)

			base, _, ok := compiled.Match(tt.path)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.base, base)
			}
		})
	}
}

// Plain segments are spliced into the matcher verbatim, so regex
// metacharacters in them keep their regex meaning. This mirrors the
// grammar this compiler is compatible with; escape segments yourself if
// you need exact literals.
func TestCompilePattern_LiteralSegmentsAreNotEscaped(t *testing.T) {
	compiled, err := compilePattern("/file.txt", false)
	require.NoError(t, err)

	_, _, ok := compiled.Match("/file.txt")
	assert.True(t, ok)

	// "." matches any character because it was not escaped.
	_, _, ok = compiled.Match("/fileXtxt")
	assert.True(t, ok)
}
