package edit

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern indicates a search query that failed to compile in
// regex mode. Literal-mode queries are always escaped and cannot fail.
var ErrInvalidPattern = errors.New("invalid search pattern")

// Options configure how queries are matched.
type Options struct {
	// CaseSensitive makes matching case-exact.
	CaseSensitive bool

	// WholeWord constrains literal matches to word boundaries.
	WholeWord bool

	// UseRegex treats the query as a regular expression instead of a
	// literal string.
	UseRegex bool
}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	return Options{
		CaseSensitive: false,
		WholeWord:     false,
		UseRegex:      false,
	}
}

// Span is a half-open byte range [Start, End) into a text buffer.
type Span struct {
	Start int
	End   int
}

// compileQuery compiles a search query into a regex pattern according to
// the options. In literal mode the query is escaped and optionally bounded
// by word-boundary assertions; in regex mode it is compiled as-is.
func compileQuery(query string, opts Options) (*regexp.Regexp, error) {
	pattern := query

	if !opts.UseRegex {
		pattern = regexp.QuoteMeta(pattern)

		if opts.WholeWord {
			pattern = `\b` + pattern + `\b`
		}
	}

	if !opts.CaseSensitive {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	return re, nil
}
