// Package search finds and replaces text in a document, either literally or
// by regular expression, and reports what happened as an Outcome.
package search

import (
	"fmt"
	"regexp"
	"unicode"
)

// Query describes what to look for.
type Query struct {
	Term          string
	CaseSensitive bool
	UseRegex      bool
}

// ReplaceRequest is a Query plus its replacement text. The replacement may
// contain \n, \t, \r and \\ escapes and, in regex mode, back-references.
type ReplaceRequest struct {
	Query
	Replacement string
}

// Outcome is the result of a search operation.
type Outcome int

const (
	// NoOp means nothing was attempted (empty term) or nothing changed.
	NoOp Outcome = iota
	// Found means a match was selected.
	Found
	// NotFound means no match exists in the searched range.
	NotFound
	// InvalidPattern means the regular expression did not compile.
	InvalidPattern
	// Replaced means the document was changed.
	Replaced
	// Skipped means replace left the document alone because the selection
	// was empty or did not match the term exactly.
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case NoOp:
		return "noop"
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case InvalidPattern:
		return "invalid_pattern"
	case Replaced:
		return "replaced"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// PatternError reports a term that failed to compile in regex mode.
type PatternError struct {
	Term string
	Err  error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Term, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// EscapeLiteral escapes every regular expression metacharacter
// (. * + ? ^ $ { } ( ) | [ ] \) so term matches only itself.
func EscapeLiteral(term string) string {
	return regexp.QuoteMeta(term)
}

// Compile builds the global pattern for q. Plain terms are escaped first.
func Compile(q Query) (*regexp.Regexp, error) {
	expr := q.Term
	if !q.UseRegex {
		expr = EscapeLiteral(expr)
	}
	return compileExpr(q, expr)
}

// compileAnchored builds a pattern that must match a whole string.
func compileAnchored(q Query) (*regexp.Regexp, error) {
	return compileExpr(q, `^(?:`+q.Term+`)$`)
}

func compileExpr(q Query, expr string) (*regexp.Regexp, error) {
	if !q.CaseSensitive {
		expr = `(?i)` + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Term: q.Term, Err: err}
	}
	return re, nil
}

// fold lower-cases rune by rune so offsets are preserved.
func fold(runes []rune) []rune {
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[i] = unicode.ToLower(r)
	}
	return out
}
