package backre

import (
	"errors"
	"fmt"
)

// ErrNoMatch names the outcome of a well-formed regex matched against an
// input with no admissible match. This is a normal outcome, not an error
// condition, and no function in this package returns it: the public entry
// points report no match as ok=false with a nil error, so callers are never
// forced to inspect an error for the common case.
var ErrNoMatch = errors.New("backre: no match")

// SyntaxErrorKind classifies why a regex failed the grammar skipper.
type SyntaxErrorKind uint8

const (
	// ErrBadEscape indicates a '\' at end of input, or followed by a byte
	// that is not a metacharacter.
	ErrBadEscape SyntaxErrorKind = iota
	// ErrUnbalancedParen indicates a '(' with no matching ')', or a stray ')'.
	ErrUnbalancedParen
	// ErrDanglingOperator indicates an atom was expected (after '|', '&', '~',
	// or at the start of a term) but the grammar skipper could not find one.
	ErrDanglingOperator
	// ErrTrailingInput indicates the skipper stopped before the end of the
	// regex text, i.e. some trailing bytes do not belong to any production.
	ErrTrailingInput
)

// String returns a human-readable name for the error kind.
func (k SyntaxErrorKind) String() string {
	switch k {
	case ErrBadEscape:
		return "ErrBadEscape"
	case ErrUnbalancedParen:
		return "ErrUnbalancedParen"
	case ErrDanglingOperator:
		return "ErrDanglingOperator"
	case ErrTrailingInput:
		return "ErrTrailingInput"
	default:
		return fmt.Sprintf("UnknownSyntaxErrorKind(%d)", uint8(k))
	}
}

// SyntaxError reports that a regex is not in the grammar described in
// spec.md §3. It is always distinguishable from ErrNoMatch: a syntax error
// is returned as a non-nil error, never folded into the no-match bool.
type SyntaxError struct {
	Kind SyntaxErrorKind
	// Pos is the byte offset into the regex text where the grammar skipper
	// gave up.
	Pos int
	// Regex is the full pattern text, retained for error messages.
	Regex string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("backre: syntax error (%s) at byte %d in %q", e.Kind, e.Pos, e.Regex)
}

// Is reports whether target is a *SyntaxError of the same Kind, supporting
// errors.Is(err, &SyntaxError{Kind: backre.ErrBadEscape}).
func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// ErrRecursionLimit is returned when a match would recurse deeper than
// Config.MaxRecursionDepth allows (see §5 "Stack discipline").
var ErrRecursionLimit = errors.New("backre: exceeded max recursion depth")
