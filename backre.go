// Package backre implements an extended backtracking regular expression
// matcher: given a pattern in the grammar documented in internal/syntax, it
// decides whether (and where) the pattern matches a byte string.
//
// Unlike coregx's compiled NFA/DFA engines, backre never compiles the
// pattern into an intermediate representation — internal/engine walks the
// pattern text directly against the input on every call, using the Go call
// stack itself to hold backtracking state. This trades the throughput
// guarantees of a compiled engine for a much richer grammar: term-level
// complement (~), intersection (&), byte-range wraparound complement, and
// independently-tunable greedy/lazy/possessive quantifiers.
//
// Basic usage:
//
//	re, err := backre.Compile(`a*+b`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("aaab") {
//	    fmt.Println("matched")
//	}
package backre

import (
	"github.com/coregx/backre/internal/engine"
	"github.com/coregx/backre/internal/prefilter"
	"github.com/coregx/backre/internal/simd"
	"github.com/coregx/backre/internal/syntax"
)

// WellFormed reports whether pattern belongs to the grammar internal/syntax
// implements. Compile calls this internally; it is exposed directly for
// callers that want to validate a pattern without compiling it.
func WellFormed(pattern string) bool {
	return syntax.WellFormed([]byte(pattern))
}

// Anchored matches pattern against input starting exactly at start. If
// target is negative, any end position is accepted; otherwise the match
// must end exactly at target. This is the raw primitive behind Regex's
// methods, exposed directly for callers that need the target parameter
// (e.g. to test whether a pattern matches all of input).
//
// ok is false both when pattern is well-formed but does not match (err is
// nil in that case) and when matching aborted early (err is non-nil).
func Anchored(pattern string, input []byte, start, target int, cfg Config) (end int, ok bool, err error) {
	rb := []byte(pattern)
	if !syntax.WellFormed(rb) {
		return 0, false, newSyntaxError(pattern, rb)
	}
	e, found, aborted := engine.Anchored(rb, input, start, target, cfg.MaxRecursionDepth)
	if aborted {
		return 0, false, ErrRecursionLimit
	}
	return e, found, nil
}

// Unanchored tries Anchored at every start position from start onward and
// returns the first (leftmost) that succeeds.
func Unanchored(pattern string, input []byte, start, target int, cfg Config) (matchStart, end int, ok bool, err error) {
	rb := []byte(pattern)
	if !syntax.WellFormed(rb) {
		return 0, 0, false, newSyntaxError(pattern, rb)
	}
	s, e, found, aborted := engine.Unanchored(rb, input, start, target, cfg.MaxRecursionDepth)
	if aborted {
		return 0, 0, false, ErrRecursionLimit
	}
	return s, e, found, nil
}

func classifySyntaxError(rb []byte, pos int) SyntaxErrorKind {
	if pos >= len(rb) {
		return ErrTrailingInput
	}
	switch rb[pos] {
	case '(', ')':
		return ErrUnbalancedParen
	case '\\':
		return ErrBadEscape
	case '*', '+', '?', '|', '&':
		return ErrDanglingOperator
	default:
		return ErrTrailingInput
	}
}

func newSyntaxError(pattern string, rb []byte) *SyntaxError {
	pos := syntax.FailurePos(rb)
	return &SyntaxError{Kind: classifySyntaxError(rb, pos), Pos: pos, Regex: pattern}
}

// Regex represents a compiled pattern, validated once at Compile time so
// later searches skip the well-formedness check. A Regex is safe for
// concurrent use by multiple goroutines: matching only reads its fields.
type Regex struct {
	pattern      string
	regexText    []byte
	cfg          Config
	pf           *prefilter.Prefilter
	firstByte    byte
	hasFirstByte bool
}

// Compile validates pattern and returns a Regex using DefaultConfig.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern is not well-formed.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("backre: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig is like Compile but with an explicit Config.
func CompileWithConfig(pattern string, cfg Config) (*Regex, error) {
	rb := []byte(pattern)
	if !syntax.WellFormed(rb) {
		return nil, newSyntaxError(pattern, rb)
	}

	re := &Regex{pattern: pattern, regexText: rb, cfg: cfg}
	re.firstByte, re.hasFirstByte = syntax.FirstLiteralByte(rb)
	if cfg.EnablePrefilter && !re.hasFirstByte {
		if pf, ok := prefilter.Build(rb, cfg.MinLiteralLen); ok {
			re.pf = pf
		}
	}
	return re, nil
}

// String returns the source pattern text.
func (r *Regex) String() string {
	return r.pattern
}

// search finds the leftmost unanchored match of r in b, from b[from:],
// preferring the literal-alternation prefilter when one was built.
func (r *Regex) search(b []byte, from int) (start, end int, ok bool, err error) {
	if r.pf != nil {
		for cs := from; cs <= len(b); {
			candidate, _, found := r.pf.NextCandidate(b, cs)
			if !found {
				return 0, 0, false, nil
			}
			e, matched, aborted := engine.Anchored(r.regexText, b, candidate, -1, r.cfg.MaxRecursionDepth)
			if aborted {
				return 0, 0, false, ErrRecursionLimit
			}
			if matched {
				return candidate, e, true, nil
			}
			cs = candidate + 1
		}
		return 0, 0, false, nil
	}

	if r.hasFirstByte {
		for cs := from; cs <= len(b); {
			candidate := simd.IndexByte(b, r.firstByte, cs)
			if candidate < 0 {
				return 0, 0, false, nil
			}
			e, matched, aborted := engine.Anchored(r.regexText, b, candidate, -1, r.cfg.MaxRecursionDepth)
			if aborted {
				return 0, 0, false, ErrRecursionLimit
			}
			if matched {
				return candidate, e, true, nil
			}
			cs = candidate + 1
		}
		return 0, 0, false, nil
	}

	s, e, found, aborted := engine.Unanchored(r.regexText, b, from, -1, r.cfg.MaxRecursionDepth)
	if aborted {
		return 0, 0, false, ErrRecursionLimit
	}
	return s, e, found, nil
}

// Match reports whether b contains any match of r.
func (r *Regex) Match(b []byte) bool {
	_, _, ok, _ := r.search(b, 0)
	return ok
}

// MatchString reports whether s contains any match of r.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// MatchExact reports whether r matches all of b, start to end (spec.md's
// two-function cpsre_matchbegin/cpsre_matchend split, restored here as a
// single whole-string check built on the same Anchored primitive).
func (r *Regex) MatchExact(b []byte) bool {
	_, ok, aborted := engine.Anchored(r.regexText, b, 0, len(b), r.cfg.MaxRecursionDepth)
	return ok && !aborted
}

// Find returns the leftmost match of r in b, or nil if there is none.
func (r *Regex) Find(b []byte) []byte {
	start, end, ok, _ := r.search(b, 0)
	if !ok {
		return nil
	}
	return b[start:end]
}

// FindString is Find for a string argument.
func (r *Regex) FindString(s string) string {
	m := r.Find([]byte(s))
	if m == nil {
		return ""
	}
	return string(m)
}

// FindIndex returns a two-element slice [start, end) of the leftmost match
// in b, or nil if there is none.
func (r *Regex) FindIndex(b []byte) []int {
	start, end, ok, _ := r.search(b, 0)
	if !ok {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex is FindIndex for a string argument.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// FindAll returns the non-overlapping matches of r in b, in order. If n
// >= 0, at most n matches are returned; n < 0 means unbounded.
func (r *Regex) FindAll(b []byte, n int) [][]byte {
	if n == 0 {
		return nil
	}

	var matches [][]byte
	pos := 0
	for pos <= len(b) {
		start, end, ok, _ := r.search(b, pos)
		if !ok {
			break
		}
		matches = append(matches, b[start:end])
		if end > pos {
			pos = end
		} else {
			pos++
		}
		if n > 0 && len(matches) >= n {
			break
		}
	}
	return matches
}

// FindMatch returns the leftmost match of r in b as a *Match, or nil if
// there is none. Unlike Find, the returned Match retains its position in b,
// not just the matched bytes.
func (r *Regex) FindMatch(b []byte) *Match {
	start, end, ok, _ := r.search(b, 0)
	if !ok {
		return nil
	}
	return NewMatch(start, end, b)
}

// FindAllMatches is FindAll, but returns *Match values carrying position
// information alongside the matched bytes.
func (r *Regex) FindAllMatches(b []byte, n int) []*Match {
	if n == 0 {
		return nil
	}

	var matches []*Match
	pos := 0
	for pos <= len(b) {
		start, end, ok, _ := r.search(b, pos)
		if !ok {
			break
		}
		matches = append(matches, NewMatch(start, end, b))
		if end > pos {
			pos = end
		} else {
			pos++
		}
		if n > 0 && len(matches) >= n {
			break
		}
	}
	return matches
}

// FindAllString is FindAll for a string argument.
func (r *Regex) FindAllString(s string, n int) []string {
	matches := r.FindAll([]byte(s), n)
	if matches == nil {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = string(m)
	}
	return out
}
