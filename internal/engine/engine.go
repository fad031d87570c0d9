// Package engine implements the CPS backtracking matcher described in
// spec.md §4: a direct recursive-descent walk over already-validated regex
// text that dispatches on the text itself rather than on a compiled
// instruction stream, using the Go call stack as the backtracking trail.
//
// This package assumes its input is well-formed (internal/syntax.WellFormed
// reports true); callers are expected to check that once, at the package
// boundary, exactly as cps-re.c's cpsre_matches checks skip_regex before
// ever calling match_regex.
//
// Grounded on original_source/cps-re.c's match_symbol/match_atom/match_term/
// match_regex family, with the setjmp/longjmp jump discipline (§4.6)
// translated into an ordinary Go return value: every matcher procedure
// returns a tri-state outcome (backtrack, matched, commit) instead of
// unwinding the C stack directly. A commit outcome carries the identity of
// the possessive scope that owns it; any frame between the commit and its
// owner propagates it unexamined, and only the owning dispatch site
// absorbs it. This gives nested possessive scopes correct un-push behavior
// for free, without an explicit boundary stack.
package engine

import (
	"github.com/coregx/backre/internal/charset"
	"github.com/coregx/backre/internal/syntax"
)

type outcomeKind uint8

const (
	backtrackOutcome outcomeKind = iota
	matchedOutcome
	commitOutcome
	abortOutcome
)

// boundary identifies one possessive-quantifier application. Only pointer
// identity matters; the zero-size struct is never dereferenced.
type boundary struct{}

type outcome struct {
	kind  outcomeKind
	owner *boundary
}

var backtrackResult = outcome{kind: backtrackOutcome}
var matchedResult = outcome{kind: matchedOutcome}
var abortResult = outcome{kind: abortOutcome}

func commitResult(owner *boundary) outcome {
	return outcome{kind: commitOutcome, owner: owner}
}

// continuation is "what to try next": given the input cursor reached so
// far, it attempts the rest of the match and reports how that went. This is
// the Go-idiomatic rendering of cps-re.c's struct cont (spec.md's Data
// Model calls out closures as an equivalent, allocation-for-inlining
// tradeoff over an explicit fn/regex/up triple); capturing the resume
// position and outer continuation in the closure instead of a fn-pointer
// struct. See DESIGN.md.
type continuation func(input int) outcome

// matchState is the state shared by every procedure within a single
// Anchored attempt: the regex and input text, and the recursion budget.
// It carries no notion of "the" target or "the" final end position,
// because intersection (§4.5) and complement (§4.4) recursively launch
// independent nested attempts, each with its own target and result, while
// reusing the same text and recursion budget.
type matchState struct {
	regexText []byte
	input     []byte

	depth    int
	maxDepth int
	aborted  bool
}

func (m *matchState) enter() bool {
	if m.aborted {
		return false
	}
	m.depth++
	if m.depth > m.maxDepth {
		m.aborted = true
		return false
	}
	return true
}

func (m *matchState) leave() {
	m.depth--
}

// finishResult receives the outcome of one attempt run to its terminal
// continuation: did it reach the target (or, if target < 0, any position
// at all), and if so, where.
type finishResult struct {
	target int
	end    int
	ok     bool
}

func makeFinish(target int, fr *finishResult) continuation {
	return func(input int) outcome {
		if target >= 0 && input != target {
			return backtrackResult
		}
		fr.end = input
		fr.ok = true
		return matchedResult
	}
}

// runAttempt matches starter against m starting at the terminal
// continuation built for target, and reports whether it reached it.
func runAttempt(target int, starter func(cont continuation) outcome) finishResult {
	fr := finishResult{target: target}
	starter(makeFinish(target, &fr))
	return fr
}

// Anchored matches regexText (assumed well-formed) against input starting
// exactly at start. If target is negative, any end position is accepted
// (spec.md's anchored(R, I, target) with target = nil); otherwise the match
// must end exactly at target. aborted reports that MaxRecursionDepth was
// exceeded before an answer could be determined.
func Anchored(regexText, input []byte, start, target, maxDepth int) (end int, ok bool, aborted bool) {
	m := &matchState{regexText: regexText, input: input, maxDepth: maxDepth}
	fr := runAttempt(target, func(cont continuation) outcome {
		return matchRegex(m, 0, start, cont)
	})
	return fr.end, fr.ok, m.aborted
}

// Unanchored tries Anchored at every start position from start through
// len(input), in increasing order, and returns the first that succeeds
// (spec.md's unanchored(R, I, target): leftmost match wins).
func Unanchored(regexText, input []byte, start, target, maxDepth int) (matchStart, end int, ok bool, aborted bool) {
	for j := start; j <= len(input); j++ {
		e, found, ab := Anchored(regexText, input, j, target, maxDepth)
		if ab {
			return 0, 0, false, true
		}
		if found {
			return j, e, true, false
		}
	}
	return 0, 0, false, false
}

// WellFormed re-exports the syntax package's grammar check for callers that
// only import engine.
func WellFormed(regexText []byte) bool {
	return syntax.WellFormed(regexText)
}

// matchAtom matches the atom at regexText[regex] and, on success, invokes
// cont at the resulting input cursor. Grounded on cps-re.c's match_atom.
func matchAtom(m *matchState, regex, input int, cont continuation) outcome {
	if !m.enter() {
		return abortResult
	}
	defer m.leave()

	switch m.regexText[regex] {
	case '.':
		if input < len(m.input) {
			return cont(input + 1)
		}
		return backtrackResult
	case '(':
		inner := regex + 1
		closeAt := syntax.SkipRegex(m.regexText, inner)
		if closeAt >= len(m.regexText) || m.regexText[closeAt] != ')' {
			panic("backre/internal/engine: unbalanced group reached during match of a well-formed regex")
		}
		return matchRegex(m, inner, input, cont)
	}

	p := regex
	negate := false
	if m.regexText[p] == '^' {
		negate = true
		p++
	}
	lo, p2, ok := charset.ParseSymbol(m.regexText, p)
	if !ok {
		panic("backre/internal/engine: malformed symbol reached during match of a well-formed regex")
	}
	hi := lo
	if p2 < len(m.regexText) && m.regexText[p2] == '-' {
		var hok bool
		hi, _, hok = charset.ParseSymbol(m.regexText, p2+1)
		if !hok {
			panic("backre/internal/engine: malformed range reached during match of a well-formed regex")
		}
	}

	if input >= len(m.input) {
		return backtrackResult
	}
	member := inByteRange(m.input[input], lo, hi)
	if negate {
		member = !member
	}
	if member {
		return cont(input + 1)
	}
	return backtrackResult
}

// inByteRange reports whether c falls in [lo, hi]. When lo > hi the range
// is a wraparound (spec.md §4.1/§8): it denotes the complement of the open
// interval (hi, lo), i.e. everything at or outside the two endpoints.
func inByteRange(c, lo, hi byte) bool {
	if lo <= hi {
		return c >= lo && c <= hi
	}
	return c <= hi || c >= lo
}
