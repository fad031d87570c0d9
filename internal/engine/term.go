package engine

import "github.com/coregx/backre/internal/syntax"

// matchTerm matches the term at regexText[regex]: an optional leading '~'
// (spec.md §4.4 term-level complement) followed by a factor sequence.
func matchTerm(m *matchState, regex, input int, cont continuation) outcome {
	if !m.enter() {
		return abortResult
	}
	defer m.leave()

	if regex < len(m.regexText) && m.regexText[regex] == '~' {
		return matchComplement(m, regex+1, input, cont)
	}
	return matchFactorSeq(m, regex, input, cont)
}

// matchComplement implements ~subterm: the language of strings that, at no
// length n, is an exact match of subterm starting at input. It searches
// increasing lengths n = 0, 1, 2, ... and, for each length at which subterm
// does *not* match exactly, offers the continuation a match ending at
// input+n (spec.md §4.4). This mirrors the same anchored-recursive-call
// idiom used for intersection (matchIntersection below), specialized to a
// single operand instead of two.
func matchComplement(m *matchState, subterm, input int, cont continuation) outcome {
	if !m.enter() {
		return abortResult
	}
	defer m.leave()

	for n := 0; input+n <= len(m.input); n++ {
		if m.aborted {
			return abortResult
		}
		end := input + n
		if !exactMatchFactorSeq(m, subterm, input, end) {
			r := cont(end)
			if r.kind != backtrackOutcome {
				return r
			}
		}
	}
	return backtrackResult
}

func exactMatchFactorSeq(m *matchState, regex, start, target int) bool {
	if m.aborted {
		return false
	}
	fr := runAttempt(target, func(cont continuation) outcome {
		return matchFactorSeq(m, regex, start, cont)
	})
	return fr.ok
}

// exactMatchRegex reports whether the regex (not just a single term)
// starting at regex matches, anchored, starting at start and ending exactly
// at target. Used as the RHS check for '&' (matchIntersection below), since
// '&' is right-associative over the whole remainder of the production
// (spec.md §4.5: "A & B & C" is "A & (B & C)"), not just the next term.
func exactMatchRegex(m *matchState, regex, start, target int) bool {
	if m.aborted {
		return false
	}
	fr := runAttempt(target, func(cont continuation) outcome {
		return matchRegex(m, regex, start, cont)
	})
	return fr.ok
}

// matchRegex matches the regex (term (('|'|'&') term)*) production starting
// at regexText[regex]. Alternation tries the left term first and only
// falls through to the right on a genuine backtrackOutcome — a matched,
// commit, or abort outcome from the left is propagated immediately, which
// is what gives a possessive scope spanning an alternation atomic-group
// semantics for free (spec.md §4.6).
func matchRegex(m *matchState, regex, input int, cont continuation) outcome {
	if !m.enter() {
		return abortResult
	}
	defer m.leave()

	termEnd := syntax.SkipTerm(m.regexText, regex)
	if termEnd < len(m.regexText) {
		switch m.regexText[termEnd] {
		case '|':
			r := matchTerm(m, regex, input, cont)
			if r.kind != backtrackOutcome {
				return r
			}
			return matchRegex(m, termEnd+1, input, cont)
		case '&':
			return matchIntersection(m, regex, termEnd+1, input, cont)
		}
	}
	return matchTerm(m, regex, input, cont)
}

// matchIntersection matches lhs & rhs: the left term is matched as usual,
// but its continuation additionally requires rhs — the *entire remainder*
// of the regex production, not just the next term — to match, anchored,
// over exactly the same span before invoking the real continuation (spec.md
// §4.5). rhs is matched with matchRegex rather than matchTerm so a further
// '&' or '|' inside it keeps right-associating over the rest of the chain
// ("A & B & C" reads as "A & (B & C)", and "A & B | C" reads as
// "A & (B | C)") instead of silently being dropped. Because the left term's
// own continuation may be invoked at several candidate end positions as it
// backtracks, this naturally tries every candidate split until one also
// satisfies the right side and lets the rest of the match succeed.
func matchIntersection(m *matchState, lhs, rhs, input int, cont continuation) outcome {
	if !m.enter() {
		return abortResult
	}
	defer m.leave()

	return matchTerm(m, lhs, input, func(w int) outcome {
		if !exactMatchRegex(m, rhs, input, w) {
			return backtrackResult
		}
		return cont(w)
	})
}
