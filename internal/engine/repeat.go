package engine

import "github.com/coregx/backre/internal/syntax"

type eagerness uint8

const (
	eagerGreedy eagerness = iota
	eagerLazy
	eagerPossessive
)

func eagernessAt(regexText []byte, pos int) eagerness {
	if pos < len(regexText) {
		switch regexText[pos] {
		case '?':
			return eagerLazy
		case '+':
			return eagerPossessive
		}
	}
	return eagerGreedy
}

// matchFactorSeq matches the factor* sequence starting at regex (the body
// of a term, after any leading '~' has already been consumed by matchTerm)
// and invokes cont once the sequence runs out of factors to try — exactly
// cps-re.c's match_term, minus the complement handling that lives in
// matchTerm here.
func matchFactorSeq(m *matchState, regex, input int, cont continuation) outcome {
	if !m.enter() {
		return abortResult
	}
	defer m.leave()

	quant, ok := syntax.SkipAtom(m.regexText, regex)
	if !ok {
		// No atom here: this is the normal end of the term, not a syntax
		// error (the text was validated as a whole before matching began).
		return cont(input)
	}

	if quant < len(m.regexText) {
		switch m.regexText[quant] {
		case '*':
			return dispatchRepeat(m, regex, quant, input, cont, true)
		case '+':
			return dispatchRepeat(m, regex, quant, input, cont, false)
		case '?':
			return dispatchOptional(m, regex, quant, input, cont)
		}
	}

	return matchAtom(m, regex, input, func(in int) outcome {
		return matchFactorSeq(m, quant, in, cont)
	})
}

// dispatchRepeat handles '*' (star=true) and '+' (star=false): zero-or-more
// versus one-or-more repetition of the atom at atomRegex, under whichever
// eagerness suffix follows the shape character at shapePos.
func dispatchRepeat(m *matchState, atomRegex, shapePos, input int, cont continuation, star bool) outcome {
	afterShape := shapePos + 1
	eager := eagernessAt(m.regexText, afterShape)
	nextFactor := afterShape
	if eager != eagerGreedy {
		nextFactor++
	}
	rest := func(in int) outcome { return matchFactorSeq(m, nextFactor, in, cont) }

	switch eager {
	case eagerLazy:
		if star {
			return lazyStar(m, atomRegex, input, rest)
		}
		return matchAtom(m, atomRegex, input, func(in int) outcome {
			return lazyStar(m, atomRegex, in, rest)
		})
	case eagerPossessive:
		b := &boundary{}
		var r outcome
		if star {
			r = possessiveStar(m, atomRegex, input, rest, b)
		} else {
			r = matchAtom(m, atomRegex, input, func(in int) outcome {
				return possessiveStar(m, atomRegex, in, rest, b)
			})
		}
		if r.kind == commitOutcome && r.owner == b {
			return backtrackResult
		}
		return r
	default:
		if star {
			return greedyStar(m, atomRegex, input, rest)
		}
		return matchAtom(m, atomRegex, input, func(in int) outcome {
			return greedyStar(m, atomRegex, in, rest)
		})
	}
}

func dispatchOptional(m *matchState, atomRegex, shapePos, input int, cont continuation) outcome {
	afterShape := shapePos + 1
	eager := eagernessAt(m.regexText, afterShape)
	nextFactor := afterShape
	if eager != eagerGreedy {
		nextFactor++
	}
	rest := func(in int) outcome { return matchFactorSeq(m, nextFactor, in, cont) }

	switch eager {
	case eagerLazy:
		return lazyOpt(m, atomRegex, input, rest)
	case eagerPossessive:
		return possessiveOpt(m, atomRegex, input, rest)
	default:
		return greedyOpt(m, atomRegex, input, rest)
	}
}

// greedyStar extends as far as possible before trying rest, backtracking
// one repetition at a time on failure. Grounded on cps-re.c's do_star.
// The re-entry continuation refuses to continue unless input has strictly
// advanced, so a nullable atom (e.g. an empty group) cannot loop forever.
func greedyStar(m *matchState, atomRegex, input int, rest continuation) outcome {
	if !m.enter() {
		return abortResult
	}
	defer m.leave()

	r := matchAtom(m, atomRegex, input, func(in int) outcome {
		if in == input {
			return backtrackResult
		}
		return greedyStar(m, atomRegex, in, rest)
	})
	if r.kind != backtrackOutcome {
		return r
	}
	return rest(input)
}

// lazyStar tries stopping before extending, preferring fewer repetitions.
func lazyStar(m *matchState, atomRegex, input int, rest continuation) outcome {
	if !m.enter() {
		return abortResult
	}
	defer m.leave()

	r := rest(input)
	if r.kind != backtrackOutcome {
		return r
	}
	return matchAtom(m, atomRegex, input, func(in int) outcome {
		if in == input {
			return backtrackResult
		}
		return lazyStar(m, atomRegex, in, rest)
	})
}

// possessiveStar behaves like greedyStar while extension is still possible,
// but once the atom can no longer extend, it commits: if rest then fails
// from that deepest point, the whole repetition fails outright rather than
// giving back a repetition for the caller to retry with (spec.md §4.6).
// All recursive re-entries of one possessive application share the same
// boundary token; the dispatch site that created it is the only frame that
// may absorb a commit carrying it.
func possessiveStar(m *matchState, atomRegex, input int, rest continuation, b *boundary) outcome {
	if !m.enter() {
		return abortResult
	}
	defer m.leave()

	r := matchAtom(m, atomRegex, input, func(in int) outcome {
		if in == input {
			return backtrackResult
		}
		return possessiveStar(m, atomRegex, in, rest, b)
	})
	if r.kind != backtrackOutcome {
		return r
	}
	// The atom could not extend further: this is the deepest reachable
	// point. Try rest from here; if it too fails, commit rather than
	// allowing a shallower frame to try fewer repetitions.
	r2 := rest(input)
	if r2.kind != backtrackOutcome {
		return r2
	}
	return commitResult(b)
}

func greedyOpt(m *matchState, atomRegex, input int, rest continuation) outcome {
	if !m.enter() {
		return abortResult
	}
	defer m.leave()

	r := matchAtom(m, atomRegex, input, rest)
	if r.kind != backtrackOutcome {
		return r
	}
	return rest(input)
}

func lazyOpt(m *matchState, atomRegex, input int, rest continuation) outcome {
	if !m.enter() {
		return abortResult
	}
	defer m.leave()

	r := rest(input)
	if r.kind != backtrackOutcome {
		return r
	}
	return matchAtom(m, atomRegex, input, rest)
}

func possessiveOpt(m *matchState, atomRegex, input int, rest continuation) outcome {
	if !m.enter() {
		return abortResult
	}
	defer m.leave()

	b := &boundary{}
	r := matchAtom(m, atomRegex, input, func(in int) outcome {
		r2 := rest(in)
		if r2.kind != backtrackOutcome {
			return r2
		}
		return commitResult(b)
	})
	if r.kind == commitOutcome && r.owner == b {
		return backtrackResult
	}
	if r.kind != backtrackOutcome {
		return r
	}
	return rest(input)
}
