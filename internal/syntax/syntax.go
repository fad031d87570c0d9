// Package syntax implements the grammar skipper described in spec.md §4.2: a
// pure recursive descent over regex text that, given a cursor, returns the
// cursor just past the next syntactic unit (symbol/atom/factor/term/regex).
// It is used both for syntax checking (WellFormed) and, during matching, by
// internal/engine to locate the byte after an already-entered sub-expression
// to find its sibling, without re-parsing it semantically.
//
// The grammar (spec.md §3, with the Open Questions in DESIGN.md resolved to
// support both '^' atom-negation and '~' term-complement, and '&'
// intersection):
//
//	symbol ::= literal-byte | '\' metachar
//	atom   ::= '(' regex ')' | '.' | '^'? symbol ('-' symbol)?
//	factor ::= atom ('*'|'+'|'?')? ('+'|'?')?
//	term   ::= '~'? factor*
//	regex  ::= term (('|'|'&') term)*
//
// Grounded on original_source/cps-re.c's skip_symbol/skip_atom/skip_term/
// skip_regex, extended with the possessive/lazy quantifier suffixes and the
// '&'/'~'/'^' productions spec.md adds over the original.
package syntax

import "github.com/coregx/backre/internal/charset"

const repeatChars = "*+?"
const eagerChars = "+?"

func isOneOf(b byte, set string) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			return true
		}
	}
	return false
}

// SkipSymbol returns the position just past the symbol at regex[pos], or
// ok=false if regex[pos] is not a well-formed symbol.
func SkipSymbol(regex []byte, pos int) (next int, ok bool) {
	_, next, ok = charset.ParseSymbol(regex, pos)
	return next, ok
}

// SkipAtom returns the position just past the atom at regex[pos], or
// ok=false when no well-formed atom starts there: at the end of the text,
// at a byte that cannot begin an atom (such as '|', '&', ')' or a
// quantifier), or on an unbalanced parenthesis, bad escape, or a dangling
// range operator with no second symbol. It does not tell these cases apart;
// callers such as SkipTerm and the engine treat a failure as the end of the
// current term. Mirroring cps-re.c's skip_atom, once a '(' or a range dash
// has committed to needing more input, there is no fallback interpretation.
func SkipAtom(regex []byte, pos int) (next int, ok bool) {
	if pos >= len(regex) {
		return pos, false
	}
	switch regex[pos] {
	case '(':
		inner := SkipRegex(regex, pos+1)
		if inner < len(regex) && regex[inner] == ')' {
			return inner + 1, true
		}
		return pos, false
	case '.':
		return pos + 1, true
	}

	p := pos
	if regex[p] == '^' {
		p++
	}
	sym, ok := SkipSymbol(regex, p)
	if !ok {
		return pos, false
	}
	if sym < len(regex) && regex[sym] == '-' {
		sym2, ok := SkipSymbol(regex, sym+1)
		if !ok {
			return pos, false
		}
		return sym2, true
	}
	return sym, true
}

// SkipFactor returns the position just past the factor at regex[pos]
// (an atom plus its optional quantifier and eagerness suffix), or ok=false
// if no atom starts at pos.
func SkipFactor(regex []byte, pos int) (next int, ok bool) {
	next, ok = SkipAtom(regex, pos)
	if !ok {
		return pos, false
	}
	if next < len(regex) && isOneOf(regex[next], repeatChars) {
		next++
		if next < len(regex) && isOneOf(regex[next], eagerChars) {
			next++
		}
	}
	return next, true
}

// SkipTerm returns the position just past the term starting at regex[pos].
// A term is always well-formed (the empty term matches the empty string),
// so SkipTerm never fails: it simply stops advancing at the first position
// where no further factor can be parsed, exactly like cps-re.c's skip_term.
// Any underlying syntax error (e.g. an unbalanced paren inside the term)
// surfaces only indirectly, as unconsumed trailing text at the top level —
// see WellFormed.
func SkipTerm(regex []byte, pos int) int {
	p := pos
	if p < len(regex) && regex[p] == '~' {
		p++
	}
	for {
		next, ok := SkipFactor(regex, p)
		if !ok || next == p {
			break
		}
		p = next
	}
	return p
}

// SkipRegex returns the position just past the regex starting at regex[pos]:
// one or more terms joined by '|' or '&'. Like SkipTerm, this never fails.
func SkipRegex(regex []byte, pos int) int {
	p := SkipTerm(regex, pos)
	for p < len(regex) && (regex[p] == '|' || regex[p] == '&') {
		p = SkipTerm(regex, p+1)
	}
	return p
}

// WellFormed reports whether regex is entirely consumed by SkipRegex — the
// grammar's total-consumption well-formedness test (spec.md §4.2).
func WellFormed(regex []byte) bool {
	return SkipRegex(regex, 0) == len(regex)
}

// FailurePos returns the first byte offset SkipRegex could not pass, for use
// in diagnosing a syntax error. It is only meaningful when WellFormed
// reports false; on a well-formed regex it equals len(regex).
func FailurePos(regex []byte) int {
	return SkipRegex(regex, 0)
}

// FirstLiteralByte reports the single byte every match of regex must begin
// with, when that can be determined purely from the text at regex[0] without
// considering alternation or repetition. It is conservative: it returns
// ok=false for anything that could start a match with more than one byte
// value (a range, a dot, a negated atom, a group, a leading '~', or a
// quantifier that makes the first atom optional), never a false positive.
//
// Used by the caller's Unanchored fallback to skip candidate start positions
// that cannot possibly match, the same role digit.go's first-byte prefilter
// plays ahead of the teacher's heavier strategy engines.
func FirstLiteralByte(regex []byte) (b byte, ok bool) {
	if len(regex) == 0 || regex[0] == '^' {
		return 0, false
	}
	sym, next, symOK := charset.ParseSymbol(regex, 0)
	if !symOK {
		return 0, false
	}
	if next < len(regex) {
		switch regex[next] {
		case '-', '*', '?':
			return 0, false
		}
	}

	// The first atom only constrains every match if there is no top-level
	// alternation: an unescaped '|' at a term boundary would let a match
	// begin with a different term's first byte instead. Intersection ('&')
	// is safe to walk past, since both operands are required to match from
	// the same start position.
	termEnd := SkipTerm(regex, 0)
	for termEnd < len(regex) {
		if regex[termEnd] != '&' {
			return 0, false
		}
		termEnd = SkipTerm(regex, termEnd+1)
	}
	return sym, true
}
