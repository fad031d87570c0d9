// Package prefilter extracts the literals of a regex that is entirely a pure
// literal alternation, and builds an Aho-Corasick automaton over them so a
// compiled Regex's search can jump straight to candidate start positions instead of
// probing every byte offset (spec.md §4.7's unanchored search, accelerated
// the way meta/compile.go's buildStrategyEngines accelerates a large
// literal alternation in the teacher engine).
//
// Extraction is conservative: anything other than a bare '|'-separated run
// of escaped-or-literal symbols (no '.', '(', '^', ranges, '~', '&', or
// quantifiers) bails out with ok=false, and the caller falls back to the
// exhaustive per-position search.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/backre/internal/charset"
)

// Extract returns the literal alternatives of regexText's top-level
// alternation, or ok=false if regexText is not entirely such an
// alternation.
func Extract(regexText []byte) (literals [][]byte, ok bool) {
	pos := 0
	for {
		lit, next, litOK := extractLiteralTerm(regexText, pos)
		if !litOK {
			return nil, false
		}
		literals = append(literals, lit)
		if next >= len(regexText) {
			return literals, true
		}
		if regexText[next] != '|' {
			return nil, false
		}
		pos = next + 1
	}
}

func extractLiteralTerm(regexText []byte, pos int) (lit []byte, next int, ok bool) {
	if pos < len(regexText) && regexText[pos] == '~' {
		return nil, 0, false
	}
	var buf []byte
	p := pos
	for p < len(regexText) && regexText[p] != '|' && regexText[p] != '&' {
		if regexText[p] == '^' {
			return nil, 0, false
		}
		sym, after, symOK := charset.ParseSymbol(regexText, p)
		if !symOK {
			return nil, 0, false
		}
		if after < len(regexText) && isQuantifier(regexText[after]) {
			return nil, 0, false
		}
		buf = append(buf, sym)
		p = after
	}
	return buf, p, true
}

func isQuantifier(b byte) bool {
	return b == '*' || b == '+' || b == '?'
}

// Prefilter is a built automaton over the literal alternatives of one
// regex, used to enumerate candidate match-start positions.
type Prefilter struct {
	automaton *ahocorasick.Automaton
}

// Build extracts regexText's literal alternation and compiles an automaton
// over it. It returns ok=false if extraction fails, there are no
// alternatives, or any alternative is shorter than minLiteralLen — a
// partial automaton would miss occurrences of the excluded alternatives,
// so completeness takes priority over using it at all.
func Build(regexText []byte, minLiteralLen int) (*Prefilter, bool) {
	literals, ok := Extract(regexText)
	if !ok || len(literals) == 0 {
		return nil, false
	}
	for _, lit := range literals {
		if len(lit) < minLiteralLen {
			return nil, false
		}
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &Prefilter{automaton: auto}, true
}

// NextCandidate returns the start and end of the next literal occurrence at
// or after from, or ok=false if the automaton finds no further occurrence.
func (p *Prefilter) NextCandidate(haystack []byte, from int) (start, end int, ok bool) {
	m := p.automaton.Find(haystack, from)
	if m == nil {
		return 0, 0, false
	}
	return m.Start, m.End, true
}
