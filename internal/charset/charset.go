// Package charset implements the byte alphabet and escape decoding described
// in spec.md §4.1: classifying a byte as a metacharacter or literal, and
// decoding the two-byte escape form (a backslash followed by a
// metacharacter).
//
// This is the leaf of the dependency graph (spec.md §2 item 1): internal/syntax
// and internal/engine both call into it but it calls nothing else in this
// module.
package charset

// meta is a membership table over the metacharacter set, following the table
// dispatch idiom quasilyte-regex/syntax/lexer.go uses for reMetachar: a plain
// [256]bool beats a strings.IndexByte scan and needs no further explanation.
var meta = buildMetaTable()

func buildMetaTable() [256]bool {
	var t [256]bool
	for _, b := range []byte(`\.-*+?()|&~`) {
		t[b] = true
	}
	return t
}

// IsMeta reports whether b is one of the metacharacters defined in spec.md
// §3: backslash, dot, dash, star, plus, question mark, parens, pipe, plus
// the two extension characters '&' (intersection) and '~' (complement).
//
// '^' is deliberately not a member: per spec.md §3/§4.3 it is a negation
// prefix recognized in atom-initial position (directly before a symbol or
// range; '^.' and '^(' are syntax errors), not an escapable metacharacter,
// so \^ is a bad escape. Where a symbol is expected after that position (the
// byte after a '^' prefix, or the upper end of a range, as in '^^' or
// 'a-^'), ParseSymbol accepts '^' as an ordinary literal byte.
func IsMeta(b byte) bool {
	return meta[b]
}

// ParseSymbol decodes the byte at regex[pos] as a `symbol` production
// (spec.md §3/§4.1): either a single non-metacharacter byte, or a backslash
// followed by a metacharacter (which denotes that metacharacter literally).
//
// It returns the decoded byte, the position just past it, and ok=true on
// success. ok=false means pos does not begin a well-formed symbol: either a
// bare metacharacter with no preceding backslash, or a backslash at the end
// of the text, or a backslash followed by a non-metacharacter.
func ParseSymbol(regex []byte, pos int) (b byte, next int, ok bool) {
	if pos >= len(regex) {
		return 0, pos, false
	}
	if regex[pos] == '\\' {
		if pos+1 >= len(regex) || !IsMeta(regex[pos+1]) {
			return 0, pos, false
		}
		return regex[pos+1], pos + 2, true
	}
	if IsMeta(regex[pos]) {
		return 0, pos, false
	}
	return regex[pos], pos + 1, true
}
