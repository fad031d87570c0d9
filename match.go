package backre

// Match represents a successful search: the span of input that matched and
// a reference to the input it was found in.
//
// Example:
//
//	m := backre.NewMatch(5, 11, []byte("test foobar end"))
//	println(m.String()) // "foobar"
type Match struct {
	start    int
	end      int
	haystack []byte
}

// NewMatch builds a Match from an inclusive start, exclusive end, and the
// haystack they were found in. The haystack is stored by reference, not
// copied.
func NewMatch(start, end int, haystack []byte) *Match {
	return &Match{start: start, end: end, haystack: haystack}
}

// Start returns the inclusive start position of the match.
func (m *Match) Start() int { return m.start }

// End returns the exclusive end position of the match.
func (m *Match) End() int { return m.end }

// Len returns the length of the match in bytes.
func (m *Match) Len() int { return m.end - m.start }

// Bytes returns the matched bytes, a view into the original haystack.
func (m *Match) Bytes() []byte {
	if m.start < 0 || m.end > len(m.haystack) || m.start > m.end {
		return nil
	}
	return m.haystack[m.start:m.end]
}

// String returns the matched text, copied into a new string.
func (m *Match) String() string {
	return string(m.Bytes())
}

// IsEmpty reports whether the match has zero length, as happens with a
// pattern like the empty regex or `a*` matched against a string with no a's.
func (m *Match) IsEmpty() bool {
	return m.start == m.end
}

// Contains reports whether pos falls within [Start, End).
func (m *Match) Contains(pos int) bool {
	return pos >= m.start && pos < m.end
}
