package prefilter

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    [][]byte
		wantOK  bool
	}{
		{"single literal", "foo", [][]byte{[]byte("foo")}, true},
		{"alternation", "foo|bar|baz", [][]byte{[]byte("foo"), []byte("bar"), []byte("baz")}, true},
		{"escaped metachar", `a\.b|c`, [][]byte{[]byte("a.b"), []byte("c")}, true},
		{"contains dot", "a.b|c", nil, false},
		{"contains group", "(a)|b", nil, false},
		{"contains quantifier", "ab*|c", nil, false},
		{"contains range", "a-z|c", nil, false},
		{"contains negation", "^a|c", nil, false},
		{"contains complement", "~a|c", nil, false},
		{"contains intersection", "a&b", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract([]byte(tt.pattern))
			if ok != tt.wantOK {
				t.Fatalf("Extract(%q) ok = %v, want %v", tt.pattern, ok, tt.wantOK)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestBuildRespectsMinLiteralLen(t *testing.T) {
	// "a" is shorter than minLiteralLen: a partial automaton would miss
	// occurrences of it, so Build must refuse entirely rather than build
	// an incomplete one.
	if _, ok := Build([]byte("a|bbbb"), 2); ok {
		t.Error("Build(a|bbbb, minLen=2) = ok, want false (short alternative present)")
	}
	if _, ok := Build([]byte("aa|bbbb"), 2); !ok {
		t.Error("Build(aa|bbbb, minLen=2) = not ok, want true")
	}
}

func TestBuildFindsCandidates(t *testing.T) {
	pf, ok := Build([]byte("foo|bar"), 2)
	if !ok {
		t.Fatal("Build(foo|bar) failed")
	}
	start, end, found := pf.NextCandidate([]byte("xx bar yy foo"), 0)
	if !found || start != 3 || end != 6 {
		t.Errorf("NextCandidate = (%d, %d, %v), want (3, 6, true)", start, end, found)
	}
	_, _, found = pf.NextCandidate([]byte("nothing here"), 0)
	if found {
		t.Error("NextCandidate found a candidate where none exists")
	}
}
