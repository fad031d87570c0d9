package backre

import "testing"

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"literal", "hello", false},
		{"alternation", "foo|bar", false},
		{"repetition", "a+", false},
		{"possessive", "a*+b", false},
		{"complement", "~a", false},
		{"intersection", "a&b", false},
		{"unbalanced paren", "(", true},
		{"bad escape", `\x`, true},
		{"dangling range", "a-", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Compile(%q) error = %v, wantErr %v", tt.pattern, err, tt.wantErr)
			}
			if !tt.wantErr && re == nil {
				t.Fatal("Compile() returned nil Regex with no error")
			}
		})
	}
}

func TestCompileSyntaxErrorKind(t *testing.T) {
	tests := []struct {
		pattern  string
		wantKind SyntaxErrorKind
	}{
		{"(", ErrUnbalancedParen},
		{"abc)", ErrUnbalancedParen},
		{`\x`, ErrBadEscape},
		{`abc\`, ErrBadEscape},
		// The skipper resets to the atom's start position on failure (it
		// never commits to a partial parse), so a dangling range operator
		// is reported at the literal that began the failed atom, not at
		// the dash itself — this surfaces as trailing, unparsed input.
		{"a-", ErrTrailingInput},
	}
	for _, tt := range tests {
		_, err := Compile(tt.pattern)
		se, ok := err.(*SyntaxError)
		if !ok {
			t.Fatalf("Compile(%q) error type = %T, want *SyntaxError", tt.pattern, err)
		}
		if se.Kind != tt.wantKind {
			t.Errorf("Compile(%q) Kind = %v, want %v", tt.pattern, se.Kind, tt.wantKind)
		}
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCompile did not panic on an ill-formed pattern")
		}
	}()
	MustCompile("(")
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"literal match", "hello", "hello world", true},
		{"literal no match", "hello", "goodbye world", false},
		{"alternation match", "foo|bar", "test bar end", true},
		{"alternation no match", "foo|bar", "test baz end", false},
		{"possessive forbids backtrack", "a*+a", "aa", false},
		{"nullable repeat on empty input", "(a+|)+", "", true},
		{"intersection excludes digits", "...&~0-9+?", "abc", true},
		{"intersection rejects all-digit", "...&~0-9+?", "123", false},
		{"chained intersection all agree", "aa&aa&aa", "aa", true},
		{"chained intersection disagrees", "aa&aa&bb", "aa", false},
		{"intersection then alternation", "a&b|c", "a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			if got := re.MatchString(tt.input); got != tt.want {
				t.Errorf("MatchString(%q) against %q = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}

func TestWraparoundRangeConsumesMaximally(t *testing.T) {
	// 9-0 is a wraparound byte range (the complement of the open interval
	// between '0' and '9'); '/' and ':' both lie outside 0-9, so the
	// greedy star should consume both of them.
	re := MustCompile("9-0*")
	loc := re.FindIndex([]byte("/:"))
	if loc == nil || loc[0] != 0 || loc[1] != 2 {
		t.Errorf("FindIndex = %v, want [0 2]", loc)
	}
}

func TestMatchExact(t *testing.T) {
	re := MustCompile("a*b")
	if !re.MatchExact([]byte("aaab")) {
		t.Error("MatchExact(aaab) = false, want true")
	}
	if re.MatchExact([]byte("aaabx")) {
		t.Error("MatchExact(aaabx) = true, want false")
	}
}

func TestFindIndex(t *testing.T) {
	re := MustCompile("a*b+bc")
	loc := re.FindIndex([]byte("xxabbbbc"))
	if loc == nil || loc[0] != 2 || loc[1] != 8 {
		t.Errorf("FindIndex = %v, want [2 8]", loc)
	}
}

func TestFindAll(t *testing.T) {
	re := MustCompile("a|b")
	matches := re.FindAllString("xaybxa", -1)
	want := []string{"a", "b", "a"}
	if len(matches) != len(want) {
		t.Fatalf("FindAllString = %v, want %v", matches, want)
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Errorf("FindAllString[%d] = %q, want %q", i, matches[i], want[i])
		}
	}
}

func TestFindAllPrefilterPath(t *testing.T) {
	// A pure literal alternation builds the Aho-Corasick prefilter; confirm
	// it produces the same results as the exhaustive scan.
	re, err := CompileWithConfig("foo|bar", DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	matches := re.FindAllString("foo xx bar yy foo", -1)
	want := []string{"foo", "bar", "foo"}
	if len(matches) != len(want) {
		t.Fatalf("FindAllString = %v, want %v", matches, want)
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Errorf("FindAllString[%d] = %q, want %q", i, matches[i], want[i])
		}
	}
}

func TestFindAllPrefilterDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnablePrefilter = false
	re, err := CompileWithConfig("foo|bar", cfg)
	if err != nil {
		t.Fatal(err)
	}
	matches := re.FindAllString("foo xx bar yy foo", -1)
	want := []string{"foo", "bar", "foo"}
	if len(matches) != len(want) {
		t.Fatalf("FindAllString = %v, want %v", matches, want)
	}
}

func TestFindMatch(t *testing.T) {
	re := MustCompile("a*b+bc")
	m := re.FindMatch([]byte("xxabbbbc"))
	if m == nil {
		t.Fatal("FindMatch returned nil, want a match")
	}
	if m.Start() != 2 || m.End() != 8 || m.String() != "abbbbc" {
		t.Errorf("FindMatch = {%d, %d, %q}, want {2, 8, \"abbbbc\"}", m.Start(), m.End(), m.String())
	}
	if m.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if !m.Contains(3) || m.Contains(8) {
		t.Error("Contains behaved unexpectedly at the match boundaries")
	}
	if re.FindMatch([]byte("no match here")) != nil {
		t.Error("FindMatch on a non-matching input returned non-nil")
	}
}

func TestFindAllMatches(t *testing.T) {
	re := MustCompile("a|b")
	matches := re.FindAllMatches([]byte("xaybxa"), -1)
	wantStarts := []int{1, 3, 5}
	if len(matches) != len(wantStarts) {
		t.Fatalf("FindAllMatches returned %d matches, want %d", len(matches), len(wantStarts))
	}
	for i, start := range wantStarts {
		if matches[i].Start() != start {
			t.Errorf("matches[%d].Start() = %d, want %d", i, matches[i].Start(), start)
		}
	}
}

func TestPackageLevelAnchoredUnanchored(t *testing.T) {
	cfg := DefaultConfig()
	if _, ok, err := Anchored("abc", []byte("abc"), 0, -1, cfg); err != nil || !ok {
		t.Errorf("Anchored = (_, %v, %v), want (_, true, nil)", ok, err)
	}
	if _, _, err := Anchored("(", []byte("abc"), 0, -1, cfg); err == nil {
		t.Error("Anchored with a malformed pattern returned a nil error")
	}
	if start, end, ok, err := Unanchored("b+", []byte("aabbbc"), 0, -1, cfg); err != nil || !ok || start != 2 || end != 5 {
		t.Errorf("Unanchored = (%d, %d, %v, %v), want (2, 5, true, nil)", start, end, ok, err)
	}
}

func TestFindAllLiteralFastPath(t *testing.T) {
	// "needle" has a single determined first byte and no prefilter-eligible
	// alternation, so this exercises the firstByte/simd.IndexByte fast path
	// in search rather than either the Aho-Corasick prefilter or the
	// exhaustive per-position scan.
	re := MustCompile("needle")
	matches := re.FindAllString("needle in a needlestack, needle", -1)
	want := []string{"needle", "needle", "needle"}
	if len(matches) != len(want) {
		t.Fatalf("FindAllString = %v, want %v", matches, want)
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Errorf("FindAllString[%d] = %q, want %q", i, matches[i], want[i])
		}
	}
	if re.MatchString("no match here") {
		t.Error("MatchString found a match where none exists")
	}
}

func TestRecursionLimitSurfacesAsError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRecursionDepth = 3
	_, _, err := Anchored("((((((((((a))))))))))", []byte("a"), 0, -1, cfg)
	if err != ErrRecursionLimit {
		t.Errorf("err = %v, want ErrRecursionLimit", err)
	}
}
