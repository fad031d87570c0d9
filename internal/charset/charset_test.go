package charset

import "testing"

func TestIsMeta(t *testing.T) {
	tests := []struct {
		b    byte
		want bool
	}{
		{'\\', true},
		{'.', true},
		{'-', true},
		{'*', true},
		{'+', true},
		{'?', true},
		{'(', true},
		{')', true},
		{'|', true},
		{'&', true},
		{'~', true},
		{'^', false},
		{'a', false},
		{'0', false},
		{' ', false},
	}
	for _, tt := range tests {
		if got := IsMeta(tt.b); got != tt.want {
			t.Errorf("IsMeta(%q) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		name     string
		regex    string
		pos      int
		wantB    byte
		wantNext int
		wantOK   bool
	}{
		{"plain literal", "abc", 0, 'a', 1, true},
		{"escaped dot", `\.x`, 0, '.', 2, true},
		{"escaped backslash", `\\`, 0, '\\', 2, true},
		{"bare metachar", "*abc", 0, 0, 0, false},
		{"trailing backslash", `a\`, 1, 0, 1, false},
		{"backslash then non-meta", `\a`, 0, 0, 0, false},
		{"out of range", "a", 1, 0, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, next, ok := ParseSymbol([]byte(tt.regex), tt.pos)
			if ok != tt.wantOK {
				t.Fatalf("ParseSymbol(%q, %d) ok = %v, want %v", tt.regex, tt.pos, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if b != tt.wantB || next != tt.wantNext {
				t.Errorf("ParseSymbol(%q, %d) = (%q, %d), want (%q, %d)", tt.regex, tt.pos, b, next, tt.wantB, tt.wantNext)
			}
		})
	}
}
