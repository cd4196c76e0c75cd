package rlinput

import (
	"testing"

	"go-drone-defense/internal/input"
)

func TestKeyFromRune(t *testing.T) {
	tests := []struct {
		r      rune
		want   input.Key
		wantOK bool
	}{
		{'w', "w", true},
		{'W', "w", true},
		{'3', "3", true},
		{' ', "", false},
		{'\t', "", false},
	}
	for _, tt := range tests {
		got, ok := KeyFromRune(tt.r)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("KeyFromRune(%q) = %q, %v, want %q, %v", tt.r, got, ok, tt.want, tt.wantOK)
		}
	}
	if input.DefaultBindings[mustKey(t, 'Q')] != input.ActionQuit {
		t.Error("uppercase Q does not map to quit")
	}
}

func mustKey(t *testing.T, r rune) input.Key {
	t.Helper()
	k, ok := KeyFromRune(r)
	if !ok {
		t.Fatalf("KeyFromRune(%q) rejected", r)
	}
	return k
}
