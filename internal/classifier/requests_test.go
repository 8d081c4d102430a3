package classifier

import (
	"testing"
	"unicode/utf8"
)

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short ascii untouched", "plain text", 500, "plain text"},
		{"ascii cut at cap", "abcdef", 4, "abcd"},
		{"multibyte not split", "café", 4, "café"},
		{"multibyte cut at cap", "ééééé", 3, "ééé"},
		{"mixed cut before rune", "ab日本語", 3, "ab日"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.in, tt.max)
			}
		})
	}
}
