package host

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCenterText(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		width int
		pad   int
	}{
		{"ascii", "hello", 11, 3},
		{"multibyte", "ずっと見てる", 20, 7},
		{"mixed", "watching… 見てる", 24, 5},
		{"wider than border", "aaaaaaaaaa", 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := centerText(tc.text, tc.width)
			if !strings.HasSuffix(got, tc.text) {
				t.Fatalf("centerText(%q, %d) = %q, text mangled", tc.text, tc.width, got)
			}
			if pad := utf8.RuneCountInString(got) - utf8.RuneCountInString(tc.text); pad != tc.pad {
				t.Errorf("centerText(%q, %d) pad = %d runes, want %d", tc.text, tc.width, pad, tc.pad)
			}
		})
	}
}
