package host

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"menhera/internal/diagnostic"
)

func TestParseDiagnostics(t *testing.T) {
	out := `
main.go:12:5: undefined: foo (compile)
main.go:30: missing return
other.go:3:1: unused variable x
not a diagnostic line
`
	got := parseDiagnostics(out, "go-vet", "main.go")
	want := []diagnostic.Signal{
		{Source: "go-vet", Code: "compile", Message: "undefined: foo", Line: 11, DocumentURI: "main.go"},
		{Source: "go-vet", Code: "", Message: "missing return", Line: 29, DocumentURI: "main.go"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseDiagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDiagnostics_AllFiles(t *testing.T) {
	out := "a.go:1:1: one\nb.go:2:2: two\n"
	got := parseDiagnostics(out, "lint", "")
	if len(got) != 2 {
		t.Fatalf("expected 2 signals, got %d", len(got))
	}
}

func TestSplitCode(t *testing.T) {
	tests := []struct {
		msg      string
		code     string
		rest     string
	}{
		{"undefined: foo (compile)", "compile", "undefined: foo"},
		{"plain message", "", "plain message"},
		{"weird (two words)", "", "weird (two words)"},
	}
	for _, tt := range tests {
		code, rest := splitCode(tt.msg)
		if code != tt.code || rest != tt.rest {
			t.Errorf("splitCode(%q) = (%q, %q), want (%q, %q)", tt.msg, code, rest, tt.code, tt.rest)
		}
	}
}
