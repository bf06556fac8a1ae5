package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runResolve with echo as the diagnostics command exercises the whole
// pipeline without a real linter.
func TestRunResolve_PrintsOneBasedLineNumbers(t *testing.T) {
	workspace = t.TempDir()
	configPath = ""
	apiKey = ""
	logger = zap.NewNop()
	t.Setenv("MENHERA_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	oldCmd, oldSource := diagCommand, diagSource
	diagCommand = "echo main.go:12: boom"
	diagSource = "go"
	defer func() { diagCommand, diagSource = oldCmd, oldSource }()

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())

	if err := runResolve(cmd, []string{"main.go"}); err != nil {
		t.Fatalf("runResolve: %v", err)
	}

	// The tool reported line 12; the user must see line 12, not the
	// zero-based 11 the signal carries internally.
	if !strings.Contains(out.String(), "main.go:12:") {
		t.Errorf("output %q does not show the tool's line number", out.String())
	}
	if strings.Contains(out.String(), "main.go:11:") {
		t.Errorf("output %q shows a zero-based line number", out.String())
	}
}
