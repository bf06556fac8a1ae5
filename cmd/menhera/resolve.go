package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"menhera/internal/host"
	"menhera/internal/quip"
)

// resolveCmd runs the diagnostics command once and prints the quip for every
// error it reports against the given file.
var resolveCmd = &cobra.Command{
	Use:   "resolve [file]",
	Short: "Run diagnostics once and print her reaction to each error",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&diagCommand, "diag-cmd", "go vet ./...", "diagnostics command to run")
	resolveCmd.Flags().StringVar(&diagSource, "diag-source", "go", "source label attached to parsed diagnostics")
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, bundle, err := loadRuntime()
	if err != nil {
		return err
	}

	diags := host.NewCommandDiagnostics(workspace, diagSource, strings.Fields(diagCommand), logger)
	sigs := diags.ErrorDiagnostics(args[0])
	if len(sigs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), bundle.Perfect)
		return nil
	}

	var gen quip.Generator
	if cfg.LLM.APIKey != "" {
		g, err := quip.NewGenAIGenerator(cmd.Context(), cfg.LLM.APIKey, cfg.LLM.Model)
		if err != nil {
			logger.Warn("remote generator unavailable, using fallbacks", zap.Error(err))
		} else {
			gen = g
		}
	}
	resolver := quip.NewResolver(bundle, gen, host.NewLogProgress(logger), logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.LLM.TimeoutDuration())
	defer cancel()
	msgs := resolver.ResolveAll(ctx, sigs)
	for i, sig := range sigs {
		// Signal.Line is zero-based; printed line numbers are one-based.
		fmt.Fprintf(cmd.OutOrStdout(), "%s:%d: %s\n", args[0], sig.Line+1, msgs[i])
	}
	return nil
}
