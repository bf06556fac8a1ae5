package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"menhera/internal/host"
	"menhera/internal/monitor"
)

// checkCommitCmd judges the newest commit message against the
// conventional-commit grammar.
var checkCommitCmd = &cobra.Command{
	Use:   "check-commit",
	Short: "Judge the newest commit message",
	RunE:  runCheckCommit,
}

func runCheckCommit(cmd *cobra.Command, args []string) error {
	_, bundle, err := loadRuntime()
	if err != nil {
		return err
	}

	git := host.NewGitCLI(workspace, logger)
	commit, ok := git.Latest()
	if !ok {
		return fmt.Errorf("no commits found in %s", workspace)
	}

	short := commit.Hash[:min(8, len(commit.Hash))]
	if monitor.ValidCommitMessage(commit.Message) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n  %s %s\n", bundle.CommitApproved, short, commit.Message)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n  %s %s\n", bundle.CommitDisapproved, short, commit.Message)
	return fmt.Errorf("commit message does not follow type(scope): subject")
}
