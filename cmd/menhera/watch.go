package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"menhera/internal/config"
	"menhera/internal/engine"
	"menhera/internal/host"
	"menhera/internal/locale"
	"menhera/internal/monitor"
	"menhera/internal/mood"
	"menhera/internal/quip"
	"menhera/internal/timerx"
)

var (
	diagCommand string
	diagSource  string
	bannerTheme string
)

// watchCmd runs the full companion loop against a workspace
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the workspace and react to diagnostics, idling, and commits",
	Long: `Watches the workspace with a filesystem watcher. Every file event counts
as activity for the idle and session monitors; source file events re-run the
diagnostics command after a debounce window and feed the escalation engine;
events under .git re-check the newest commit message.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&diagCommand, "diag-cmd", "go vet ./...", "diagnostics command run on file changes")
	watchCmd.Flags().StringVar(&diagSource, "diag-source", "go", "source label attached to parsed diagnostics")
	watchCmd.Flags().StringVar(&bannerTheme, "theme", "love", "banner color theme (love, spooky, rainbow, mono, serenity)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, bundle, err := loadRuntime()
	if err != nil {
		return err
	}
	cfgFn := func() *config.Config { return cfg }

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Host surfaces.
	notify := host.NewDesktopNotifier(cfg.Name, logger)
	mascot := host.NewTerminalMascot(os.Stdout, func() bool { return cfg.Features.Terminal }, logger)
	moods := mood.NewTracker(mascot)
	editor := host.NewTerminalEditor(os.Stdout, logger)
	files := host.NewWorkspaceFiles(workspace, logger)
	audio := host.NewSubprocessAudio(func() bool { return cfg.Features.Voice }, logger)
	diags := host.NewCommandDiagnostics(workspace, diagSource, strings.Fields(diagCommand), logger)
	git := host.NewGitCLI(workspace, logger)

	// Remote quip generation is optional; without a key the engine prompts
	// for one and the resolver serves the static table and fallback only.
	var gen quip.Generator
	if cfg.LLM.APIKey != "" {
		g, err := quip.NewGenAIGenerator(ctx, cfg.LLM.APIKey, cfg.LLM.Model)
		if err != nil {
			logger.Warn("remote generator unavailable, using fallbacks", zap.Error(err))
		} else {
			gen = g
		}
	}
	resolver := quip.NewResolver(bundle, gen, host.NewLogProgress(logger), logger)

	sched := timerx.NewWall()
	defer sched.CancelAll()

	eng := engine.New(cfgFn, bundle, engine.Deps{
		Diagnostics: diags,
		Editor:      editor,
		Files:       files,
		Notifier:    notify,
		Audio:       audio,
		Resolver:    resolver,
		Moods:       moods,
		Scheduler:   sched,
		Logger:      logger,
	})
	defer eng.Reset()

	idle := monitor.NewIdle(cfgFn, bundle, sched, notify, logger)
	session := monitor.NewSession(cfgFn, bundle, sched, notify, logger)
	commits := monitor.NewCommitWatch(git, bundle, moods, notify, logger)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()
	if err := addWorkspaceDirs(watcher, workspace); err != nil {
		return fmt.Errorf("failed to watch workspace: %w", err)
	}

	if cfg.Features.Terminal {
		fmt.Fprintln(cmd.OutOrStdout(), host.Banner(bundle.Startup, bannerTheme))
	}
	moods.SetBase(mood.Calm)
	moods.Say(bundle.MascotInitial)
	logger.Info("watching workspace",
		zap.String("workspace", workspace), zap.String("diag_cmd", diagCommand))

	// The ladder and session clock start at launch, and the newest commit is
	// judged immediately rather than waiting for the next one.
	idle.OnActivity()
	session.OnActivity()
	commits.OnRepoChange()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleEvent(watcher, ev, bundle, eng, idle, session, commits)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(werr))
		}
	}
}

func handleEvent(watcher *fsnotify.Watcher, ev fsnotify.Event, bundle *locale.Bundle,
	eng *engine.Engine, idle *monitor.Idle, session *monitor.Session, commits *monitor.CommitWatch) {

	if underGitDir(ev.Name) {
		commits.OnRepoChange()
		return
	}

	// The typewriter's own writes must not count as user activity or reach
	// the debounce gate.
	if letterFile(bundle, ev.Name) {
		return
	}

	// Newly created directories join the watch set.
	if ev.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			_ = watcher.Add(ev.Name)
			return
		}
	}

	idle.OnActivity()
	session.OnActivity()
	eng.OnDiagnosticsChanged(ev.Name)
}

// addWorkspaceDirs registers root and its subdirectories, skipping hidden
// directories but keeping .git so commits are noticed.
func addWorkspaceDirs(watcher *fsnotify.Watcher, root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are not fatal
		}
		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); strings.HasPrefix(name, ".") && path != root && name != ".git" {
			return filepath.SkipDir
		}
		if d.Name() == ".git" {
			// HEAD and the branch refs are enough to notice new commits.
			_ = watcher.Add(path)
			_ = watcher.Add(filepath.Join(path, "refs", "heads"))
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
	return err
}

// letterFile reports whether path is one of the punishment letters.
func letterFile(bundle *locale.Bundle, path string) bool {
	base := filepath.Base(path)
	return base == bundle.Letter1.Filename || base == bundle.Letter2.Filename
}

func underGitDir(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".git" {
			return true
		}
	}
	return false
}
