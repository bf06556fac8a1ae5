// Package engine implements the escalation state machine: it consumes
// debounced diagnostic counts and produces mood transitions, punishment
// artifacts, notifications, and per-line display strings. All episode state
// (punishment flags, previous count, pending timers) lives on one Engine
// instance with an explicit constructor and Reset, so multiple independent
// instances can exist and tests never need process restarts.
package engine

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"menhera/internal/config"
	"menhera/internal/diagnostic"
	"menhera/internal/host"
	"menhera/internal/locale"
	"menhera/internal/mood"
	"menhera/internal/quip"
	"menhera/internal/timerx"
)

// Audio cue identifiers handed to the player on the two punishment edges.
const (
	CueAngry   = "angry"
	CueFurious = "furious"
)

// Deps are the collaborators the engine emits side effects through.
type Deps struct {
	Diagnostics host.DiagnosticSource
	Editor      host.EditorSurface
	Files       host.FileStore
	Notifier    host.Notifier
	Audio       host.AudioPlayer
	Resolver    *quip.Resolver
	Moods       *mood.Tracker
	Scheduler   timerx.Scheduler
	Logger      *zap.Logger
}

// Engine is the escalation state machine. One instance per workspace.
type Engine struct {
	cfg    func() *config.Config // re-read on every use, never cached
	bundle *locale.Bundle
	deps   Deps
	log    *zap.Logger

	mu           sync.Mutex
	hasPunished  bool // first punishment issued this episode
	morePunished bool // stagnation timer fired this episode
	prevCount    int
	evaluated    bool // any evaluation has completed
	keyPrompted  bool
	pendingURI   string
	typists      [2]context.CancelFunc

	// syncTypewriter makes artifact writing synchronous; tests only.
	syncTypewriter bool
}

// New constructs an Engine. cfg is called on every evaluation so config
// edits take effect without restarting.
func New(cfg func() *config.Config, bundle *locale.Bundle, deps Deps) *Engine {
	return &Engine{
		cfg:    cfg,
		bundle: bundle,
		deps:   deps,
		log:    deps.Logger.Named("engine"),
	}
}

// Reset cancels pending timers and clears all episode state.
func (e *Engine) Reset() {
	e.deps.Scheduler.Cancel(timerx.RoleDebounce)
	e.deps.Scheduler.Cancel(timerx.RoleStagnation)
	e.mu.Lock()
	e.stopTypistsLocked()
	e.hasPunished = false
	e.morePunished = false
	e.prevCount = 0
	e.evaluated = false
	e.pendingURI = ""
	e.mu.Unlock()
}

// Evaluate runs one full evaluation pass for the document. It is the only
// entry point that mutates escalation state.
func (e *Engine) Evaluate(documentURI string) {
	cfg := e.cfg()

	// Self-exclusion: never react to the punishment letters themselves, or
	// the engine would feed on its own artifacts.
	if e.isArtifact(documentURI) {
		return
	}

	if cfg.LLM.APIKey == "" {
		e.mu.Lock()
		prompted := e.keyPrompted
		e.keyPrompted = true
		e.mu.Unlock()
		if !prompted {
			e.deps.Notifier.Ask(e.bundle.APIKeyPrompt, "open settings")
		}
		return
	}

	evalID := uuid.NewString()[:8]
	sigs := e.deps.Diagnostics.ErrorDiagnostics(documentURI)
	count := len(sigs)
	e.log.Debug("evaluating",
		zap.String("eval", evalID), zap.String("doc", documentURI), zap.Int("errors", count))

	if count == 0 {
		e.enterCalm(documentURI)
		return
	}

	esc := cfg.Escalation
	e.mu.Lock()
	wasFirstPunch := false
	armStagnation := false

	e.prevCount = count
	e.evaluated = true

	switch {
	case count >= esc.AngerThreshold:
		if !e.hasPunished {
			// Sticky: set before any fallible side effect so repeated
			// evaluations cannot storm duplicate artifacts.
			e.hasPunished = true
			wasFirstPunch = true
		}
		if !e.morePunished && !e.deps.Scheduler.Armed(timerx.RoleStagnation) {
			armStagnation = true
		}
	default: // 0 < count < threshold
		e.deps.Scheduler.Cancel(timerx.RoleStagnation)
		if count < esc.RecoveryThreshold {
			// Forgiveness below the recovery bar, even before zero errors.
			e.hasPunished = false
			e.morePunished = false
		}
	}
	punished, escalated := e.hasPunished, e.morePunished
	e.mu.Unlock()

	switch {
	case escalated:
		e.deps.Moods.SetBase(mood.Escalated)
	case punished:
		e.deps.Moods.SetBase(mood.Punished)
	default:
		e.deps.Moods.SetBase(mood.Warning)
	}

	if wasFirstPunch {
		e.log.Info("punishment issued", zap.String("eval", evalID), zap.Int("errors", count))
		e.deps.Notifier.Error(e.bundle.Letter1.Message)
		e.deps.Moods.Say(e.bundle.MascotAngry)
		if cfg.Features.Voice {
			e.deps.Audio.Play(CueAngry)
		}
		if cfg.Features.Letters {
			e.createLetter(0)
		}
	}
	if armStagnation {
		e.deps.Scheduler.After(timerx.RoleStagnation, esc.StagnationDelay(), e.onStagnation)
	}

	e.annotate(documentURI, sigs)
}

// onStagnation fires the second punishment if the episode is still active.
func (e *Engine) onStagnation() {
	cfg := e.cfg()
	e.mu.Lock()
	if !e.hasPunished || e.morePunished {
		e.mu.Unlock()
		return
	}
	e.morePunished = true
	e.mu.Unlock()

	e.log.Info("stagnation timer fired, second punishment")
	e.deps.Moods.SetBase(mood.Escalated)
	e.deps.Notifier.Error(e.bundle.Letter2.Message)
	if cfg.Features.Voice {
		e.deps.Audio.Play(CueFurious)
	}
	if cfg.Features.Letters {
		e.createLetter(1)
	}
}

// enterCalm handles the zero-error path. Every side effect here is
// idempotent, but the notifications fire only on the transition edge.
func (e *Engine) enterCalm(documentURI string) {
	e.deps.Scheduler.Cancel(timerx.RoleStagnation)

	e.mu.Lock()
	wasPunished := e.hasPunished || e.morePunished
	firstCalm := e.prevCount > 0 || !e.evaluated
	e.hasPunished = false
	e.morePunished = false
	e.prevCount = 0
	e.evaluated = true
	e.stopTypistsLocked()
	e.mu.Unlock()

	e.deps.Editor.ClearAnnotations(documentURI)
	e.deps.Moods.SetBase(mood.Calm)
	e.deleteLetters()

	if wasPunished {
		e.deps.Notifier.Info(e.bundle.Cleanup)
	}
	if firstCalm {
		e.deps.Notifier.Info(e.bundle.Perfect)
	}
}

// annotate resolves every diagnostic concurrently and replaces the
// document's decoration set. The first resolved message also feeds the mood
// indicator side channel.
func (e *Engine) annotate(documentURI string, sigs []diagnostic.Signal) {
	msgs := e.deps.Resolver.ResolveAll(context.Background(), sigs)

	anns := make([]host.Annotation, 0, len(sigs))
	for i, sig := range sigs {
		anns = append(anns, host.Annotation{Line: sig.Line, Text: msgs[i]})
	}
	e.deps.Editor.SetAnnotations(documentURI, anns)
	if len(msgs) > 0 {
		e.deps.Moods.Say(msgs[0])
	}
}

// isArtifact reports whether the document is one of the punishment letters.
func (e *Engine) isArtifact(documentURI string) bool {
	base := filepath.Base(documentURI)
	return base == e.bundle.Letter1.Filename || base == e.bundle.Letter2.Filename
}
