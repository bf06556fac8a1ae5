package engine

import (
	"menhera/internal/timerx"
)

// OnDiagnosticsChanged is the debounce gate in front of Evaluate. Bursts of
// diagnostic-change events within the delay window coalesce into exactly one
// evaluation for the most recently referenced document, using the
// diagnostics state as of firing time, not call time.
func (e *Engine) OnDiagnosticsChanged(documentURI string) {
	// Letter files never enter the gate: their own write events would
	// overwrite the pending slot, and the eventual evaluation would
	// self-exclude, silently dropping a real document's evaluation.
	if e.isArtifact(documentURI) {
		return
	}

	e.mu.Lock()
	e.pendingURI = documentURI
	e.mu.Unlock()

	delay := e.cfg().Escalation.DebounceDelay()
	e.deps.Scheduler.After(timerx.RoleDebounce, delay, func() {
		e.mu.Lock()
		uri := e.pendingURI
		e.mu.Unlock()
		e.Evaluate(uri)
	})
}
