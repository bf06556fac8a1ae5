// Package host defines the collaborator contracts the engine talks through,
// plus the standalone implementations the CLI wires in: desktop toasts,
// terminal decoration rendering, git via the git CLI, platform audio, and a
// workspace-rooted file store. The engine never sees anything richer than
// these interfaces; editor rendering, webviews, and git plumbing stay on the
// far side of this boundary.
package host

import (
	"context"

	"menhera/internal/diagnostic"
)

// DiagnosticSource supplies the current error-severity diagnostics for a
// document, as a synchronous snapshot.
type DiagnosticSource interface {
	ErrorDiagnostics(documentURI string) []diagnostic.Signal
}

// Annotation is one per-line ghost message rendered at the end of a source
// line.
type Annotation struct {
	Line int
	Text string
}

// EditorSurface applies decorations and manipulates documents by path.
// SetAnnotations replaces the whole annotation set for the document, so
// racing evaluations cannot interleave into a corrupted mix.
type EditorSurface interface {
	SetAnnotations(documentURI string, anns []Annotation)
	ClearAnnotations(documentURI string)

	OpenDocument(path string) error
	CloseDocument(path string) error
	// InsertText appends text to an open document; used by the typewriter
	// effect one character at a time.
	InsertText(path, text string) error
	SaveDocument(path string) error
	IsOpen(path string) bool
}

// FileStore stats, writes, and deletes workspace files, scoped to the first
// workspace root.
type FileStore interface {
	Exists(path string) bool
	Write(path string, data []byte) error
	// Delete removes path; with trash set the file is moved aside instead of
	// unlinked.
	Delete(path string, trash bool) error
	// Resolve turns a workspace-relative path into an absolute one.
	Resolve(rel string) string
}

// Notifier shows fire-and-forget toasts. Ask additionally names an action the
// user could take; it still returns immediately.
type Notifier interface {
	Info(message string)
	Warn(message string)
	Error(message string)
	Ask(message, action string)
}

// Progress wraps a slow operation in a user-visible progress scope.
type Progress interface {
	Run(ctx context.Context, label string, fn func(context.Context) error) error
}

// Commit is the latest VCS commit.
type Commit struct {
	Hash    string
	Message string
}

// VCS exposes the repository head. Latest returns ok=false when there is no
// repository or no commit yet.
type VCS interface {
	Latest() (Commit, bool)
}

// AudioPlayer plays a named cue. Playback is fire-and-forget; failures are
// logged by implementations and never surfaced.
type AudioPlayer interface {
	Play(cue string)
}
