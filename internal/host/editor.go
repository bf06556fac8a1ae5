package host

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

var (
	ghostStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff69b4")).Italic(true)
	fileStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff8ce0")).Bold(true)
)

// TerminalEditor is the standalone EditorSurface: annotations render as pink
// ghost lines on the terminal, and "documents" are plain files written
// incrementally for the typewriter effect.
type TerminalEditor struct {
	mu   sync.Mutex
	out  io.Writer
	open map[string]*os.File
	log  *zap.Logger
}

// NewTerminalEditor returns an editor surface writing to out (os.Stdout when
// nil).
func NewTerminalEditor(out io.Writer, log *zap.Logger) *TerminalEditor {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalEditor{out: out, open: make(map[string]*os.File), log: log}
}

// SetAnnotations replaces and re-renders the document's ghost messages.
func (e *TerminalEditor) SetAnnotations(documentURI string, anns []Annotation) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sorted := make([]Annotation, len(anns))
	copy(sorted, anns)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Line < sorted[j].Line })

	fmt.Fprintln(e.out, fileStyle.Render(documentURI))
	for _, a := range sorted {
		fmt.Fprintf(e.out, "  %4d | %s\n", a.Line+1, ghostStyle.Render("← "+a.Text+" 🔪"))
	}
}

func (e *TerminalEditor) ClearAnnotations(documentURI string) {
	// Terminal output is append-only; clearing is a no-op beyond not
	// re-rendering stale messages.
}

func (e *TerminalEditor) OpenDocument(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.open[path]; ok {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	e.open[path] = f
	return nil
}

func (e *TerminalEditor) CloseDocument(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	f, ok := e.open[path]
	if !ok {
		return nil
	}
	delete(e.open, path)
	return f.Close()
}

func (e *TerminalEditor) InsertText(path, text string) error {
	e.mu.Lock()
	f, ok := e.open[path]
	e.mu.Unlock()
	if !ok {
		return fmt.Errorf("insert into %s: document not open", path)
	}
	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("insert into %s: %w", path, err)
	}
	return nil
}

func (e *TerminalEditor) SaveDocument(path string) error {
	e.mu.Lock()
	f, ok := e.open[path]
	e.mu.Unlock()
	if !ok {
		return nil
	}
	return f.Sync()
}

func (e *TerminalEditor) IsOpen(path string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.open[path]
	return ok
}
