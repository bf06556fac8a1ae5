package host

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"menhera/internal/mood"
)

// Gradient color themes for the terminal banner.
var colorThemes = map[string][]string{
	"love":     {"#deabf2", "#FFC2F7", "#8765e7", "#a7d7f1", "#CF55BE"},
	"spooky":   {"#FAD64B", "#CCB481", "#EDAA53", "#665447", "#F77A52"},
	"rainbow":  {"#14ff24", "#14e8ff", "#4b14ff", "#ff7ab4", "#ffd000"},
	"mono":     {"#EDEDED", "#A6A6A6", "#757575", "#C8CCC8", "#474747"},
	"serenity": {"#a7f1e4", "#4DF4FA", "#C79E52", "#A89736", "#FAE14D"},
}

var borderThemes = map[string][2]string{
	"hearts": {
		"    <3     <3     <3     <3     <3     <3     <3     <3     <3     <3     ",
		"<3                                                                    <3  ",
	},
	"waves": {
		"...oOo...oOo...oOo...oOo...oOo...oOo...oOo...oOo...oOo...oOo...oOo...oOo..",
		"oOo...oOo...oOo...oOo...oOo...oOo...oOo...oOo...oOo...oOo...oOo...oOo...oO",
	},
	"simple": {
		"--------------------------------------------------------------------------",
		"                                                                          ",
	},
}

// TerminalMascot renders the mood indicator as a colored speech-bubble banner
// on the terminal. It implements mood.Surface.
type TerminalMascot struct {
	mu      sync.Mutex
	out     io.Writer
	enabled func() bool
	current mood.State
	log     *zap.Logger
}

// NewTerminalMascot returns a mascot surface writing to out (os.Stdout when
// nil), gated on enabled.
func NewTerminalMascot(out io.Writer, enabled func() bool, log *zap.Logger) *TerminalMascot {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalMascot{out: out, enabled: enabled, log: log}
}

func (m *TerminalMascot) ApplyMood(s mood.State) {
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
	m.log.Info("mood changed", zap.String("mood", s.String()))
}

func (m *TerminalMascot) Say(message string) {
	if m.enabled != nil && !m.enabled() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	theme := "love"
	if m.current.Angry() {
		theme = "spooky"
	}
	fmt.Fprint(m.out, Banner(message, theme))
}

// Banner formats text between gradient-colored border lines, centered in the
// border width.
func Banner(text, theme string) string {
	colors, ok := colorThemes[theme]
	if !ok {
		colors = colorThemes["love"]
	}
	border := borderThemes["hearts"]

	top := gradientLine(border[0], colors)
	bottom := gradientLine(border[1], colors)
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors[0])).
		Bold(true).
		Render(centerText(text, utf8.RuneCountInString(border[0])))

	return fmt.Sprintf("\n%s\n%s\n\n%s\n\n%s\n%s\n", top, bottom, body, bottom, top)
}

// gradientLine colors a border line by cycling through the theme palette in
// fixed-width runs.
func gradientLine(line string, colors []string) string {
	const run = 6
	var b strings.Builder
	runes := []rune(line)
	for i := 0; i < len(runes); i += run {
		end := i + run
		if end > len(runes) {
			end = len(runes)
		}
		color := colors[(i/run)%len(colors)]
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(string(runes[i:end])))
	}
	return b.String()
}

// centerText pads by rune count, not bytes, so multibyte banner text still
// lands in the middle of the border.
func centerText(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	pad := (width - n) / 2
	return strings.Repeat(" ", pad) + text
}
