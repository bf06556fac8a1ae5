package host

import (
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"menhera/internal/diagnostic"
)

// CommandDiagnostics is a DiagnosticSource that shells out to a linter or
// compiler and parses its line-oriented output. It matches the common
// "file:line[:col]: message" shape emitted by go vet, gcc, tsc and most
// linters.
type CommandDiagnostics struct {
	dir    string
	source string   // tool name stamped into each signal
	argv   []string // command and arguments
	log    *zap.Logger
}

// NewCommandDiagnostics returns a source running argv in dir, labelling
// signals with source.
func NewCommandDiagnostics(dir, source string, argv []string, log *zap.Logger) *CommandDiagnostics {
	return &CommandDiagnostics{dir: dir, source: source, argv: argv, log: log}
}

var diagLineRe = regexp.MustCompile(`^(.+?):(\d+)(?::\d+)?:\s*(.+)$`)

func (c *CommandDiagnostics) ErrorDiagnostics(documentURI string) []diagnostic.Signal {
	if len(c.argv) == 0 {
		return nil
	}
	cmd := exec.Command(c.argv[0], c.argv[1:]...)
	cmd.Dir = c.dir
	// Diagnostics arrive on stderr for most tools and a non-zero exit just
	// means findings, so both are read and the exit code is ignored.
	out, _ := cmd.CombinedOutput()

	signals := parseDiagnostics(string(out), c.source, documentURI)
	c.log.Debug("diagnostics refreshed",
		zap.String("doc", documentURI), zap.Int("count", len(signals)))
	return signals
}

// parseDiagnostics extracts signals for documentURI from tool output. An
// empty documentURI keeps every finding.
func parseDiagnostics(out, source, documentURI string) []diagnostic.Signal {
	var signals []diagnostic.Signal
	for _, line := range strings.Split(out, "\n") {
		m := diagLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		file, lineStr, msg := m[1], m[2], m[3]
		if documentURI != "" && !sameFile(file, documentURI) {
			continue
		}
		n, err := strconv.Atoi(lineStr)
		if err != nil || n < 1 {
			continue
		}
		code, rest := splitCode(msg)
		signals = append(signals, diagnostic.Signal{
			Source:      source,
			Code:        code,
			Message:     rest,
			Line:        n - 1,
			DocumentURI: documentURI,
		})
	}
	return signals
}

func sameFile(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b) || filepath.Base(a) == filepath.Base(b)
}

// splitCode pulls a trailing "(code)" or leading "code:" marker out of a
// message when the tool includes one.
func splitCode(msg string) (code, rest string) {
	msg = strings.TrimSpace(msg)
	if i := strings.LastIndex(msg, "("); i > 0 && strings.HasSuffix(msg, ")") {
		candidate := msg[i+1 : len(msg)-1]
		if candidate != "" && !strings.ContainsAny(candidate, " \t") {
			return candidate, strings.TrimSpace(msg[:i])
		}
	}
	return "", msg
}
