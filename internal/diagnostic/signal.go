// Package diagnostic defines the normalized code-health signal that the rest
// of the engine consumes. Host diagnostics arrive with loosely typed codes
// (string, number, or object-with-value depending on the tool); everything is
// normalized here, at the boundary, so core logic never branches on raw host
// shapes.
package diagnostic

import (
	"fmt"
	"strings"
)

// Severity of a host diagnostic. The engine only ever evaluates errors;
// lower severities are filtered out by the snapshot source.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityHint
)

// Signal is one error-severity diagnostic at a specific source location.
type Signal struct {
	Source      string // reporting tool ("ts", "eslint", "go-vet", ...)
	Code        string // normalized diagnostic code, "" if the tool gave none
	Message     string // raw message text from the tool
	Line        int    // zero-based line in the document
	DocumentURI string
}

// unknownPart substitutes for a missing source or code in the identity key.
const unknownPart = "unknown"

// Key returns the identity key used for message-table lookups:
// case-folded source + "-" + code. The key is deliberately NOT unique across
// distinct diagnostics; two signals with the same code on different lines
// share a display message.
func (s Signal) Key() string {
	src := strings.ToLower(strings.TrimSpace(s.Source))
	if src == "" {
		src = unknownPart
	}
	code := strings.ToLower(strings.TrimSpace(s.Code))
	if code == "" {
		code = unknownPart
	}
	return src + "-" + code
}

// NormalizeCode flattens the host's dynamic code shape into a plain string.
// Hosts report codes as strings, numbers, or objects carrying a "value"
// field; nil means the tool reported no code at all.
func NormalizeCode(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		// JSON decoding yields float64 for numeric codes.
		return fmt.Sprintf("%d", int64(v))
	case map[string]any:
		if inner, ok := v["value"]; ok {
			return NormalizeCode(inner)
		}
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
