// Package locale holds the display-string bundles for every surface the
// engine talks through: per-diagnostic quips, punishment letters, idle nags,
// session warnings, and commit-watchdog reactions. Message content is data,
// not logic; the engine only ever asks the active bundle for strings.
package locale

// Letter is one punishment artifact template: the file it materializes as,
// the text typed into it, and the toast shown when it is created.
type Letter struct {
	Filename string
	Content  string
	Message  string
}

// Bundle is the full string table for one language.
type Bundle struct {
	Startup string

	MascotInitial string
	MascotAngry   string

	Letter1 Letter
	Letter2 Letter

	Cleanup string // artifacts removed after returning to zero errors
	Perfect string // zero errors on a fresh evaluation
	NoFile  string

	Progress string // progress-scope label for remote generation
	Fallback string // shown when remote generation fails

	Prompt string // persona prompt prefixed to every remote generation call

	// Responses maps diagnostic identity keys (diagnostic.Signal.Key) to
	// canned quips. Keys missing here go to the remote generator.
	Responses map[string]string

	IdleCheckIn     string
	IdleWelcomeBack string
	IdleSpamPool    []string

	SessionSoftWarning string // lower duration limit crossed
	SessionHardWarning string // higher duration limit crossed

	CommitApproved    string
	CommitDisapproved string

	APIKeyPrompt string
}

// registry of available bundles, keyed by BCP 47-ish tags.
var registry = map[string]*Bundle{
	"en": &EN,
}

// Default is the bundle used when no locale is configured.
var Default = &EN

// Get returns the bundle for tag, falling back to Default for unknown tags.
func Get(tag string) *Bundle {
	if b, ok := registry[tag]; ok {
		return b
	}
	return Default
}
