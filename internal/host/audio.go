package host

import (
	"os/exec"
	"runtime"

	"go.uber.org/zap"
)

// SubprocessAudio plays cues through the platform's command-line player.
// Playback is fire-and-forget: the subprocess runs detached from the caller
// and any failure is logged and dropped.
type SubprocessAudio struct {
	enabled func() bool
	log     *zap.Logger
}

// NewSubprocessAudio returns a player gated on enabled, re-read per call so
// a config change takes effect immediately.
func NewSubprocessAudio(enabled func() bool, log *zap.Logger) *SubprocessAudio {
	return &SubprocessAudio{enabled: enabled, log: log}
}

func (a *SubprocessAudio) Play(cue string) {
	if a.enabled != nil && !a.enabled() {
		return
	}
	name, args := playerCommand(cue)
	if name == "" {
		a.log.Debug("no audio player for platform", zap.String("os", runtime.GOOS))
		return
	}
	go func() {
		if err := exec.Command(name, args...).Run(); err != nil {
			a.log.Debug("audio playback failed", zap.String("cue", cue), zap.Error(err))
		}
	}()
}

func playerCommand(cue string) (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "afplay", []string{cue}
	case "linux":
		return "paplay", []string{cue}
	case "windows":
		return "powershell", []string{"-c", "(New-Object Media.SoundPlayer '" + cue + "').PlaySync()"}
	default:
		return "", nil
	}
}
