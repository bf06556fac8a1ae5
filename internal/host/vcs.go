package host

import (
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// GitCLI reads the repository head by shelling out to git. A missing binary,
// a directory that is not a repository, or an unborn branch all read as "no
// commit" rather than errors.
type GitCLI struct {
	dir string
	log *zap.Logger
}

// NewGitCLI returns a VCS reader for the repository at dir.
func NewGitCLI(dir string, log *zap.Logger) *GitCLI {
	return &GitCLI{dir: dir, log: log}
}

func (g *GitCLI) Latest() (Commit, bool) {
	cmd := exec.Command("git", "log", "-1", "--format=%H%x00%s")
	cmd.Dir = g.dir
	out, err := cmd.Output()
	if err != nil {
		g.log.Debug("git log failed", zap.Error(err))
		return Commit{}, false
	}
	return parseHead(string(out))
}

func parseHead(out string) (Commit, bool) {
	out = strings.TrimSpace(out)
	hash, message, found := strings.Cut(out, "\x00")
	if !found || hash == "" {
		return Commit{}, false
	}
	return Commit{Hash: hash, Message: message}, true
}
