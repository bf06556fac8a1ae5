package host

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// WorkspaceFiles is a FileStore rooted at the first workspace directory.
type WorkspaceFiles struct {
	root string
	log  *zap.Logger
}

// NewWorkspaceFiles returns a store rooted at root.
func NewWorkspaceFiles(root string, log *zap.Logger) *WorkspaceFiles {
	return &WorkspaceFiles{root: root, log: log}
}

func (s *WorkspaceFiles) Resolve(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(s.root, rel)
}

func (s *WorkspaceFiles) Exists(path string) bool {
	_, err := os.Stat(s.Resolve(path))
	return err == nil
}

func (s *WorkspaceFiles) Write(path string, data []byte) error {
	abs := s.Resolve(path)
	if err := os.WriteFile(abs, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Delete removes path. With trash set the file is renamed into the system
// temp directory rather than unlinked, approximating a trash bin. A file
// that is already gone is an expected race, not an error.
func (s *WorkspaceFiles) Delete(path string, trash bool) error {
	abs := s.Resolve(path)
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		return nil
	}
	if trash {
		dest := filepath.Join(os.TempDir(), filepath.Base(abs))
		if err := os.Rename(abs, dest); err == nil {
			return nil
		}
		// Cross-device rename can fail; fall through to plain removal.
		s.log.Debug("trash rename failed, removing", zap.String("path", path))
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}
