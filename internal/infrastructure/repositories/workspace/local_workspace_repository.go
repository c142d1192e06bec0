package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	logger "github.com/sirupsen/logrus"
)

// LocalWorkspaceRepository reads and rewrites the sbt build files of a
// project directory on the local filesystem. Writes are atomic: the new
// content lands in a temporary file that is renamed over the original, so a
// crash mid-write never leaves a truncated build file behind.
type LocalWorkspaceRepository struct{}

func NewLocalWorkspaceRepository() *LocalWorkspaceRepository {
	return &LocalWorkspaceRepository{}
}

// ListBuildFiles returns the project's build files in a stable order:
// build.sbt first, then project/*.sbt sorted by name. A project without a
// build.sbt is not an sbt project and yields an error.
func (it *LocalWorkspaceRepository) ListBuildFiles(dir string) ([]string, error) {
	root := filepath.Join(dir, "build.sbt")
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("no build.sbt found in %q: %w", dir, err)
	}

	files := []string{root}

	extras, err := filepath.Glob(filepath.Join(dir, "project", "*.sbt"))
	if err != nil {
		return nil, fmt.Errorf("failed to list project/*.sbt in %q: %w", dir, err)
	}
	sort.Strings(extras)
	files = append(files, extras...)

	return files, nil
}

func (it *LocalWorkspaceRepository) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}
	return string(data), nil
}

// WriteFile atomically replaces path with content, keeping a .bak copy of
// the original when backup is true. The original file's permissions are
// preserved.
func (it *LocalWorkspaceRepository) WriteFile(path, content string, backup bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if backup {
		original, readErr := os.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("failed to read %q for backup: %w", path, readErr)
		}
		backupPath := path + ".bak"
		if writeErr := os.WriteFile(backupPath, original, info.Mode().Perm()); writeErr != nil {
			return fmt.Errorf("failed to write backup %q: %w", backupPath, writeErr)
		}
		logger.Debugf("Wrote backup %q", backupPath)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %q: %w", path, err)
	}
	tmpPath := tmp.Name()

	if _, err = tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %q: %w", tmpPath, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %q: %w", tmpPath, err)
	}
	if err = os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions on %q: %w", tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %q: %w", path, err)
	}

	logger.Debugf("Rewrote %q (%d bytes)", path, len(content))
	return nil
}
