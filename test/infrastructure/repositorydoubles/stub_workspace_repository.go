package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scalatools/sbtup/internal/domain/repositories"
)

// StubWorkspaceRepository implements repositories.WorkspaceRepository over an
// in-memory file map and records every write.
type StubWorkspaceRepository struct {
	Files    map[string]string
	ReadErr  error
	WriteErr error

	Written       map[string]string
	BackupsWanted []bool
}

var _ repositories.WorkspaceRepository = (*StubWorkspaceRepository)(nil)

func (s *StubWorkspaceRepository) ListBuildFiles(_ string) ([]string, error) {
	var paths []string
	for path := range s.Files {
		paths = append(paths, path)
	}
	// build.sbt first, project/*.sbt after, mirroring the real repository.
	sort.Slice(paths, func(i, j int) bool {
		pi, pj := strings.Contains(paths[i], "/"), strings.Contains(paths[j], "/")
		if pi != pj {
			return !pi
		}
		return paths[i] < paths[j]
	})
	return paths, nil
}

func (s *StubWorkspaceRepository) ReadFile(path string) (string, error) {
	if s.ReadErr != nil {
		return "", s.ReadErr
	}
	content, ok := s.Files[path]
	if !ok {
		return "", fmt.Errorf("file not found: %s", path)
	}
	return content, nil
}

func (s *StubWorkspaceRepository) WriteFile(path, content string, backup bool) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	if s.Written == nil {
		s.Written = make(map[string]string)
	}
	s.Written[path] = content
	s.BackupsWanted = append(s.BackupsWanted, backup)
	return nil
}
