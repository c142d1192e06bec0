package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/scalatools/sbtup/internal/domain/repositories"
)

// SpyVCSRepository implements repositories.VCSRepository and records the
// commit it was asked to create.
type SpyVCSRepository struct {
	Err error

	Dir     string
	Branch  string
	Message string
	Paths   []string
	Calls   int
}

var _ repositories.VCSRepository = (*SpyVCSRepository)(nil)

func (s *SpyVCSRepository) CommitOnBranch(dir, branch, message string, paths []string) error {
	s.Calls++
	s.Dir = dir
	s.Branch = branch
	s.Message = message
	s.Paths = paths
	return s.Err
}
