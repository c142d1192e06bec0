package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/scalatools/sbtup/internal/domain/entities"
	"github.com/scalatools/sbtup/internal/domain/repositories"
)

// StubCandidateSelector implements repositories.CandidateSelector by marking
// a fixed set of candidate indexes as selected.
type StubCandidateSelector struct {
	SelectIndexes []int
	Confirmed     bool
	Err           error

	Seen []entities.UpdateCandidate
}

var _ repositories.CandidateSelector = (*StubCandidateSelector)(nil)

func (s *StubCandidateSelector) Select(
	_ context.Context, session *entities.SelectionSession,
) (bool, error) {
	s.Seen = append(s.Seen, session.Candidates()...)
	if s.Err != nil {
		return false, s.Err
	}
	for _, i := range s.SelectIndexes {
		for session.Cursor() != i {
			session.MoveDown()
		}
		session.Toggle()
	}
	return s.Confirmed, s.Err
}
