package repositories

import (
	"context"

	"github.com/scalatools/sbtup/internal/domain/entities"
)

// CandidateSelector presents the candidate list to the user and returns the
// chosen subset. confirmed is false when the user cancelled instead of
// submitting a selection.
type CandidateSelector interface {
	Select(ctx context.Context, session *entities.SelectionSession) (confirmed bool, err error)
}
