package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/scalatools/sbtup/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// CandidateBuilder helps create test update candidates with a fluent interface.
type CandidateBuilder struct {
	*testkit.BaseBuilder
	group    string
	artifact string
	current  string
	proposed string
	rank     entities.Rank
}

// NewCandidateBuilder creates a new candidate builder with sensible defaults.
func NewCandidateBuilder() *CandidateBuilder {
	return &CandidateBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		group:       "org.example",
		artifact:    "lib",
		current:     "1.0.0",
		proposed:    "2.0.0",
		rank:        entities.RankMajor,
	}
}

// WithGroup sets the coordinate group.
func (b *CandidateBuilder) WithGroup(group string) *CandidateBuilder {
	b.group = group
	return b
}

// WithArtifact sets the coordinate artifact.
func (b *CandidateBuilder) WithArtifact(artifact string) *CandidateBuilder {
	b.artifact = artifact
	return b
}

// WithCurrent sets the current version.
func (b *CandidateBuilder) WithCurrent(version string) *CandidateBuilder {
	b.current = version
	return b
}

// WithProposed sets the proposed version.
func (b *CandidateBuilder) WithProposed(version string) *CandidateBuilder {
	b.proposed = version
	return b
}

// WithRank sets the update rank.
func (b *CandidateBuilder) WithRank(rank entities.Rank) *CandidateBuilder {
	b.rank = rank
	return b
}

// Build creates the candidate (satisfies testkit.Builder interface).
func (b *CandidateBuilder) Build() interface{} {
	return b.BuildCandidate()
}

// BuildCandidate creates the candidate with a concrete return type.
func (b *CandidateBuilder) BuildCandidate() entities.UpdateCandidate {
	return entities.UpdateCandidate{
		Coordinate: entities.Coordinate{Group: b.group, Artifact: b.artifact},
		Current:    entities.ParseVersion(b.current),
		Proposed:   entities.ParseVersion(b.proposed),
		Rank:       b.rank,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *CandidateBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.group = "org.example"
	b.artifact = "lib"
	b.current = "1.0.0"
	b.proposed = "2.0.0"
	b.rank = entities.RankMajor
	return b
}

// Clone creates a deep copy of the CandidateBuilder.
func (b *CandidateBuilder) Clone() testkit.Builder {
	return &CandidateBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		group:       b.group,
		artifact:    b.artifact,
		current:     b.current,
		proposed:    b.proposed,
		rank:        b.rank,
	}
}
