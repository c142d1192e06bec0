package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scalatools/sbtup/internal/domain/entities"
)

func TestVersion_Compare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{"should order patch releases numerically", "1.2.0", "1.2.1", -1},
		{"should order minor releases numerically", "1.2.0", "1.3.0", -1},
		{"should order major releases numerically", "1.2.0", "2.0.0", -1},
		{"should compare segments as numbers not strings", "1.9.0", "1.10.0", -1},
		{"should treat a missing segment as zero", "1.2", "1.2.0", 0},
		{"should report equal versions as equal", "2.6.20", "2.6.20", 0},
		{"should order textual segments lexically", "1.0.0-a", "1.0.0-b", -1},
		{"should order numbers before qualifiers at the same position", "1.2.3", "1.2.x", -1},
		{"should compare four-part versions by the deepest segment", "1.2.3.4", "1.2.3.5", -1},
		{"should order a release candidate below its final release", "2.0.0-RC1", "2.0.0", -1},
		{"should order a snapshot below its final release", "1.0.0-SNAPSHOT", "1.0.0", -1},
		{"should order a dotted alpha below its final release", "1.0.0-alpha.1", "1.0.0", -1},
		{"should order unrecognized qualifiers above the bare base", "4.1.0", "4.1.0-Final", -1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			// given
			a := entities.ParseVersion(test.a)
			b := entities.ParseVersion(test.b)

			// when / then
			assert.Equal(t, test.expected, a.Compare(b))
			assert.Equal(t, -test.expected, b.Compare(a))
		})
	}
}

func TestVersion_IsPreRelease(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		version  string
		expected bool
	}{
		{"should flag release candidates", "2.0.0-RC1", true},
		{"should flag snapshots", "1.0.0-SNAPSHOT", true},
		{"should flag milestone builds", "1.0.0-M1", true},
		{"should flag dotted alpha qualifiers", "1.0.0-alpha.1", true},
		{"should flag beta qualifiers", "3.0.0-beta2", true},
		{"should not flag plain releases", "1.0.0", false},
		{"should not flag unrecognized qualifiers", "4.1.0-Final", false},
		{"should not flag dotted suffixes without a dash", "2.3.4.GA", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			// given
			version := entities.ParseVersion(test.version)

			// when / then
			assert.Equal(t, test.expected, version.IsPreRelease())
		})
	}
}

func TestRankBetween(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		current  string
		proposed string
		expected entities.Rank
	}{
		{"should rank a first-segment jump as major", "1.2.0", "2.0.0", entities.RankMajor},
		{"should rank a second-segment jump as minor", "1.2.0", "1.3.0", entities.RankMinor},
		{"should rank a third-segment jump as patch", "1.2.0", "1.2.1", entities.RankPatch},
		{"should rank a deeper jump as unknown", "1.2.3.4", "1.2.3.5", entities.RankUnknown},
		{"should rank incomparable segment shapes as unknown", "1.2.0", "1.2.x", entities.RankUnknown},
		{"should rank identical versions as unknown", "1.0.0", "1.0.0", entities.RankUnknown},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			// given
			current := entities.ParseVersion(test.current)
			proposed := entities.ParseVersion(test.proposed)

			// when / then
			assert.Equal(t, test.expected, entities.RankBetween(current, proposed))
		})
	}
}
