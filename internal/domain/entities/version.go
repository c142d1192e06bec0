package entities

import (
	"regexp"
	"strconv"
	"strings"
)

// Rank classifies how far an upgrade jumps from the current version.
type Rank string

const (
	RankMajor   Rank = "major"
	RankMinor   Rank = "minor"
	RankPatch   Rank = "patch"
	RankUnknown Rank = "unknown"
)

// preReleasePattern matches qualifiers that mark a version as not yet final:
// -rc, -alpha, -beta, -M1, -SNAPSHOT and friends, case-insensitive.
// Qualifiers it does not recognize (-Final, .GA) are treated as releases.
var preReleasePattern = regexp.MustCompile(
	`(?i)^(rc|alpha|beta|milestone|snapshot|ea|preview|pre|dev)([._-]?\d.*)?$|^m\d+$`,
)

// segment is one dot- or boundary-delimited piece of a version string.
type segment struct {
	num     int64
	text    string
	numeric bool
}

// Version is a parsed version string. Parsing never fails: anything that is
// not a clean numeric sequence still gets a deterministic segment shape, so
// arbitrary registry output can always be ordered.
type Version struct {
	Raw       string
	qualifier string // Portion after the first '-', empty when none
	segments  []segment
}

// segmentPattern matches runs of alphanumerics; everything between runs
// (dots, dashes, plus signs) is a boundary.
var segmentPattern = regexp.MustCompile(`[A-Za-z0-9]+`)

// ParseVersion splits a version string into comparable segments.
func ParseVersion(raw string) Version {
	qualifier := ""
	if idx := strings.Index(raw, "-"); idx >= 0 {
		qualifier = raw[idx+1:]
	}

	tokens := segmentPattern.FindAllString(raw, -1)
	segments := make([]segment, 0, len(tokens))
	for _, tok := range tokens {
		if num, err := strconv.ParseInt(tok, 10, 64); err == nil {
			segments = append(segments, segment{num: num, numeric: true})
		} else {
			segments = append(segments, segment{text: strings.ToLower(tok)})
		}
	}

	return Version{Raw: raw, qualifier: qualifier, segments: segments}
}

func (v Version) String() string { return v.Raw }

// IsPreRelease reports whether the version carries a recognized
// pre-release marker. Pre-releases are never proposed as upgrades.
func (v Version) IsPreRelease() bool {
	return v.qualifier != "" && preReleasePattern.MatchString(v.qualifier)
}

// Compare orders two versions segment-wise: numeric segments numerically,
// textual segments lexically, numeric before textual at mixed positions,
// shorter sequences padded with zero/empty. A final release outranks a
// pre-release that only extends it with a qualifier tail, so 2.0.0 is newer
// than 2.0.0-RC1. Returns -1, 0 or 1.
func (v Version) Compare(other Version) int {
	length := len(v.segments)
	if len(other.segments) > length {
		length = len(other.segments)
	}

	for i := 0; i < length; i++ {
		a, aOK := v.segmentAt(i)
		b, bOK := other.segmentAt(i)
		cmp := compareSegments(a, aOK, b, bOK)
		if cmp == 0 {
			continue
		}
		if !aOK && !b.numeric && other.IsPreRelease() {
			return 1
		}
		if !bOK && !a.numeric && v.IsPreRelease() {
			return -1
		}
		return cmp
	}
	return 0
}

// RankBetween derives the upgrade rank from the first differing segment
// position: 0 is Major, 1 Minor, 2 Patch, anything deeper (or a position
// whose segment shapes cannot be compared) is Unknown.
func RankBetween(current, proposed Version) Rank {
	length := len(current.segments)
	if len(proposed.segments) > length {
		length = len(proposed.segments)
	}

	for i := 0; i < length; i++ {
		a, aOK := current.segmentAt(i)
		b, bOK := proposed.segmentAt(i)
		if compareSegments(a, aOK, b, bOK) == 0 {
			continue
		}
		if aOK && bOK && a.numeric != b.numeric {
			return RankUnknown
		}
		switch i {
		case 0:
			return RankMajor
		case 1:
			return RankMinor
		case 2:
			return RankPatch
		default:
			return RankUnknown
		}
	}
	return RankUnknown
}

func (v Version) segmentAt(i int) (segment, bool) {
	if i < len(v.segments) {
		return v.segments[i], true
	}
	return segment{}, false
}

func compareSegments(a segment, aOK bool, b segment, bOK bool) int {
	switch {
	case !aOK && !bOK:
		return 0
	case !aOK:
		// Pad with zero against numbers, empty against text.
		if b.numeric {
			return compareInt64(0, b.num)
		}
		return strings.Compare("", b.text)
	case !bOK:
		if a.numeric {
			return compareInt64(a.num, 0)
		}
		return strings.Compare(a.text, "")
	case a.numeric && b.numeric:
		return compareInt64(a.num, b.num)
	case !a.numeric && !b.numeric:
		return strings.Compare(a.text, b.text)
	case a.numeric:
		// Numbers order before qualifiers so 1.2.3 < 1.2.x deterministically.
		return -1
	default:
		return 1
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
