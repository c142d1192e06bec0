package entities

// UpdateCandidate is one proposed upgrade: at most one exists per Coordinate
// per run, and its proposed version is the highest published release that is
// strictly greater than the current one.
type UpdateCandidate struct {
	Coordinate Coordinate
	Current    Version
	Proposed   Version
	Rank       Rank
}

// Classify computes the update candidate for a coordinate, or nil when no
// published version qualifies. A version qualifies when it compares strictly
// greater than current and carries no pre-release marker; among qualifying
// versions the highest wins.
func Classify(coord Coordinate, current Version, published []Version) *UpdateCandidate {
	var best *Version
	for i := range published {
		v := published[i]
		if v.IsPreRelease() {
			continue
		}
		if v.Compare(current) <= 0 {
			continue
		}
		if best == nil || v.Compare(*best) > 0 {
			best = &published[i]
		}
	}
	if best == nil {
		return nil
	}

	return &UpdateCandidate{
		Coordinate: coord,
		Current:    current,
		Proposed:   *best,
		Rank:       RankBetween(current, *best),
	}
}
