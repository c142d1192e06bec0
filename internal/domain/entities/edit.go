package entities

import "sort"

// Edit replaces the bytes covered by Span with Text.
type Edit struct {
	Span Span
	Text string
}

// ApplyEdits splices a set of edits into the original text in a single
// left-to-right pass, copying every byte outside the edited spans verbatim.
// The operation is all-or-nothing: an out-of-range span or two edits with
// overlapping spans yield a RewriteError and the original text unchanged.
func ApplyEdits(original string, edits []Edit) (string, error) {
	if len(edits) == 0 {
		return original, nil
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Span.Start < sorted[j].Span.Start
	})

	// Validate the whole plan before touching the buffer.
	for i, edit := range sorted {
		span := edit.Span
		if span.Start < 0 || span.End < span.Start || span.End > len(original) {
			return original, &RewriteError{Kind: RewriteOutOfRange, Span: span}
		}
		if i > 0 && sorted[i-1].Span.Overlaps(span) {
			return original, &RewriteError{Kind: RewriteSpanConflict, Span: span}
		}
	}

	var out []byte
	last := 0
	for _, edit := range sorted {
		out = append(out, original[last:edit.Span.Start]...)
		out = append(out, edit.Text...)
		last = edit.Span.End
	}
	out = append(out, original[last:]...)

	return string(out), nil
}
