package entities

// Span is a half-open byte-offset range [Start, End) in the original source
// text. Spans include the surrounding double quotes of the version literal,
// so a replacement always writes a complete quoted string.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Overlaps reports whether two spans share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Declaration is one occurrence of a Coordinate in a build file: the declared
// version string and the span to edit when upgrading it. For versions
// declared through a named val, the span points at the val's quoted literal
// (the definition site), so one edit updates every reference.
type Declaration struct {
	Coordinate Coordinate
	Version    string
	Span       Span
	FilePath   string
	ViaVal     bool   // Version referenced through a val definition
	ValName    string // Name of the referenced val, when ViaVal
}
