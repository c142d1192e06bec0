package entities

import "fmt"

// ParseError reports build-configuration text the scanner cannot accept.
// It is fatal: nothing is resolved and nothing is written.
type ParseError struct {
	Path   string
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// RegistryErrorKind distinguishes the failure modes of a version lookup.
type RegistryErrorKind string

const (
	RegistryNotFound  RegistryErrorKind = "not_found"
	RegistryNetwork   RegistryErrorKind = "network"
	RegistryMalformed RegistryErrorKind = "malformed"
)

// RegistryError is a per-coordinate lookup failure. It never aborts the run:
// the affected coordinate is reported as having no update available.
type RegistryError struct {
	Kind       RegistryErrorKind
	Coordinate Coordinate
	Err        error
}

func (e *RegistryError) Error() string {
	msg := fmt.Sprintf("registry lookup for %s failed (%s)", e.Coordinate.Key(), e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RegistryError) Unwrap() error { return e.Err }

// RewriteErrorKind distinguishes the failure modes of the rewrite step.
type RewriteErrorKind string

const (
	RewriteSpanConflict RewriteErrorKind = "span_conflict"
	RewriteOutOfRange   RewriteErrorKind = "out_of_range"
)

// RewriteError is fatal for the write step: the original text is left
// untouched and the error surfaces to the caller.
type RewriteError struct {
	Kind RewriteErrorKind
	Span Span
}

func (e *RewriteError) Error() string {
	return fmt.Sprintf("cannot apply edit at bytes %d..%d (%s)", e.Span.Start, e.Span.End, e.Kind)
}
