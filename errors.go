package geoson

import "fmt"

// ParseError reports input that could not be understood as a GeoJSON
// document: malformed JSON or a root that is not an object with a string
// type member.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "geoson: " + e.Reason
}

// MissingFieldError reports a required document field that is absent or has
// the wrong JSON type.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("geoson: missing or invalid %q", e.Field)
}

// UnknownCRSError reports a crs value outside the recognized alias set.
type UnknownCRSError struct {
	Value string
}

func (e *UnknownCRSError) Error() string {
	return fmt.Sprintf("geoson: unknown crs %q", e.Value)
}

// InvalidCoordinatesError reports a position array with fewer than two
// elements.
type InvalidCoordinatesError struct{}

func (e *InvalidCoordinatesError) Error() string {
	return "geoson: position needs at least two coordinates"
}
