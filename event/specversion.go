package event

import (
	"errors"
	"fmt"
)

// ErrUnknownSpecVersion is returned when a spec version string matches no
// supported revision.
var ErrUnknownSpecVersion = errors.New("unknown spec version")

// SpecVersion identifies the envelope schema revision an attribute set
// conforms to. It is derived from the concrete set type, never stored.
type SpecVersion string

const (
	// SpecV03 is the 0.3 revision: source and schemaurl are parsed URI
	// references.
	SpecV03 SpecVersion = "0.3"

	// SpecV10 is the 1.0 revision: source and dataschema are opaque strings,
	// and schemaurl is renamed to dataschema.
	SpecV10 SpecVersion = "1.0"
)

// Wire attribute names per revision, in canonical iteration order. Any
// encoder or decoder must use exactly these strings as wire keys.
var (
	attributeNamesV03 = []string{
		"specversion",
		"id",
		"type",
		"source",
		"datacontenttype",
		"schemaurl",
		"subject",
		"time",
	}

	attributeNamesV10 = []string{
		"specversion",
		"id",
		"type",
		"source",
		"datacontenttype",
		"dataschema",
		"subject",
		"time",
	}
)

// ParseSpecVersion maps a wire spec version string to its SpecVersion tag.
func ParseSpecVersion(s string) (SpecVersion, error) {
	switch s {
	case string(SpecV03):
		return SpecV03, nil
	case string(SpecV10):
		return SpecV10, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSpecVersion, s)
}

func (v SpecVersion) String() string {
	return string(v)
}

// AttributeNames returns the revision's wire attribute names in canonical
// iteration order. The returned slice is a copy; callers may modify it.
func (v SpecVersion) AttributeNames() []string {
	switch v {
	case SpecV03:
		return append([]string(nil), attributeNamesV03...)
	case SpecV10:
		return append([]string(nil), attributeNamesV10...)
	}
	return nil
}
