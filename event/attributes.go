// Package event models a versioned event envelope: named metadata attributes
// that exist in two schema revisions (0.3 and 1.0), with a revision-agnostic
// read/write contract, lossless conversion between revisions, and a
// visitor-based protocol that lets external wire-format encoders extract or
// populate attributes one at a time without knowing the concrete set type.
package event

import (
	"iter"
	"net/url"
	"os"
	"time"
)

// Reader is the revision-agnostic read surface shared by every attribute set.
// Optional getters return nil when the attribute was never set. Source and
// DataSchema are exposed in their canonical string form so both revisions
// satisfy the same interface; the 0.3 set additionally exposes the parsed
// URI forms as concrete methods.
type Reader interface {
	// SpecVersion returns the set's revision tag, a constant per concrete type.
	SpecVersion() SpecVersion
	ID() string
	Type() string
	Source() string
	DataContentType() *string
	DataSchema() *string
	Subject() *string
	Time() *time.Time

	// Attributes yields (name, value) pairs in wire order: specversion, id,
	// type, source, then the revision's optional attributes, each skipped
	// entirely when absent. The sequence is finite and restartable; it
	// borrows the set, which must not be mutated during iteration.
	Attributes() iter.Seq2[string, AttributeValue]
}

// Writer mutates the required and context attributes of a set. Attribute sets
// are mutated only through this surface, never field by field. Setters
// convert their input to the field's semantic type and report only errors the
// conversion itself raises.
type Writer interface {
	SetID(id string)
	SetType(typ string)
	// SetSource assigns the source attribute from its string form. On the 0.3
	// revision the string is parsed as a URI reference and a ConversionError
	// is returned for unparsable input; the 1.0 revision stores it untouched.
	SetSource(source string) error
	SetSubject(subject *string)
	SetTime(t *time.Time)
}

// DataWriter mutates the data-describing attributes. Kept separate from
// Writer because not every producer needs data-attribute mutation.
type DataWriter interface {
	SetDataContentType(contentType *string)
	// SetDataSchema assigns the schema-reference attribute from its string
	// form, with the same per-revision parsing behavior as SetSource.
	SetDataSchema(schema *string) error
}

// Converter moves an attribute set between revisions, consuming the receiver.
// Converting a set to its own revision is the identity. Cross-revision
// conversion is a pure field remapping with one rename (schemaurl becomes
// dataschema) and a URI-to-string representation change; it never invents,
// defaults, or drops attributes, and never fails for values that originated
// from a valid set of either revision.
type Converter interface {
	IntoV03() (*AttributesV03, error)
	IntoV10() (*AttributesV10, error)
}

// AttributeVisitor receives attribute values one at a time while a set is
// exported. Implementations are supplied by wire-format encoders; the first
// error returned aborts the traversal and propagates verbatim.
type AttributeVisitor interface {
	SetAttribute(name string, value MessageAttributeValue) error
}

// AttributesDeserializer exports an attribute set through a visitor: required
// attributes unconditionally, optional attributes only if set, in the same
// fixed order as Reader.Attributes (minus specversion, which travels out of
// band since it is fixed by the concrete type). The call consumes the set;
// the receiver must not be reused afterwards.
type AttributesDeserializer interface {
	DeserializeAttributes(v AttributeVisitor) error
}

// AttributesSerializer populates an attribute set one wire attribute at a
// time, converting the value into the field's concrete type. Recognized
// names are exactly the revision's attribute table minus specversion; any
// other name fails with UnrecognizedAttributeNameError.
type AttributesSerializer interface {
	SerializeAttribute(name string, value MessageAttributeValue) error
}

// Attributes is the full contract every attribute set satisfies.
// Revision-agnostic callers program only against this interface (or a subset
// of it), never against a concrete set.
type Attributes interface {
	Reader
	Writer
	DataWriter
	Converter
	AttributesDeserializer
	AttributesSerializer
}

var (
	_ Attributes = (*AttributesV03)(nil)
	_ Attributes = (*AttributesV10)(nil)
)

// defaultSourceURL derives the default source attribute from the local
// hostname, falling back to localhost when it is unavailable.
func defaultSourceURL() *url.URL {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}
	u, err := url.Parse("http://" + host + "/")
	if err != nil {
		return &url.URL{Scheme: "http", Host: "localhost", Path: "/"}
	}
	return u
}

// normalizeURL gives a URL with an authority but no path its canonical "/"
// path, so the string form of a stored URI matches its normalized form.
func normalizeURL(u *url.URL) *url.URL {
	if u != nil && u.Host != "" && u.Path == "" && u.Opaque == "" {
		c := *u
		c.Path = "/"
		return &c
	}
	return u
}

// parseURIRef parses s as a URI reference for storage on the 0.3 revision.
func parseURIRef(s, attribute string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, &ConversionError{
			Attribute: attribute,
			Value:     s,
			Target:    "URI reference",
			Err:       err,
		}
	}
	return normalizeURL(u), nil
}
