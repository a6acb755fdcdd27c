package event

import (
	"iter"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// AttributesV03 is the 0.3 revision attribute set. The source and schemaurl
// attributes are held as parsed URI references. The id, type and source
// attributes are always present and non-empty for sets built through the
// public API.
type AttributesV03 struct {
	id              string
	typ             string
	source          *url.URL
	dataContentType *string
	schemaURL       *url.URL
	subject         *string
	time            *time.Time
}

// NewAttributesV03 returns a fresh 0.3 attribute set: random id, the
// revision's default type, a hostname-derived source and the current time.
// All other attributes are absent.
func NewAttributesV03() *AttributesV03 {
	now := time.Now().UTC()
	return &AttributesV03{
		id:     uuid.NewString(),
		typ:    "type",
		source: defaultSourceURL(),
		time:   &now,
	}
}

func (a *AttributesV03) SpecVersion() SpecVersion { return SpecV03 }

func (a *AttributesV03) ID() string { return a.id }

func (a *AttributesV03) Type() string { return a.typ }

// Source returns the source attribute in its canonical string form.
func (a *AttributesV03) Source() string {
	if a.source == nil {
		return ""
	}
	return a.source.String()
}

// SourceURL returns the parsed source URI reference.
func (a *AttributesV03) SourceURL() *url.URL { return a.source }

func (a *AttributesV03) DataContentType() *string { return a.dataContentType }

// DataSchema returns the schemaurl attribute in string form, nil when absent.
func (a *AttributesV03) DataSchema() *string {
	if a.schemaURL == nil {
		return nil
	}
	s := a.schemaURL.String()
	return &s
}

// SchemaURL returns the parsed schemaurl attribute, nil when absent.
func (a *AttributesV03) SchemaURL() *url.URL { return a.schemaURL }

func (a *AttributesV03) Subject() *string { return a.subject }

func (a *AttributesV03) Time() *time.Time { return a.time }

func (a *AttributesV03) SetID(id string) { a.id = id }

func (a *AttributesV03) SetType(typ string) { a.typ = typ }

// SetSource parses source as a URI reference; a ConversionError is returned
// for input url.Parse rejects.
func (a *AttributesV03) SetSource(source string) error {
	u, err := parseURIRef(source, "source")
	if err != nil {
		return err
	}
	a.source = u
	return nil
}

// SetSourceURL assigns an already-parsed source URI reference.
func (a *AttributesV03) SetSourceURL(u *url.URL) { a.source = normalizeURL(u) }

func (a *AttributesV03) SetSubject(subject *string) { a.subject = subject }

func (a *AttributesV03) SetTime(t *time.Time) { a.time = t }

func (a *AttributesV03) SetDataContentType(contentType *string) {
	a.dataContentType = contentType
}

// SetDataSchema parses the schema reference as a URI; nil clears it.
func (a *AttributesV03) SetDataSchema(schema *string) error {
	if schema == nil {
		a.schemaURL = nil
		return nil
	}
	u, err := parseURIRef(*schema, "schemaurl")
	if err != nil {
		return err
	}
	a.schemaURL = u
	return nil
}

// SetSchemaURL assigns an already-parsed schemaurl attribute, nil to clear.
func (a *AttributesV03) SetSchemaURL(u *url.URL) { a.schemaURL = normalizeURL(u) }

// Attributes yields the set's attributes in wire order: specversion, id,
// type, source, datacontenttype, schemaurl, subject, time; absent optional
// attributes are skipped. The sequence borrows the set and is restartable.
func (a *AttributesV03) Attributes() iter.Seq2[string, AttributeValue] {
	return func(yield func(string, AttributeValue) bool) {
		if !yield("specversion", SpecVersionValue(SpecV03)) {
			return
		}
		if !yield("id", StringValue(a.id)) {
			return
		}
		if !yield("type", StringValue(a.typ)) {
			return
		}
		if !yield("source", URIRefValue(a.source)) {
			return
		}
		if a.dataContentType != nil && !yield("datacontenttype", StringValue(*a.dataContentType)) {
			return
		}
		if a.schemaURL != nil && !yield("schemaurl", URIRefValue(a.schemaURL)) {
			return
		}
		if a.subject != nil && !yield("subject", StringValue(*a.subject)) {
			return
		}
		if a.time != nil {
			yield("time", TimeValue(*a.time))
		}
	}
}

// IntoV03 is the identity conversion.
func (a *AttributesV03) IntoV03() (*AttributesV03, error) { return a, nil }

// IntoV10 remaps the set into the 1.0 revision, renaming schemaurl to
// dataschema and flattening the URI attributes to their string forms. The
// receiver is consumed and must not be used afterwards.
func (a *AttributesV03) IntoV10() (*AttributesV10, error) {
	v10 := &AttributesV10{
		id:              a.id,
		typ:             a.typ,
		source:          a.Source(),
		dataContentType: a.dataContentType,
		dataSchema:      a.DataSchema(),
		subject:         a.subject,
		time:            a.time,
	}
	return v10, nil
}

// DeserializeAttributes walks every present attribute through the visitor in
// wire order, stopping at the first visitor error. The call consumes the
// set; the receiver must not be reused afterwards.
func (a *AttributesV03) DeserializeAttributes(v AttributeVisitor) error {
	if err := v.SetAttribute("id", MessageString(a.id)); err != nil {
		return err
	}
	if err := v.SetAttribute("type", MessageString(a.typ)); err != nil {
		return err
	}
	if err := v.SetAttribute("source", MessageURIRef(a.source)); err != nil {
		return err
	}
	if a.dataContentType != nil {
		if err := v.SetAttribute("datacontenttype", MessageString(*a.dataContentType)); err != nil {
			return err
		}
	}
	if a.schemaURL != nil {
		if err := v.SetAttribute("schemaurl", MessageURI(a.schemaURL)); err != nil {
			return err
		}
	}
	if a.subject != nil {
		if err := v.SetAttribute("subject", MessageString(*a.subject)); err != nil {
			return err
		}
	}
	if a.time != nil {
		if err := v.SetAttribute("time", MessageTime(*a.time)); err != nil {
			return err
		}
	}
	return nil
}

// SerializeAttribute assigns one wire attribute after coercing the value to
// the field's concrete type. The specversion name is not settable through
// this path; it and any name outside the 0.3 attribute table fail with
// UnrecognizedAttributeNameError.
func (a *AttributesV03) SerializeAttribute(name string, value MessageAttributeValue) error {
	switch name {
	case "id":
		a.id = value.String()
	case "type":
		a.typ = value.String()
	case "source":
		u, err := value.AsURL()
		if err != nil {
			return withAttribute(err, name)
		}
		a.source = normalizeURL(u)
	case "datacontenttype":
		s := value.String()
		a.dataContentType = &s
	case "schemaurl":
		u, err := value.AsURL()
		if err != nil {
			return withAttribute(err, name)
		}
		a.schemaURL = normalizeURL(u)
	case "subject":
		s := value.String()
		a.subject = &s
	case "time":
		t, err := value.AsTime()
		if err != nil {
			return withAttribute(err, name)
		}
		a.time = &t
	default:
		return &UnrecognizedAttributeNameError{Name: name}
	}
	return nil
}
