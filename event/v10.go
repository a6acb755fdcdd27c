package event

import (
	"iter"
	"time"

	"github.com/google/uuid"
)

// AttributesV10 is the 1.0 revision attribute set. The source and dataschema
// attributes are held as opaque strings: the later revision deliberately
// loosens their typing, and this set preserves that choice rather than
// re-validating URI shape at write time.
type AttributesV10 struct {
	id              string
	typ             string
	source          string
	dataContentType *string
	dataSchema      *string
	subject         *string
	time            *time.Time
}

// NewAttributesV10 returns a fresh 1.0 attribute set: random id, the
// revision's default type, a hostname-derived source and the current time.
// All other attributes are absent.
func NewAttributesV10() *AttributesV10 {
	now := time.Now().UTC()
	return &AttributesV10{
		id:     uuid.NewString(),
		typ:    "envelope.generated",
		source: defaultSourceURL().String(),
		time:   &now,
	}
}

func (a *AttributesV10) SpecVersion() SpecVersion { return SpecV10 }

func (a *AttributesV10) ID() string { return a.id }

func (a *AttributesV10) Type() string { return a.typ }

func (a *AttributesV10) Source() string { return a.source }

func (a *AttributesV10) DataContentType() *string { return a.dataContentType }

func (a *AttributesV10) DataSchema() *string { return a.dataSchema }

func (a *AttributesV10) Subject() *string { return a.subject }

func (a *AttributesV10) Time() *time.Time { return a.time }

func (a *AttributesV10) SetID(id string) { a.id = id }

func (a *AttributesV10) SetType(typ string) { a.typ = typ }

// SetSource stores the source string untouched; the error is always nil and
// exists to satisfy the Writer contract shared with the 0.3 revision.
func (a *AttributesV10) SetSource(source string) error {
	a.source = source
	return nil
}

func (a *AttributesV10) SetSubject(subject *string) { a.subject = subject }

func (a *AttributesV10) SetTime(t *time.Time) { a.time = t }

func (a *AttributesV10) SetDataContentType(contentType *string) {
	a.dataContentType = contentType
}

// SetDataSchema stores the schema reference untouched; the error is always
// nil, as for SetSource.
func (a *AttributesV10) SetDataSchema(schema *string) error {
	a.dataSchema = schema
	return nil
}

// Attributes yields the set's attributes in wire order: specversion, id,
// type, source, datacontenttype, dataschema, subject, time; absent optional
// attributes are skipped. The sequence borrows the set and is restartable.
func (a *AttributesV10) Attributes() iter.Seq2[string, AttributeValue] {
	return func(yield func(string, AttributeValue) bool) {
		if !yield("specversion", SpecVersionValue(SpecV10)) {
			return
		}
		if !yield("id", StringValue(a.id)) {
			return
		}
		if !yield("type", StringValue(a.typ)) {
			return
		}
		if !yield("source", StringValue(a.source)) {
			return
		}
		if a.dataContentType != nil && !yield("datacontenttype", StringValue(*a.dataContentType)) {
			return
		}
		if a.dataSchema != nil && !yield("dataschema", StringValue(*a.dataSchema)) {
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

// IntoV03 remaps the set into the 0.3 revision, renaming dataschema to
// schemaurl and parsing the loose source and dataschema strings back into URI
// references. Parsing never fails for values that round-tripped from a valid
// 0.3 set; for hand-built sets holding strings url.Parse rejects, the parse
// error surfaces as a ConversionError. The receiver is consumed and must not
// be used afterwards.
func (a *AttributesV10) IntoV03() (*AttributesV03, error) {
	source, err := parseURIRef(a.source, "source")
	if err != nil {
		return nil, err
	}
	v03 := &AttributesV03{
		id:              a.id,
		typ:             a.typ,
		source:          source,
		dataContentType: a.dataContentType,
		subject:         a.subject,
		time:            a.time,
	}
	if a.dataSchema != nil {
		u, err := parseURIRef(*a.dataSchema, "dataschema")
		if err != nil {
			return nil, err
		}
		v03.schemaURL = u
	}
	return v03, nil
}

// IntoV10 is the identity conversion.
func (a *AttributesV10) IntoV10() (*AttributesV10, error) { return a, nil }

// DeserializeAttributes walks every present attribute through the visitor in
// wire order, stopping at the first visitor error. The call consumes the
// set; the receiver must not be reused afterwards.
func (a *AttributesV10) DeserializeAttributes(v AttributeVisitor) error {
	if err := v.SetAttribute("id", MessageString(a.id)); err != nil {
		return err
	}
	if err := v.SetAttribute("type", MessageString(a.typ)); err != nil {
		return err
	}
	if err := v.SetAttribute("source", MessageString(a.source)); err != nil {
		return err
	}
	if a.dataContentType != nil {
		if err := v.SetAttribute("datacontenttype", MessageString(*a.dataContentType)); err != nil {
			return err
		}
	}
	if a.dataSchema != nil {
		if err := v.SetAttribute("dataschema", MessageString(*a.dataSchema)); err != nil {
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
// this path; it and any name outside the 1.0 attribute table fail with
// UnrecognizedAttributeNameError.
func (a *AttributesV10) SerializeAttribute(name string, value MessageAttributeValue) error {
	switch name {
	case "id":
		a.id = value.String()
	case "type":
		a.typ = value.String()
	case "source":
		a.source = value.String()
	case "datacontenttype":
		s := value.String()
		a.dataContentType = &s
	case "dataschema":
		s := value.String()
		a.dataSchema = &s
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
