package event

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// ValueKind discriminates the variants of AttributeValue and
// MessageAttributeValue.
type ValueKind int

const (
	KindString ValueKind = iota
	KindURI
	KindURIRef
	KindTime
	KindSpecVersion
	KindBoolean
	KindInteger
	KindBinary
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindURI:
		return "URI"
	case KindURIRef:
		return "URI reference"
	case KindTime:
		return "timestamp"
	case KindSpecVersion:
		return "spec version"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindBinary:
		return "binary"
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// AttributeValue is a read-only view of one attribute, yielded by the
// iteration contract. It borrows from the owning attribute set and must not
// outlive it; it is never used for mutation.
type AttributeValue struct {
	kind ValueKind
	str  string
	uri  *url.URL
	t    time.Time
	spec SpecVersion
}

// StringValue wraps a plain string attribute.
func StringValue(s string) AttributeValue {
	return AttributeValue{kind: KindString, str: s}
}

// URIRefValue wraps a parsed URI-reference attribute.
func URIRefValue(u *url.URL) AttributeValue {
	return AttributeValue{kind: KindURIRef, uri: u}
}

// TimeValue wraps a timestamp attribute.
func TimeValue(t time.Time) AttributeValue {
	return AttributeValue{kind: KindTime, t: t}
}

// SpecVersionValue wraps the revision tag.
func SpecVersionValue(v SpecVersion) AttributeValue {
	return AttributeValue{kind: KindSpecVersion, spec: v}
}

func (v AttributeValue) Kind() ValueKind {
	return v.kind
}

// String renders the canonical text form of the value: RFC 3339 for
// timestamps, the URI string form for references.
func (v AttributeValue) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindURIRef:
		if v.uri == nil {
			return ""
		}
		return v.uri.String()
	case KindTime:
		return v.t.Format(time.RFC3339Nano)
	case KindSpecVersion:
		return v.spec.String()
	}
	return ""
}

// URIRef returns the wrapped URI reference; ok is false for other kinds.
func (v AttributeValue) URIRef() (u *url.URL, ok bool) {
	return v.uri, v.kind == KindURIRef
}

// Time returns the wrapped timestamp; ok is false for other kinds.
func (v AttributeValue) Time() (t time.Time, ok bool) {
	return v.t, v.kind == KindTime
}

// SpecVersion returns the wrapped revision tag; ok is false for other kinds.
func (v AttributeValue) SpecVersion() (sv SpecVersion, ok bool) {
	return v.spec, v.kind == KindSpecVersion
}

// MessageAttributeValue carries one attribute value as produced by or
// destined for a wire encoding. Conversions to concrete field types are
// fallible; see AsURL and AsTime.
type MessageAttributeValue struct {
	kind ValueKind
	str  string
	uri  *url.URL
	t    time.Time
	b    bool
	i    int64
	bin  []byte
}

// MessageString wraps a plain string value.
func MessageString(s string) MessageAttributeValue {
	return MessageAttributeValue{kind: KindString, str: s}
}

// MessageURI wraps an absolute URI value.
func MessageURI(u *url.URL) MessageAttributeValue {
	return MessageAttributeValue{kind: KindURI, uri: u}
}

// MessageURIRef wraps a URI-reference value.
func MessageURIRef(u *url.URL) MessageAttributeValue {
	return MessageAttributeValue{kind: KindURIRef, uri: u}
}

// MessageTime wraps a timestamp value.
func MessageTime(t time.Time) MessageAttributeValue {
	return MessageAttributeValue{kind: KindTime, t: t}
}

// MessageBoolean wraps a boolean value.
func MessageBoolean(b bool) MessageAttributeValue {
	return MessageAttributeValue{kind: KindBoolean, b: b}
}

// MessageInteger wraps an integer value.
func MessageInteger(i int64) MessageAttributeValue {
	return MessageAttributeValue{kind: KindInteger, i: i}
}

// MessageBinary wraps a binary value.
func MessageBinary(p []byte) MessageAttributeValue {
	return MessageAttributeValue{kind: KindBinary, bin: p}
}

func (v MessageAttributeValue) Kind() ValueKind {
	return v.kind
}

// String renders the canonical text form: RFC 3339 for timestamps, standard
// base64 for binary, strconv forms for booleans and integers.
func (v MessageAttributeValue) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindURI, KindURIRef:
		if v.uri == nil {
			return ""
		}
		return v.uri.String()
	case KindTime:
		return v.t.Format(time.RFC3339Nano)
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindBinary:
		return base64.StdEncoding.EncodeToString(v.bin)
	}
	return ""
}

// AsURL coerces the value to a URI reference. String values are parsed;
// URI and URI-reference values pass through. Anything else fails with a
// ConversionError.
func (v MessageAttributeValue) AsURL() (*url.URL, error) {
	switch v.kind {
	case KindURI, KindURIRef:
		return v.uri, nil
	case KindString:
		u, err := url.Parse(v.str)
		if err != nil {
			return nil, &ConversionError{Value: v.str, Target: "URI reference", Err: err}
		}
		return u, nil
	}
	return nil, &ConversionError{
		Value:  v.String(),
		Target: "URI reference",
		Err:    fmt.Errorf("value is a %s", v.kind),
	}
}

// AsTime coerces the value to a timestamp. String values are parsed as
// RFC 3339; timestamp values pass through. Anything else fails with a
// ConversionError.
func (v MessageAttributeValue) AsTime() (time.Time, error) {
	switch v.kind {
	case KindTime:
		return v.t, nil
	case KindString:
		t, err := time.Parse(time.RFC3339Nano, v.str)
		if err != nil {
			return time.Time{}, &ConversionError{Value: v.str, Target: "timestamp", Err: err}
		}
		return t, nil
	}
	return time.Time{}, &ConversionError{
		Value:  v.String(),
		Target: "timestamp",
		Err:    fmt.Errorf("value is a %s", v.kind),
	}
}
