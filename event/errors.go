package event

import (
	"errors"
	"fmt"
)

// UnrecognizedAttributeNameError reports a wire attribute name outside the
// revision's attribute table. It is always surfaced to the caller so unknown
// keys are never silently dropped during a round trip.
type UnrecognizedAttributeNameError struct {
	Name string
}

func (e *UnrecognizedAttributeNameError) Error() string {
	return fmt.Sprintf("unrecognized attribute name %q", e.Name)
}

// ConversionError reports a value that could not be converted to the target
// field's concrete type.
type ConversionError struct {
	// Attribute is the wire attribute name, when known.
	Attribute string
	// Value is the offending value in its canonical string form.
	Value string
	// Target describes the type the value could not become.
	Target string
	// Err is the underlying parse error, if any.
	Err error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("cannot convert %q to %s", e.Value, e.Target)
	if e.Attribute != "" {
		msg = fmt.Sprintf("attribute %q: %s", e.Attribute, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// withAttribute stamps the wire attribute name onto a ConversionError raised
// by a value coercion, leaving other errors untouched.
func withAttribute(err error, attribute string) error {
	var ce *ConversionError
	if errors.As(err, &ce) && ce.Attribute == "" {
		ce.Attribute = attribute
	}
	return err
}
