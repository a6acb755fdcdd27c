package format

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/eventrail/envelope/event"
)

// MediaTypeJSON is the structured-mode JSON media type.
const MediaTypeJSON = "application/envelope+json"

// JSON is the built-in structured-mode JSON format. Marshal emits object
// members in the core's attribute iteration order, so output is
// deterministic for a given set.
var JSON Format = jsonFormat{}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonFormat struct{}

func (jsonFormat) MediaType() string { return MediaTypeJSON }

// jsonVisitor streams each visited attribute as an object member. The
// specversion member is always written before the visitor runs, so every
// member it writes is preceded by a separator.
type jsonVisitor struct {
	stream *jsoniter.Stream
}

func (v *jsonVisitor) SetAttribute(name string, value event.MessageAttributeValue) error {
	v.stream.WriteMore()
	v.stream.WriteObjectField(name)
	v.stream.WriteString(value.String())
	return v.stream.Error
}

func (jsonFormat) Marshal(attrs event.Attributes) ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	stream.WriteObjectStart()
	stream.WriteObjectField("specversion")
	stream.WriteString(attrs.SpecVersion().String())

	if err := attrs.DeserializeAttributes(&jsonVisitor{stream: stream}); err != nil {
		return nil, err
	}

	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func (jsonFormat) Unmarshal(data []byte) (event.Attributes, error) {
	var raw map[string]string
	if err := jsonAPI.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return populate(raw)
}
