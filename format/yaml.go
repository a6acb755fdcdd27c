package format

import (
	"gopkg.in/yaml.v3"

	"github.com/eventrail/envelope/event"
)

// MediaTypeYAML is the structured-mode YAML media type.
const MediaTypeYAML = "application/envelope+yaml"

// YAML is the built-in structured-mode YAML format. Key order in the output
// follows yaml.v3 map marshalling; no ordering contract is claimed.
var YAML Format = yamlFormat{}

type yamlFormat struct{}

func (yamlFormat) MediaType() string { return MediaTypeYAML }

// yamlVisitor collects attributes into a map for yaml.v3 marshalling.
type yamlVisitor map[string]string

func (v yamlVisitor) SetAttribute(name string, value event.MessageAttributeValue) error {
	v[name] = value.String()
	return nil
}

func (yamlFormat) Marshal(attrs event.Attributes) ([]byte, error) {
	v := yamlVisitor{"specversion": attrs.SpecVersion().String()}
	if err := attrs.DeserializeAttributes(v); err != nil {
		return nil, err
	}
	return yaml.Marshal(map[string]string(v))
}

func (yamlFormat) Unmarshal(data []byte) (event.Attributes, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return populate(raw)
}
