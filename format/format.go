// Package format holds structured-mode wire codecs for versioned envelope
// attribute sets, plus a media-type registry for pluggable formats. Codecs
// consume the event package only through its visitor protocol and
// revision-agnostic interfaces, never through concrete fields.
package format

import (
	"fmt"
	"strings"
	"sync"

	"github.com/eventrail/envelope/event"
)

// Prefix is the common prefix of envelope format media types.
const Prefix = "application/envelope"

// Format marshals and unmarshals attribute sets to a structured wire form.
type Format interface {
	// MediaType identifies the format.
	MediaType() string
	// Marshal exports the attribute set to bytes. The set is consumed.
	Marshal(attrs event.Attributes) ([]byte, error)
	// Unmarshal decodes bytes into a freshly constructed attribute set of
	// whichever revision the payload declares.
	Unmarshal(data []byte) (event.Attributes, error)
}

// IsFormat reports whether mediaType names an envelope format.
func IsFormat(mediaType string) bool {
	return strings.HasPrefix(mediaType, Prefix)
}

// UnknownFormat keeps an unrecognized media type routable: it carries the
// media type, but Marshal and Unmarshal always fail.
type UnknownFormat string

func (uf UnknownFormat) MediaType() string { return string(uf) }

func (uf UnknownFormat) Marshal(event.Attributes) ([]byte, error) {
	return nil, unknown(string(uf))
}

func (uf UnknownFormat) Unmarshal([]byte) (event.Attributes, error) {
	return nil, unknown(string(uf))
}

func unknown(mediaType string) error {
	return fmt.Errorf("unknown envelope format media type %q", mediaType)
}

// Registry maps media types to Format implementations. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Format
}

// NewRegistry creates an empty format registry.
func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]Format)}
}

// Register adds a format; it can be retrieved by Lookup(f.MediaType()).
// Registering a media type twice replaces the earlier format.
func (r *Registry) Register(f Format) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.formats[f.MediaType()] = f
}

// Lookup retrieves the format for a media type. Returns an error if none is
// registered.
func (r *Registry) Lookup(mediaType string) (Format, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, exists := r.formats[mediaType]
	if !exists {
		return nil, unknown(mediaType)
	}
	return f, nil
}

// Marshal exports the attribute set with the format registered for mediaType.
func (r *Registry) Marshal(mediaType string, attrs event.Attributes) ([]byte, error) {
	f, err := r.Lookup(mediaType)
	if err != nil {
		return nil, err
	}
	return f.Marshal(attrs)
}

// Unmarshal decodes bytes with the format registered for mediaType.
func (r *Registry) Unmarshal(mediaType string, data []byte) (event.Attributes, error) {
	f, err := r.Lookup(mediaType)
	if err != nil {
		return nil, err
	}
	return f.Unmarshal(data)
}

// defaultRegistry holds the built-in formats.
var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.Register(JSON)
	r.Register(YAML)
	return r
}()

// Register adds a format to the default registry.
func Register(f Format) { defaultRegistry.Register(f) }

// Lookup retrieves a format from the default registry.
func Lookup(mediaType string) (Format, error) { return defaultRegistry.Lookup(mediaType) }

// Marshal exports the attribute set using the default registry.
func Marshal(mediaType string, attrs event.Attributes) ([]byte, error) {
	return defaultRegistry.Marshal(mediaType, attrs)
}

// Unmarshal decodes bytes using the default registry.
func Unmarshal(mediaType string, data []byte) (event.Attributes, error) {
	return defaultRegistry.Unmarshal(mediaType, data)
}

// populate builds a fresh attribute set of the revision raw declares, clears
// the defaulted optional attributes, then feeds every remaining wire key
// through the serializer protocol. The resulting set reflects exactly the
// wire's attributes.
func populate(raw map[string]string) (event.Attributes, error) {
	sv, err := event.ParseSpecVersion(raw["specversion"])
	if err != nil {
		return nil, err
	}

	var attrs event.Attributes
	switch sv {
	case event.SpecV03:
		attrs = event.NewAttributesV03()
	case event.SpecV10:
		attrs = event.NewAttributesV10()
	}
	attrs.SetTime(nil)

	for name, value := range raw {
		if name == "specversion" {
			continue
		}
		if err := attrs.SerializeAttribute(name, event.MessageString(value)); err != nil {
			return nil, err
		}
	}
	return attrs, nil
}
