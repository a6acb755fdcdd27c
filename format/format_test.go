package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eventrail/envelope/event"
	"github.com/eventrail/envelope/format"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	registry := format.NewRegistry()
	registry.Register(format.JSON)
	registry.Register(format.YAML)

	t.Run("lookup json", func(t *testing.T) {
		f, err := registry.Lookup(format.MediaTypeJSON)
		require.NoError(t, err)
		require.Equal(t, format.MediaTypeJSON, f.MediaType())
	})

	t.Run("lookup yaml", func(t *testing.T) {
		f, err := registry.Lookup(format.MediaTypeYAML)
		require.NoError(t, err)
		require.Equal(t, format.MediaTypeYAML, f.MediaType())
	})

	t.Run("lookup unregistered media type", func(t *testing.T) {
		_, err := registry.Lookup("application/envelope+protobuf")
		require.Error(t, err)
	})
}

func TestDefaultRegistry_HasBuiltinFormats(t *testing.T) {
	for _, mediaType := range []string{format.MediaTypeJSON, format.MediaTypeYAML} {
		f, err := format.Lookup(mediaType)
		require.NoError(t, err)
		require.Equal(t, mediaType, f.MediaType())
	}
}

func TestRegistry_MarshalUnknownMediaType(t *testing.T) {
	registry := format.NewRegistry()

	_, err := registry.Marshal("application/envelope+cbor", event.NewAttributesV10())
	require.Error(t, err)

	_, err = registry.Unmarshal("application/envelope+cbor", []byte("{}"))
	require.Error(t, err)
}

func TestUnknownFormat(t *testing.T) {
	uf := format.UnknownFormat("application/envelope+avro")

	require.Equal(t, "application/envelope+avro", uf.MediaType())

	_, err := uf.Marshal(event.NewAttributesV03())
	require.Error(t, err)

	_, err = uf.Unmarshal([]byte("{}"))
	require.Error(t, err)
}

func TestIsFormat(t *testing.T) {
	require.True(t, format.IsFormat(format.MediaTypeJSON))
	require.True(t, format.IsFormat("application/envelope+avro"))
	require.False(t, format.IsFormat("application/json"))
}
