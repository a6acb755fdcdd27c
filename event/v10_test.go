package event_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/eventrail/envelope/event"
)

func newV10(t *testing.T) *event.AttributesV10 {
	t.Helper()

	a := event.NewAttributesV10()
	a.SetID("1")
	a.SetType("someType")
	require.NoError(t, a.SetSource("https://example.net/"))
	ts := time.Date(1970, 1, 1, 0, 1, 1, 0, time.UTC)
	a.SetTime(&ts)
	return a
}

func TestAttributesV10_Defaults(t *testing.T) {
	a := event.NewAttributesV10()

	_, err := uuid.Parse(a.ID())
	require.NoError(t, err, "default id must be a uuid")
	require.Equal(t, "envelope.generated", a.Type())
	require.NotEmpty(t, a.Source())
	require.NotNil(t, a.Time())
	require.Nil(t, a.DataContentType())
	require.Nil(t, a.DataSchema())
	require.Nil(t, a.Subject())
	require.Equal(t, event.SpecV10, a.SpecVersion())
}

func TestAttributesV10_Iteration(t *testing.T) {
	a := newV10(t)
	schema := "https://example.net/schema"
	require.NoError(t, a.SetDataSchema(&schema))

	names, values := collect(a)

	require.Equal(t, []string{"specversion", "id", "type", "source", "dataschema", "time"}, names)

	sv, ok := values[0].SpecVersion()
	require.True(t, ok)
	require.Equal(t, event.SpecV10, sv)
	require.Equal(t, "https://example.net/", values[3].String())
	require.Equal(t, event.KindString, values[3].Kind(), "1.0 source iterates as an opaque string")
	require.Equal(t, "https://example.net/schema", values[4].String())
}

func TestAttributesV10_SourceIsOpaque(t *testing.T) {
	a := event.NewAttributesV10()

	require.NoError(t, a.SetSource("not a uri at all"))
	require.Equal(t, "not a uri at all", a.Source())

	loose := "also not % a uri"
	require.NoError(t, a.SetDataSchema(&loose))
	require.Equal(t, loose, *a.DataSchema())
}

func TestAttributesV10_OptionalAttributesClear(t *testing.T) {
	a := newV10(t)
	subject := "orders/42"
	a.SetSubject(&subject)
	a.SetSubject(nil)
	a.SetTime(nil)

	names, _ := collect(a)

	require.Equal(t, []string{"specversion", "id", "type", "source"}, names)
	require.Nil(t, a.Subject())
	require.Nil(t, a.Time())
}
