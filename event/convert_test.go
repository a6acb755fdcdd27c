package event_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eventrail/envelope/event"
)

func TestConvert_SameRevisionIsIdentity(t *testing.T) {
	v03 := newV03(t)
	got03, err := v03.IntoV03()
	require.NoError(t, err)
	require.Same(t, v03, got03)

	v10 := newV10(t)
	got10, err := v10.IntoV10()
	require.NoError(t, err)
	require.Same(t, v10, got10)
}

func TestConvert_V03ToV10RenamesSchemaURL(t *testing.T) {
	a := newV03(t)
	schema := "https://example.net/schema"
	require.NoError(t, a.SetDataSchema(&schema))

	b, err := a.IntoV10()
	require.NoError(t, err)

	require.Equal(t, "1", b.ID())
	require.Equal(t, "someType", b.Type())
	require.Equal(t, "https://example.net/", b.Source(), "source flattens to its normalized string form")
	require.NotNil(t, b.DataSchema())
	require.Equal(t, "https://example.net/schema", *b.DataSchema())
	require.Equal(t, a.Time(), b.Time())
}

func TestConvert_V03ToV10WithoutSchemaURL(t *testing.T) {
	a := newV03(t)

	b, err := a.IntoV10()
	require.NoError(t, err)

	require.Nil(t, b.DataSchema(), "conversion must not invent a dataschema")
	require.Nil(t, b.DataContentType())
	require.Nil(t, b.Subject())
}

func TestConvert_RoundTripV03(t *testing.T) {
	a := newV03(t)
	ct := "application/json"
	schema := "https://example.net/schema?v=1"
	subject := "orders/42"
	a.SetDataContentType(&ct)
	require.NoError(t, a.SetDataSchema(&schema))
	a.SetSubject(&subject)

	b, err := a.IntoV10()
	require.NoError(t, err)
	back, err := b.IntoV03()
	require.NoError(t, err)

	require.Equal(t, a, back)
}

func TestConvert_RoundTripV10(t *testing.T) {
	a := newV10(t)
	ct := "text/plain"
	schema := "https://example.net/schema"
	a.SetDataContentType(&ct)
	require.NoError(t, a.SetDataSchema(&schema))

	b, err := a.IntoV03()
	require.NoError(t, err)
	back, err := b.IntoV10()
	require.NoError(t, err)

	require.Equal(t, a, back)
}

func TestConvert_V10ToV03RejectsUnparsableSource(t *testing.T) {
	a := newV10(t)
	require.NoError(t, a.SetSource("https://example.net/\x7f"))

	_, err := a.IntoV03()

	var convErr *event.ConversionError
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, "source", convErr.Attribute)
}

func TestConvert_V10ToV03RejectsUnparsableDataSchema(t *testing.T) {
	a := newV10(t)
	bad := "https://example.net/\x7f"
	require.NoError(t, a.SetDataSchema(&bad))

	_, err := a.IntoV03()

	var convErr *event.ConversionError
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, "dataschema", convErr.Attribute)
}

func TestConvert_PreservesTimezonelessEquality(t *testing.T) {
	a := newV03(t)
	ts := time.Date(2026, 8, 30, 9, 30, 0, 500, time.UTC)
	a.SetTime(&ts)

	b, err := a.IntoV10()
	require.NoError(t, err)

	require.Equal(t, &ts, b.Time())
}
