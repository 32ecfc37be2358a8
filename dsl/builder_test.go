package dsl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	mapdec "github.com/mapdec/mapdec"
	"github.com/mapdec/mapdec/dsl"
)

var statusTable = mapdec.EnumTable{"ACTIVE": 0, "DONE": 1}

func TestRecord_BuildAndDecode(t *testing.T) {
	schema, err := dsl.Record().
		Field("id", dsl.Int64()).
		Field("tags", dsl.String().Repeated()).
		Field("status", dsl.Enum(statusTable).DefaultName("ACTIVE")).
		Build()
	require.NoError(t, err)

	rec, err := mapdec.Decode(context.Background(), schema,
		mapdec.JSONBytes([]byte(`{"id":7,"tags":["a","b"]}`)),
		mapdec.DecodeOpt{UseDefaultForMissing: true})
	require.NoError(t, err)
	require.Equal(t, int64(7), rec["id"])
	require.Equal(t, []string{"a", "b"}, rec["tags"])
	require.Equal(t, int32(0), rec["status"])
}

func TestRecord_DuplicateNameFailsAtBuild(t *testing.T) {
	_, err := dsl.Record().
		Field("id", dsl.Int64()).
		Field("id", dsl.String()).
		Build()
	require.Error(t, err)
}

func TestFieldSpec_DefaultNormalization(t *testing.T) {
	schema, err := dsl.Record().
		Field("n", dsl.Int64().Default(5).Lenient()).
		Field("r", dsl.Float64()).
		Build()
	require.NoError(t, err)

	fields := schema.Fields()
	require.Equal(t, int64(5), fields[0].Default)
	require.True(t, fields[0].HasDefault)
	require.True(t, fields[0].Lenient)

	// per-field leniency applies without the call-level option
	rec, err := mapdec.Decode(context.Background(), schema,
		mapdec.JSONBytes([]byte(`{"n":"oops","r":1.5}`)))
	require.NoError(t, err)
	require.Equal(t, int64(5), rec["n"])
	require.Equal(t, 1.5, rec["r"])
}

func TestFieldSpec_DefinitionErrors(t *testing.T) {
	_, err := dsl.Record().
		Field("status", dsl.Enum(statusTable).DefaultName("NOPE")).
		Build()
	require.ErrorContains(t, err, "status")

	_, err = dsl.Record().
		Field("e", dsl.Enum(mapdec.EnumTable{})).
		Build()
	require.Error(t, err)

	_, err = dsl.Record().
		Field("n", dsl.Int64().Default("not-a-number")).
		Build()
	require.Error(t, err)

	_, err = dsl.Record().
		Field("s", dsl.String().DefaultName("X")).
		Build()
	require.Error(t, err)
}

func TestFieldSpec_RepeatedDefault(t *testing.T) {
	schema, err := dsl.Record().
		Field("tags", dsl.String().Repeated().Default([]string{"untagged"}).Lenient()).
		Build()
	require.NoError(t, err)

	// shape mismatch on a lenient repeated field takes the default sequence
	rec, err := mapdec.Decode(context.Background(), schema,
		mapdec.JSONBytes([]byte(`{"tags":42}`)))
	require.NoError(t, err)
	require.Equal(t, []string{"untagged"}, rec["tags"])
}

func TestMustBuild_PanicsOnError(t *testing.T) {
	require.Panics(t, func() {
		dsl.Record().Field("", dsl.Bool()).MustBuild()
	})
}
