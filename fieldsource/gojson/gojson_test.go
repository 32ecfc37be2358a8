package gojson_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mapdec/mapdec/fieldsource/gojson"
)

func TestSource_DocumentOrder(t *testing.T) {
	src := gojson.NewBytes([]byte(`{"b":1,"a":"x","b":2}`))

	var keys []string
	var vals []any
	for {
		k, ok, err := src.NextKey()
		require.NoError(t, err)
		if !ok {
			break
		}
		keys = append(keys, k)
		v, err := src.NextValue()
		require.NoError(t, err)
		vals = append(vals, v)
	}
	require.Equal(t, []string{"b", "a", "b"}, keys)
	require.Equal(t, json.Number("1"), vals[0])
	require.Equal(t, "x", vals[1])
}

func TestDriver_Name(t *testing.T) {
	require.Equal(t, "go-json", gojson.Driver().Name())
}
