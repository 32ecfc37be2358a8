package json_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	jsonsrc "github.com/mapdec/mapdec/fieldsource/json"
)

func drain(t *testing.T, src *jsonsrc.Source) ([]string, []any) {
	t.Helper()
	var keys []string
	var vals []any
	for {
		k, ok, err := src.NextKey()
		require.NoError(t, err)
		if !ok {
			return keys, vals
		}
		keys = append(keys, k)
		v, err := src.NextValue()
		require.NoError(t, err)
		vals = append(vals, v)
	}
}

func TestSource_DocumentOrderAndNumbers(t *testing.T) {
	src := jsonsrc.NewBytes([]byte(`{"b":1,"a":"x","c":[1,"y"],"d":{"n":true}}`))
	keys, vals := drain(t, src)

	require.Equal(t, []string{"b", "a", "c", "d"}, keys)
	require.Equal(t, json.Number("1"), vals[0])
	require.Equal(t, "x", vals[1])
	require.Equal(t, []any{json.Number("1"), "y"}, vals[2])
	require.Equal(t, map[string]any{"n": true}, vals[3])
}

func TestSource_DuplicateKeysReachTheCaller(t *testing.T) {
	src := jsonsrc.NewBytes([]byte(`{"k":1,"k":2}`))
	keys, _ := drain(t, src)
	require.Equal(t, []string{"k", "k"}, keys)
}

func TestSource_Skip(t *testing.T) {
	src := jsonsrc.NewBytes([]byte(`{"junk":{"deep":[1,2,3]},"keep":"v"}`))

	k, ok, err := src.NextKey()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "junk", k)
	require.NoError(t, src.Skip())

	k, ok, err = src.NextKey()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "keep", k)
	v, err := src.NextValue()
	require.NoError(t, err)
	require.Equal(t, "v", v)
}

func TestSource_RejectsNonObject(t *testing.T) {
	src := jsonsrc.NewBytes([]byte(`[1,2]`))
	_, _, err := src.NextKey()
	require.Error(t, err)
}

func TestSource_ValueMustBeConsumed(t *testing.T) {
	src := jsonsrc.NewBytes([]byte(`{"a":1,"b":2}`))
	_, _, err := src.NextKey()
	require.NoError(t, err)
	_, _, err = src.NextKey()
	require.Error(t, err)
}
