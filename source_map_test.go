package mapdec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	mapdec "github.com/mapdec/mapdec"
)

func TestFromMap_SortedKeyOrder(t *testing.T) {
	src := mapdec.FromMap(map[string]any{"b": 2, "a": 1, "c": 3})

	var keys []string
	for {
		k, ok, err := src.NextKey()
		require.NoError(t, err)
		if !ok {
			break
		}
		keys = append(keys, k)
		_, err = src.NextValue()
		require.NoError(t, err)
	}
	require.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestFromPairs_PreservesDuplicates(t *testing.T) {
	src := mapdec.FromPairs(
		mapdec.KV{Key: "x", Value: 1},
		mapdec.KV{Key: "x", Value: 2},
	)

	k, ok, err := src.NextKey()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "x", k)
	v, err := src.NextValue()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	k, ok, err = src.NextKey()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "x", k)
	require.NoError(t, src.Skip())

	_, ok, err = src.NextKey()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPairSource_ContractViolations(t *testing.T) {
	src := mapdec.FromPairs(mapdec.KV{Key: "x", Value: 1})

	// value read before any key
	_, err := src.NextValue()
	require.Error(t, err)

	_, ok, err := src.NextKey()
	require.NoError(t, err)
	require.True(t, ok)

	// second key before consuming the pending value
	_, _, err = src.NextKey()
	require.Error(t, err)

	require.NoError(t, src.Skip())
	require.Error(t, src.Skip())
}
