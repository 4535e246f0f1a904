package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/goliatone/go-matrix-cache/matrix"
)

func TestMsgpackCodec_RoundTrip(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1.5, -2}, {0, 4e10}})
	require.NoError(t, err)

	payload, err := msgpack.Marshal(m)
	require.NoError(t, err)

	var decoded matrix.Dense
	require.NoError(t, msgpack.Unmarshal(payload, &decoded))
	assert.True(t, m.Equal(&decoded))
}

func TestMsgpackCodec_Deterministic(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	first, err := msgpack.Marshal(m)
	require.NoError(t, err)
	second, err := msgpack.Marshal(m.Clone())
	require.NoError(t, err)

	assert.Equal(t, first, second, "equal matrices must encode identically")
}
