package runlen

import (
	"testing"

	"github.com/colstore/runlen/block"
	"github.com/colstore/runlen/format"
	"github.com/stretchr/testify/require"
)

func TestColumnID(t *testing.T) {
	id := ColumnID("cpu.usage")

	require.NotZero(t, id)
	require.Equal(t, id, ColumnID("cpu.usage"))
	require.NotEqual(t, id, ColumnID("memory.usage"))
}

func TestColumnID_MatchesBlockHeader(t *testing.T) {
	w := block.NewWriter("cpu.usage", block.Float64Values{}, format.CompressionNone)
	require.NoError(t, w.Push(1.0))

	data, err := w.Finish()
	require.NoError(t, err)

	r, err := block.NewReader(data, block.Float64Values{})
	require.NoError(t, err)
	require.Equal(t, ColumnID("cpu.usage"), r.Header().ColumnID)
}
