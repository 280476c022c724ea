package fec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSystematicPlacesIdentityOnDefaultColumns(t *testing.T) {
	h := buildDefaultHammingH(6) // N=32, R=6
	sys, _, ok := makeSystematic(h, nil)
	require.True(t, ok)

	n := sys.cols()
	r := sys.rows()
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			want := byte(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, want, sys[i][n-r+j], "identity block mismatch at row %d col %d", i, j)
		}
	}
}

func TestMakeSystematicIsIdempotent(t *testing.T) {
	h := buildDefaultHammingH(6)
	sys1, _, ok1 := makeSystematic(h, nil)
	require.True(t, ok1)

	sys2, _, ok2 := makeSystematic(sys1, nil)
	require.True(t, ok2)

	for i := range sys1 {
		assert.Equal(t, sys1[i], sys2[i], "row %d changed on re-systematisation", i)
	}
}

func TestBinMatrixXorRowAndSwapColumns(t *testing.T) {
	m := binMatrix{
		{1, 0, 1},
		{0, 1, 1},
	}
	clone := m.clone()
	clone.xorRowInto(0, 1)
	assert.Equal(t, []byte{1, 1, 0}, clone[0])
	assert.Equal(t, []byte{0, 1, 1}, clone[1]) // original row untouched

	clone.swapColumns(0, 2)
	assert.Equal(t, []byte{0, 1, 1}, clone[0])
}
