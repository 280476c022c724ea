package fec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightAndXorRowWeight(t *testing.T) {
	assert.Equal(t, 2, weight([]byte{1, 0, 1, 0}))
	out, w := xorRowWeight([]byte{1, 1, 0}, []byte{0, 1, 1})
	assert.Equal(t, []byte{1, 0, 1}, out)
	assert.Equal(t, 2, w)
}

func TestSimplifyReducesRowWeightAndTracksFreeColumn(t *testing.T) {
	s := binMatrix{
		{1, 1, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	free := []vectorSymbol{
		normalSymbol([]int{1}),
		normalSymbol([]int{2}),
		normalSymbol([]int{4}),
	}

	simplify(s, free, upDown)

	// Row 0 should have absorbed row 1, dropping its weight from 2 to 1.
	assert.Equal(t, 1, weight(s[0]))
	assert.Equal(t, []byte{1, 0, 0}, s[0])
	assert.Equal(t, []int{1 ^ 2}, free[0].data)
}

func TestPartnerOrderDirections(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, partnerOrder(0, 4, upDown))
	assert.Equal(t, []int{3, 2, 1}, partnerOrder(0, 4, downUp))
}
