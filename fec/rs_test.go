package fec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRSCodec(t *testing.T) *rsCodec {
	table := buildGFTable(2, 4, []int{1, 0, 0, 1})
	require.True(t, table.isGood)
	g := newGF(table)
	return newRSCodec(g, 5) // RS(15,10)
}

func TestRSEncodeSyndromeIsZero(t *testing.T) {
	c := newTestRSCodec(t)
	a := make([]int, c.k)
	for i := range a {
		a[i] = 1
	}
	codeword := c.encode(a)
	require.Len(t, codeword, c.n)

	syn := c.syndrome(codeword)
	assert.True(t, syndromeIsZero(syn))
}

func TestRSRoundTrip(t *testing.T) {
	c := newTestRSCodec(t)
	a := make([]int, c.k)
	for i := range a {
		a[i] = (i%15 + 1)
	}
	codeword := c.encode(a)
	decoded := c.decode(codeword)
	assert.Equal(t, a, decoded)
}

func TestRSSingleErrorCorrection(t *testing.T) {
	c := newTestRSCodec(t)
	a := make([]int, c.k)
	for i := range a {
		a[i] = 1
	}
	codeword := c.encode(a)

	for p0 := 0; p0 < c.n; p0++ {
		for e := 0; e < c.n; e++ {
			corrupted := append([]int(nil), codeword...)
			corrupted[p0] = indexToStorage(c.gf.add(storageToIndex(corrupted[p0]), e))

			corrected, errorsFound, err := c.correctRow(corrupted)
			require.NoError(t, err, "p0=%d e=%d", p0, e)
			assert.Equal(t, 1, errorsFound)

			decoded := c.decode(corrected)
			assert.Equal(t, a, decoded, "p0=%d e=%d", p0, e)
		}
	}
}

func TestRSDoubleErrorCorrection(t *testing.T) {
	c := newTestRSCodec(t)
	a := make([]int, c.k)
	for i := range a {
		a[i] = 2
	}
	codeword := c.encode(a)

	cases := []struct{ p1, p2 int }{
		{0, 1}, {2, 9}, {0, c.n - 1}, {5, 7},
	}
	for _, tc := range cases {
		corrupted := append([]int(nil), codeword...)
		corrupted[tc.p1] = indexToStorage(c.gf.add(storageToIndex(corrupted[tc.p1]), 3))
		corrupted[tc.p2] = indexToStorage(c.gf.add(storageToIndex(corrupted[tc.p2]), 6))

		corrected, errorsFound, err := c.correctRow(corrupted)
		require.NoError(t, err, "p1=%d p2=%d", tc.p1, tc.p2)
		assert.Equal(t, 2, errorsFound)

		decoded := c.decode(corrected)
		assert.Equal(t, a, decoded, "p1=%d p2=%d", tc.p1, tc.p2)
	}
}

func TestRSTripleErrorReportsUncorrectable(t *testing.T) {
	c := newTestRSCodec(t)
	a := make([]int, c.k)
	for i := range a {
		a[i] = 3
	}
	codeword := c.encode(a)

	corrupted := append([]int(nil), codeword...)
	corrupted[0] = indexToStorage(c.gf.add(storageToIndex(corrupted[0]), 1))
	corrupted[4] = indexToStorage(c.gf.add(storageToIndex(corrupted[4]), 2))
	corrupted[8] = indexToStorage(c.gf.add(storageToIndex(corrupted[8]), 3))

	_, _, err := c.correctRow(corrupted)
	assert.ErrorIs(t, err, errUncorrectable)
}

func TestShiftLeftRightAreInverses(t *testing.T) {
	c := newTestRSCodec(t)
	s := []int{3, 0, 7, 1, 15}
	shifted := c.shiftLeft(s)
	back := c.shiftRight(shifted)
	assert.Equal(t, s, back)
}
