package fec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGFTableCompletenessForDefaultGenerator(t *testing.T) {
	table := buildGFTable(2, 4, []int{1, 0, 0, 1})
	require.True(t, table.isGood)
	assert.Equal(t, 16, table.order)

	for idx := -1; idx < table.nInner; idx++ {
		st := table.element(idx)
		assert.Equal(t, idx, table.index(st), "idx<->element must be mutual inverses at %d", idx)
	}
}

func TestGFTableRejectsNonPrimitivePolynomial(t *testing.T) {
	// A feedback vector with every tap but k[0] zero corresponds to x^4+1 =
	// (x+1)^4 over GF(2): maximally reducible, so the orbit closes long
	// before covering the 15-element multiplicative group.
	table := buildGFTable(2, 4, []int{1, 0, 0, 0})
	assert.False(t, table.isGood)
}

func TestGFArithmeticProperties(t *testing.T) {
	table := buildGFTable(2, 4, []int{1, 0, 0, 1})
	require.True(t, table.isGood)
	g := newGF(table)

	n := table.nInner
	for i := -1; i < n; i++ {
		for j := -1; j < n; j++ {
			assert.Equal(t, g.mult(i, j), g.mult(j, i), "mult must commute for (%d,%d)", i, j)
		}
	}

	for i := -1; i < n; i++ {
		assert.Equal(t, -1, g.sub(i, i), "sub(a,a) must be the zero index")
	}

	a, b, c := 2, 5, 9
	lhs := g.add(a, g.add(b, c))
	rhs := g.add(g.add(a, b), c)
	assert.Equal(t, rhs, lhs, "addition must associate")
}

func TestGFMultWithZeroIsZero(t *testing.T) {
	table := buildGFTable(2, 4, []int{1, 0, 0, 1})
	g := newGF(table)
	assert.Equal(t, -1, g.mult(-1, 3))
	assert.Equal(t, -1, g.mult(7, -1))
}
