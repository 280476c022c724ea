package fec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLFSRUnitOrbitLengthMatchesFieldOrder(t *testing.T) {
	g := newLFSR(2, []int{1, 0, 0, 1})
	g.setUnit()
	unit := g.stateCopy()

	steps := 0
	for {
		g.next(0)
		steps++
		if g.isState(unit) {
			break
		}
		if steps > 16 {
			t.Fatalf("orbit did not close within the expected field order")
		}
	}
	assert.Equal(t, 15, steps, "GF(2^4) multiplicative group has order 15")
}

func TestLFSRBackUndoesNext(t *testing.T) {
	g := newLFSR(2, []int{1, 0, 0, 1})
	g.setUnit()
	before := g.stateCopy()

	g.next(1)
	g.back(1)
	assert.True(t, g.isState(before))
}

func TestLFSRPanicsOnZeroLeadingCoefficient(t *testing.T) {
	assert.Panics(t, func() {
		newLFSR(2, []int{0, 1, 0, 1})
	})
}

func TestModWrapsNegativeValues(t *testing.T) {
	assert.Equal(t, 1, mod(-1, 2))
	assert.Equal(t, 0, mod(4, 2))
	assert.Equal(t, 3, mod(-7, 10))
}
