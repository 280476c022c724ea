package fec

import "fmt"

// fieldState is an ordered sequence of q elements of Z_p: a coefficient vector
// for either a generator polynomial or a field element in vector form.
type fieldState struct {
	p     int
	state []int
}

func newFieldState(p int, n int) fieldState {
	return fieldState{p: p, state: make([]int, n)}
}

func (s fieldState) equal(o fieldState) bool {
	if s.p != o.p || len(s.state) != len(o.state) {
		return false
	}
	for i, v := range s.state {
		if v != o.state[i] {
			return false
		}
	}
	return true
}

func (s fieldState) add(o fieldState) fieldState {
	r := fieldState{p: s.p, state: make([]int, len(s.state))}
	for i := range s.state {
		r.state[i] = mod(s.state[i]+o.state[i], s.p)
	}
	return r
}

func (s fieldState) sub(o fieldState) fieldState {
	r := fieldState{p: s.p, state: make([]int, len(s.state))}
	for i := range s.state {
		r.state[i] = mod(s.state[i]-o.state[i], s.p)
	}
	return r
}

func (s fieldState) key() string {
	// Small, fixed-width keys: p and q are always tiny (p=2, q=4 for the
	// spec's GF(2^4)), so a string key is cheap and keeps gfTable map-friendly
	// without pulling in a hashing dependency for a handful of entries.
	b := make([]byte, 0, len(s.state)+2)
	b = append(b, byte(s.p))
	for _, v := range s.state {
		b = append(b, byte(v))
	}
	return string(b)
}

// gfTable holds the idx_of/elem_of mapping of GF(p^q) built from the cyclic
// orbit of an LFSR driven by a primitive polynomial. The zero element maps to
// index -1; the multiplicative unit maps to index 0; the rest follow the LFSR
// orbit order.
type gfTable struct {
	p       int
	q       int
	order   int // p^q
	nInner  int // order - 1, the size of the multiplicative group
	idxOf   map[string]int
	elemOf  map[int]fieldState
	isGood  bool
}

// buildGFTable expands the generator polynomial gPoly (length q, over Z_p)
// into the index<->element tables of GF(p^q). The table is marked invalid if
// the polynomial is not primitive, i.e. the LFSR orbit does not cover the
// full field order before returning to the unit state.
func buildGFTable(p, q int, gPoly []int) *gfTable {
	order := 1
	for i := 0; i < q; i++ {
		order *= p
	}
	t := &gfTable{
		p:      p,
		q:      q,
		order:  order,
		nInner: order - 1,
		idxOf:  make(map[string]int, order),
		elemOf: make(map[int]fieldState, order),
	}

	gen := newLFSR(p, gPoly)
	gen.setUnit()
	unit := fieldState{p: p, state: gen.stateCopy()}

	zero := newFieldState(p, q)
	t.register(-1, zero)
	t.register(0, unit)

	for idx := 1; ; idx++ {
		gen.next(0)
		if gen.isState(unit.state) {
			break
		}
		st := fieldState{p: p, state: gen.stateCopy()}
		t.register(idx, st)
		if idx > order {
			// Orbit longer than the field order: definitely not primitive,
			// and without this guard a bad polynomial loops forever.
			break
		}
	}

	t.isGood = len(t.idxOf) == order && len(t.elemOf) == order
	return t
}

func (t *gfTable) register(idx int, st fieldState) {
	t.elemOf[idx] = st
	t.idxOf[st.key()] = idx
}

func (t *gfTable) index(st fieldState) int {
	idx, ok := t.idxOf[st.key()]
	if !ok {
		panic(fmt.Sprintf("fec: state %v not present in GF(%d^%d) table", st.state, t.p, t.q))
	}
	return idx
}

func (t *gfTable) element(idx int) fieldState {
	st, ok := t.elemOf[idx]
	if !ok {
		panic(fmt.Sprintf("fec: index %d not present in GF(%d^%d) table", idx, t.p, t.q))
	}
	return st
}

// gf wraps a built gfTable with the add/sub/mult operations of GF(p^q),
// working on both vector states and on the "index" (discrete log) form.
type gf struct {
	lut *gfTable
}

func newGF(lut *gfTable) gf {
	return gf{lut: lut}
}

func (g gf) addState(a, b fieldState) fieldState {
	return g.lut.element(g.lut.index(a.add(b)))
}

func (g gf) subState(a, b fieldState) fieldState {
	return g.lut.element(g.lut.index(a.sub(b)))
}

// add sums two field elements given by index, -1 denoting zero.
func (g gf) add(i, j int) int {
	return g.lut.index(g.lut.element(i).add(g.lut.element(j)))
}

// sub mirrors add with modular subtraction.
func (g gf) sub(i, j int) int {
	return g.lut.index(g.lut.element(i).sub(g.lut.element(j)))
}

// mult multiplies two field elements given by index. Either operand equal to
// -1 (the zero element) forces the result to -1.
func (g gf) mult(i, j int) int {
	if i < 0 || j < 0 {
		return -1
	}
	return mod(i+j, g.lut.nInner)
}
