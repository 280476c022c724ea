package fec

// lfsr is a q-stage linear-feedback shift register over Z_p, driven by a
// feedback vector K with K[0] != 0. It is the generator engine that expands a
// primitive polynomial into the cyclic orbit of GF(p^q)'s multiplicative
// group (see gf.go).
type lfsr struct {
	state []int
	k     []int
	invK0 int
	p     int
	q     int
}

// newLFSR builds an LFSR with feedback vector k over Z_p. It panics if
// k[0] == 0 or p <= 1, mirroring the assertions in the reference generator.
func newLFSR(p int, k []int) *lfsr {
	if len(k) == 0 || k[0] == 0 {
		panic("fec: lfsr feedback vector must have a non-zero leading coefficient")
	}
	if p <= 1 {
		panic("fec: lfsr modulus must be > 1")
	}
	g := &lfsr{
		state: make([]int, len(k)),
		k:     append([]int(nil), k...),
		p:     p,
		q:     len(k),
	}
	g.invK0 = modInverse(k[0], p)
	return g
}

func modInverse(x, p int) int {
	x = ((x % p) + p) % p
	for inv := 1; inv < p; inv++ {
		if (x*inv)%p == 1 {
			return inv
		}
	}
	panic("fec: lfsr leading coefficient has no inverse mod p")
}

// setUnit resets the register to the multiplicative unit state (1, 0, ..., 0).
func (g *lfsr) setUnit() {
	for i := range g.state {
		g.state[i] = 0
	}
	g.state[0] = 1
}

// next advances the register by one tick, feeding in input (default 0).
func (g *lfsr) next(input int) {
	v := g.state[g.q-1]
	for i := g.q - 1; i > 0; i-- {
		g.state[i] = mod(g.state[i-1]+v*g.k[i], g.p)
	}
	g.state[0] = mod(input+v*g.k[0], g.p)
}

// back undoes one tick of next, recovering the prior state.
func (g *lfsr) back(input int) {
	v := mod(g.invK0*mod(g.state[0]-input, g.p), g.p)
	for i := 0; i < g.q-1; i++ {
		g.state[i] = mod(g.state[i+1]-v*g.k[i+1], g.p)
	}
	g.state[g.q-1] = v
}

// isState reports whether st equals the current register state.
func (g *lfsr) isState(st []int) bool {
	if len(st) != len(g.state) {
		return false
	}
	for i, v := range g.state {
		if v != st[i] {
			return false
		}
	}
	return true
}

func (g *lfsr) stateCopy() []int {
	return append([]int(nil), g.state...)
}

func mod(x, p int) int {
	x %= p
	if x < 0 {
		x += p
	}
	return x
}
