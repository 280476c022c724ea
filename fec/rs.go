package fec

import (
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// rsCodec is the inner Reed-Solomon layer: a non-systematic RS code over
// GF(p^q) expressed as multiplication by a Vandermonde-like matrix, with
// syndrome computation and LUT-driven 1-/2-symbol error correction.
type rsCodec struct {
	gf gf
	n  int // N_inner = p^q - 1
	r  int // R_inner, number of check symbols
	k  int // K_inner = N - R

	lut1 map[string][2]int // syndrome key -> (position, error field-index)
	lut2 map[string][3]int // syndrome key -> (delta, errIndex1, errIndex2), keyed for first position == 0
}

// newRSCodec builds the RS(N,K) codec over the field described by g and
// precomputes the 1- and 2-error syndrome lookup tables. The two tables are
// independent precomputations over disjoint parts of syndrome space, so they
// are built concurrently.
func newRSCodec(g gf, r int) *rsCodec {
	n := g.lut.nInner
	c := &rsCodec{
		gf: g,
		n:  n,
		r:  r,
		k:  n - r,
	}

	var eg errgroup.Group
	eg.Go(func() error {
		c.lut1 = c.build1ErrorLUT()
		return nil
	})
	eg.Go(func() error {
		c.lut2 = c.build2ErrorLUT()
		return nil
	})
	_ = eg.Wait() // both builders are pure functions; they cannot fail

	return c
}

func storageToIndex(v int) int {
	if v == 0 {
		return -1
	}
	return v - 1
}

func indexToStorage(idx int) int {
	if idx < 0 {
		return 0
	}
	return idx + 1
}

// encode performs non-systematic RS encoding: a is an information vector of
// length K in storage convention; the result has length N, also in storage
// convention.
func (c *rsCodec) encode(a []int) []int {
	padded := make([]int, c.n)
	for j := 0; j < c.k; j++ {
		padded[j] = storageToIndex(a[j])
	}
	for j := c.k; j < c.n; j++ {
		padded[j] = -1
	}

	out := make([]int, c.n)
	for i := 0; i < c.n; i++ {
		step := i
		idx := 0
		resultIdx := -1
		for j := 0; j < c.n; j++ {
			multIdx := c.gf.mult(padded[j], idx)
			resultIdx = c.gf.add(multIdx, resultIdx)
			idx = mod(idx+step, c.n)
		}
		out[i] = indexToStorage(resultIdx)
	}
	return out
}

// syndrome computes H*v for the non-systematic parity-check matrix
// H[i,j] = alpha^{(i+1)*j}, returning an R-length vector in storage
// convention. A zero syndrome means v is (or looks like) a valid codeword.
func (c *rsCodec) syndrome(v []int) []int {
	out := make([]int, c.r)
	for i := 0; i < c.r; i++ {
		idx := 0
		resultIdx := -1
		for j := 0; j < c.n; j++ {
			multIdx := c.gf.mult(storageToIndex(v[j]), idx)
			resultIdx = c.gf.add(multIdx, resultIdx)
			idx = mod(idx+(i+1), c.n)
		}
		out[i] = indexToStorage(resultIdx)
	}
	return out
}

func syndromeIsZero(s []int) bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

// decode multiplies by the inverse Vandermonde matrix and strips the
// trailing R entries, which must be zero for a valid (corrected) codeword.
// The caller is expected to have already corrected or erased the row.
func (c *rsCodec) decode(v []int) []int {
	result := make([]int, 0, c.n)
	for i := 0; i < c.n; i++ {
		step := -i
		idx := 0
		resultIdx := -1
		for j := 0; j < c.n; j++ {
			multIdx := c.gf.mult(storageToIndex(v[j]), idx)
			resultIdx = c.gf.add(multIdx, resultIdx)
			idx = mod(idx+step+c.n, c.n)
		}
		result = append(result, indexToStorage(resultIdx))
	}
	for len(result) > c.k {
		result = result[:len(result)-1]
	}
	return result
}

// shiftLeft maps the syndrome of a single-position error at offset t back to
// offset 0 by left-shifting each row's index by (i+1) units.
func (c *rsCodec) shiftLeft(s []int) []int {
	out := make([]int, c.r)
	for i, v := range s {
		if v == 0 {
			out[i] = 0
			continue
		}
		out[i] = indexToStorage(mod(storageToIndex(v)-(i+1), c.n))
	}
	return out
}

// shiftRight is the inverse of shiftLeft.
func (c *rsCodec) shiftRight(s []int) []int {
	out := make([]int, c.r)
	for i, v := range s {
		if v == 0 {
			out[i] = 0
			continue
		}
		out[i] = indexToStorage(mod(storageToIndex(v)+(i+1), c.n))
	}
	return out
}

func syndromeKey(s []int) string {
	var b strings.Builder
	for _, v := range s {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}
	return b.String()
}

// build1ErrorLUT enumerates every (position, error field-index) pair and
// records the syndrome it produces: H[i,p0]*alpha^e = alpha^{(i+1)p0+e}.
func (c *rsCodec) build1ErrorLUT() map[string][2]int {
	lut := make(map[string][2]int, c.n*(c.n-1))
	s := make([]int, c.r)
	for p0 := 0; p0 < c.n; p0++ {
		for e := 0; e < c.n; e++ {
			for i := 0; i < c.r; i++ {
				s[i] = indexToStorage(mod((i+1)*p0+e, c.n))
			}
			lut[syndromeKey(s)] = [2]int{p0, e}
		}
	}
	return lut
}

// build2ErrorLUT enumerates the canonical two-error pattern (first error at
// position 0, second at offset delta) and records its syndrome:
// alpha^e1 + alpha^{(i+1)*delta+e2} in GF arithmetic (real field addition,
// not index addition).
func (c *rsCodec) build2ErrorLUT() map[string][3]int {
	lut := make(map[string][3]int, (c.n-1)*c.n*c.n)
	s := make([]int, c.r)
	for delta := 1; delta < c.n; delta++ {
		for e1 := 0; e1 < c.n; e1++ {
			for e2 := 0; e2 < c.n; e2++ {
				for i := 0; i < c.r; i++ {
					idx2 := mod((i+1)*delta+e2, c.n)
					s[i] = indexToStorage(c.gf.add(e1, idx2))
				}
				lut[syndromeKey(s)] = [3]int{delta, e1, e2}
			}
		}
	}
	return lut
}

// correct1 attempts single-symbol error correction via the precomputed LUT.
// On a hit it returns the corrected codeword; it never mutates v.
func (c *rsCodec) correct1(v, syn []int) ([]int, bool) {
	hit, ok := c.lut1[syndromeKey(syn)]
	if !ok {
		return nil, false
	}
	p0, e := hit[0], hit[1]
	out := append([]int(nil), v...)
	out[p0] = indexToStorage(c.gf.sub(storageToIndex(out[p0]), e))
	return out, true
}

// correct2 searches the 2-error LUT by cyclically left-shifting the observed
// syndrome, per spec 4.C: try up to N_inner-1 shift amounts (k = 0..N_inner-2)
// before giving up.
func (c *rsCodec) correct2(v, syn []int) ([]int, bool) {
	cur := syn
	for k := 0; k <= c.n-2; k++ {
		if hit, ok := c.lut2[syndromeKey(cur)]; ok {
			delta, e1, e2 := hit[0], hit[1], hit[2]
			p1 := k
			p2 := mod(k+delta, c.n)
			out := append([]int(nil), v...)
			out[p1] = indexToStorage(c.gf.sub(storageToIndex(out[p1]), e1))
			out[p2] = indexToStorage(c.gf.sub(storageToIndex(out[p2]), e2))
			return out, true
		}
		cur = c.shiftLeft(cur)
	}
	return nil, false
}

// correctRow runs the full inner decode pipeline for one RS row: zero
// syndrome passes through, else try 1-error then 2-error correction, else
// report errUncorrectable so the caller can erase the outer symbol.
// errorsFound distinguishes the three non-erasure outcomes (0, 1 or 2) for
// the caller's metrics.
func (c *rsCodec) correctRow(v []int) (corrected []int, errorsFound int, err error) {
	syn := c.syndrome(v)
	if syndromeIsZero(syn) {
		return v, 0, nil
	}
	if out, ok := c.correct1(v, syn); ok {
		return out, 1, nil
	}
	if out, ok := c.correct2(v, syn); ok {
		return out, 2, nil
	}
	return nil, 0, errUncorrectable
}
