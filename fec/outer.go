package fec

import "fmt"

// outerCode is the extended binary linear block code layer: it holds the
// original (possibly non-systematic) parity-check matrix H, its systematic
// form H_sys, the column-swap transcript between them, and the boundary
// flag selecting which of the two is used for on-wire symbol order.
type outerCode struct {
	r int // R_outer, number of parity vector symbols
	n int // N_outer = K_outer + R_outer
	k int // K_outer
	d int // code distance
	m int // inner scalars packed per vector symbol

	h       binMatrix
	hSys    binMatrix
	swaps   []swap
	systematic bool // boundary flag: true => wire order matches H_sys, false => matches H
}

// buildDefaultHammingH constructs the non-systematic parity-check matrix of
// an extended Hamming code with r check symbols: N = 2^(r-1), row 0 is all
// ones, and row i (i>=1) flags column j when bit (r-1-i) of (j+1) is set —
// the standard binary counting construction.
func buildDefaultHammingH(r int) binMatrix {
	n := 1 << (r - 1)
	h := make(binMatrix, r)
	h[0] = make([]byte, n)
	for j := range h[0] {
		h[0][j] = 1
	}
	deg := n / 2
	for i := 1; i < r; i++ {
		row := make([]byte, n)
		for j := 0; j < n; j++ {
			if ((j+1)/deg)%2 == 1 {
				row[j] = 1
			}
		}
		h[i] = row
		deg /= 2
	}
	return h
}

// newOuterCode builds the outer code from an explicit parity-check matrix
// (used for the Golay family and any other custom H) or, if h is nil, from
// the default extended-Hamming construction for the given r.
func newOuterCode(h binMatrix, r, d, m int) (*outerCode, error) {
	if h == nil {
		h = buildDefaultHammingH(r)
	}
	if h.rows() != r {
		return nil, fmt.Errorf("%w: got %d rows, want R_outer=%d", ErrBadShape, h.rows(), r)
	}
	n := h.cols()
	k := n - r
	if k <= 0 {
		return nil, fmt.Errorf("%w: N_outer=%d must exceed R_outer=%d", ErrBadShape, n, r)
	}

	hSys, swaps, ok := makeSystematic(h, nil)
	if !ok {
		return nil, ErrParityMatrixRankDeficient
	}

	return &outerCode{
		r: r, n: n, k: k, d: d, m: m,
		h: h, hSys: hSys, swaps: swaps,
		systematic: true,
	}, nil
}

// switchMode toggles whether the on-wire boundary uses H (non-systematic) or
// H_sys (systematic).
func (o *outerCode) switchMode(isSystematic bool) {
	o.systematic = isSystematic
}

// applySwaps permutes vector-symbol positions per the swap transcript.
// Forward replays the transcript in recording order, converting an H-ordered
// vector into H_sys order (the direction the transcript was built in).
// Reverse replays it backwards, converting H_sys order into H order.
func applySwaps(v []vectorSymbol, swaps []swap, reverse bool) {
	if !reverse {
		for _, s := range swaps {
			v[s.a], v[s.b] = v[s.b], v[s.a]
		}
		return
	}
	for i := len(swaps) - 1; i >= 0; i-- {
		s := swaps[i]
		v[s.a], v[s.b] = v[s.b], v[s.a]
	}
}

// boundaryMatrix returns whichever of H/H_sys is currently selected as the
// on-wire shape.
func (o *outerCode) boundaryMatrix() binMatrix {
	if o.systematic {
		return o.hSys
	}
	return o.h
}

// encode produces the N_outer-length parity-checked vector from a K_outer
// information vector, all of whose entries must be Normal.
func (o *outerCode) encode(a []vectorSymbol) ([]vectorSymbol, error) {
	if len(a) != o.k {
		return nil, fmt.Errorf("fec: outer encode expects %d information symbols, got %d", o.k, len(a))
	}
	out := make([]vectorSymbol, o.n)
	copy(out, a)
	for i := 0; i < o.r; i++ {
		p := vectorSymbol{status: StatusErased}
		for kk := 0; kk < o.k; kk++ {
			if o.hSys[i][kk] == 0 {
				continue
			}
			p = p.add(a[kk])
		}
		out[o.k+i] = p
	}
	if !o.systematic {
		applySwaps(out, o.swaps, true)
	}
	return out, nil
}

// syndrome computes H*v (or H_sys*v in systematic mode) over the current
// boundary matrix.
func (o *outerCode) syndrome(v []vectorSymbol) []vectorSymbol {
	h := o.boundaryMatrix()
	out := make([]vectorSymbol, o.r)
	for i := 0; i < o.r; i++ {
		s := vectorSymbol{status: StatusErased}
		for j := 0; j < o.n; j++ {
			if h[i][j] == 0 {
				continue
			}
			s = s.add(v[j])
		}
		out[i] = s
	}
	return out
}

// decodeResult reports the outcome of an outer erasure decode.
type decodeResult struct {
	erasedCount    int
	strategyFlipped bool
}

// decode recovers erased positions in v (in place) via the erasure decoder
// (§4.F) and returns the first K_outer entries — the information symbols.
// v is expected in whatever order the current boundary selects; if
// non-systematic, it is first permuted into H_sys order, since "information
// position" is only meaningful relative to the systematic layout. The
// result is the logical frame, not an on-wire-shaped vector, so no reverse
// permutation is applied to the output.
func (o *outerCode) decode(v []vectorSymbol) ([]vectorSymbol, decodeResult, error) {
	if !o.systematic {
		applySwaps(v, o.swaps, false)
	}
	res, err := decodeErasures(o.hSys, v, o.r)
	if err != nil {
		return nil, res, err
	}
	return v[:o.k], res, nil
}
