package fec

// decodeErasures recovers the Erased positions of v (length N_outer =
// h.cols()) in place, against the systematic parity-check matrix h, and
// reports how many positions were erased and whether the reversed scan
// strategy had to be used. It leaves Normal positions untouched.
func decodeErasures(h binMatrix, v []vectorSymbol, rOuter int) (decodeResult, error) {
	ids := erasedIndices(v)
	res := decodeResult{erasedCount: len(ids)}
	if len(ids) == 0 {
		return res, nil
	}
	if len(ids) > rOuter {
		return res, ErrTooManyErasures
	}

	s, f := buildErasureSystem(h, v, ids)
	if resolve(s, f, ids, v, upDown) {
		return res, nil
	}

	s, f = buildErasureSystem(h, v, ids)
	res.strategyFlipped = true
	if resolve(s, f, ids, v, downUp) {
		return res, nil
	}

	// Neither scan direction isolated a full set of singleton pivot rows;
	// fall back to full Gaussian elimination with back-substitution, which
	// is functionally equivalent but does not depend on a simplifier pass
	// finding weight-1 rows.
	s, f = buildErasureSystem(h, v, ids)
	if gaussianSolve(s, f, ids, v) {
		return res, nil
	}

	return res, ErrUnrecoverableErasurePattern
}

// gaussianSolve solves S*x = f for the erased positions by full Gaussian
// elimination with partial pivoting followed by back-substitution. It
// reports false if S is singular on this erasure pattern.
func gaussianSolve(s binMatrix, f []vectorSymbol, ids []int, v []vectorSymbol) bool {
	r := s.rows()
	c := len(ids)
	if r < c {
		return false
	}

	row := 0
	pivotCol := make([]int, c)
	for k := range pivotCol {
		pivotCol[k] = -1
	}
	for col := 0; col < c && row < r; col++ {
		sel := -1
		for i := row; i < r; i++ {
			if s[i][col] != 0 {
				sel = i
				break
			}
		}
		if sel < 0 {
			continue
		}
		s[row], s[sel] = s[sel], s[row]
		f[row], f[sel] = f[sel], f[row]
		for i := 0; i < r; i++ {
			if i == row || s[i][col] == 0 {
				continue
			}
			s.xorRowInto(i, row)
			f[i] = f[i].add(f[row])
		}
		pivotCol[col] = row
		row++
	}

	for k, id := range ids {
		pr := pivotCol[k]
		if pr < 0 {
			return false
		}
		v[id] = f[pr]
		v[id].status = StatusNormal
	}
	return true
}

// erasedIndices returns the positions of v whose status is Erased.
func erasedIndices(v []vectorSymbol) []int {
	ids := make([]int, 0)
	for j, sym := range v {
		if sym.status == StatusErased {
			ids = append(ids, j)
		}
	}
	return ids
}

// buildErasureSystem assembles the free-term column and erasure submatrix
// for the given erased positions: f accumulates H_sys * v restricted to the
// known (Normal) positions, and S is H_sys restricted to the erased columns.
// Since the true codeword satisfies H_sys * codeword = 0, f equals
// H_sys applied to the (unknown) erased contribution alone.
func buildErasureSystem(h binMatrix, v []vectorSymbol, ids []int) (binMatrix, []vectorSymbol) {
	r := h.rows()
	f := make([]vectorSymbol, r)
	for i := range f {
		f[i] = vectorSymbol{status: StatusErased}
	}
	erased := make(map[int]bool, len(ids))
	for _, id := range ids {
		erased[id] = true
	}
	for j, sym := range v {
		if erased[j] || sym.status != StatusNormal {
			continue
		}
		for i := 0; i < r; i++ {
			if h[i][j] == 0 {
				continue
			}
			f[i] = f[i].add(sym)
		}
	}

	s := make(binMatrix, r)
	for i := 0; i < r; i++ {
		row := make([]byte, len(ids))
		for k, id := range ids {
			row[k] = h[i][id]
		}
		s[i] = row
	}
	return s, f
}

// resolve runs the simplifier on (s, f) in dir, then selects good rows
// (weight-1 rows of s) and checks their pivot columns cover every erased
// position; where several rows isolate the same column, the lowest-indexed
// one is used and the rest are skipped. On full coverage, it writes the recovered values
// into v and reports success.
func resolve(s binMatrix, f []vectorSymbol, ids []int, v []vectorSymbol, dir direction) bool {
	simplify(s, f, dir)

	pivotOf := make([]int, len(ids))
	for k := range pivotOf {
		pivotOf[k] = -1
	}
	covered := make([]bool, len(ids))

	for i := 0; i < s.rows(); i++ {
		k := singletonColumn(s[i])
		if k < 0 {
			continue
		}
		if covered[k] {
			continue // duplicate-pivot row: skip per the tie-break rule
		}
		if pivotOf[k] != -1 {
			continue
		}
		pivotOf[k] = i
		covered[k] = true
	}

	for k := range ids {
		if !covered[k] {
			return false
		}
	}

	for k, id := range ids {
		v[id] = f[pivotOf[k]]
		v[id].status = StatusNormal
	}
	return true
}

// singletonColumn returns the index of the sole nonzero entry of row, or -1
// if row's weight is not exactly 1.
func singletonColumn(row []byte) int {
	found := -1
	for j, b := range row {
		if b == 0 {
			continue
		}
		if found != -1 {
			return -1
		}
		found = j
	}
	return found
}
