package fec

// swap records a column transposition applied while systematising a
// parity-check matrix, in the order the transcript must be replayed.
type swap struct {
	a, b int
}

// binMatrix is a dense R x N binary matrix over GF(2), stored as one []byte
// row per check equation (0/1 entries).
type binMatrix [][]byte

func (m binMatrix) rows() int { return len(m) }
func (m binMatrix) cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func (m binMatrix) clone() binMatrix {
	out := make(binMatrix, len(m))
	for i, row := range m {
		out[i] = append([]byte(nil), row...)
	}
	return out
}

func (m binMatrix) xorRowInto(dst, src int) {
	for k := range m[dst] {
		m[dst][k] ^= m[src][k]
	}
}

func (m binMatrix) swapColumns(a, b int) {
	if a == b {
		return
	}
	for i := range m {
		m[i][a], m[i][b] = m[i][b], m[i][a]
	}
}

// targetColumn resolves the pivot column for row i: either the caller's
// requested column set, or the default rightmost-R-columns layout.
func targetColumn(i, r, n int, columns []int) int {
	if len(columns) < r {
		return n - r + i
	}
	return columns[i]
}

// formLeadBySum ensures H[i][column] == 1 by XOR-ing in some row j < i that
// already has a 1 there. Returns false if no such row exists.
func formLeadBySum(i int, h binMatrix, column int) bool {
	if h[i][column] != 0 {
		return true
	}
	for j := i - 1; j >= 0; j-- {
		if h[j][column] != 0 {
			h.xorRowInto(i, j)
			return true
		}
	}
	return false
}

// formLeadBySwap ensures H[i][column] == 1 by swapping column with some
// other column (not in the reserved set) that has a 1 in row i. Returns
// false if no such column exists.
func formLeadBySwap(i int, h binMatrix, column int, reserved []int, swaps *[]swap) bool {
	if h[i][column] != 0 {
		return true
	}
	n := h.cols()
	isReserved := func(j int) bool {
		for _, c := range reserved {
			if c == j {
				return true
			}
		}
		return false
	}
	for j := 0; j < n; j++ {
		if isReserved(j) {
			continue
		}
		if h[i][j] != 0 {
			h.swapColumns(column, j)
			*swaps = append(*swaps, swap{column, j})
			return true
		}
	}
	return false
}

// makeSystematic transforms h into systematic form on the requested column
// set (default: the rightmost R columns), recording every column swap
// applied. ok is false if the matrix is rank-deficient on that column set.
func makeSystematic(h binMatrix, columns []int) (result binMatrix, swaps []swap, ok bool) {
	r := h.rows()
	n := h.cols()
	result = h.clone()
	ok = true

	pivot := func(i int) int { return targetColumn(i, r, n, columns) }

	reserved := columns
	if len(reserved) < r {
		reserved = make([]int, r)
		for i := 0; i < r; i++ {
			reserved[i] = n - r + i
		}
	}

	// Upper triangle: i = R-1 .. 0.
	for i := r - 1; i >= 0; i-- {
		col := pivot(i)
		hasLead := formLeadBySum(i, result, col)
		if !hasLead {
			hasLead = formLeadBySwap(i, result, col, reserved, &swaps)
		}
		ok = ok && hasLead
		for j := i - 1; j >= 0; j-- {
			if result[j][col] == 0 {
				continue
			}
			result.xorRowInto(j, i)
		}
	}
	// Lower triangle: i = 0 .. R-1.
	for i := 0; i < r; i++ {
		col := pivot(i)
		for j := i + 1; j < r; j++ {
			if result[j][col] == 0 {
				continue
			}
			result.xorRowInto(j, i)
		}
	}
	return result, swaps, ok
}
