package fec

// direction is a simplifier scan order.
type direction int

const (
	upDown direction = iota
	downUp
)

// simplify reduces the weight of each row of the erasure submatrix s, XOR-ing
// in whichever other row (scanned in dir order) lowers the row's weight,
// mirroring free (the free-term column) in lock-step so the linear system
// Sx = free stays consistent. It repeats up-down then down-up rounds (or the
// reverse, chosen by the caller) until neither pass changes anything.
func simplify(s binMatrix, free []vectorSymbol, dir direction) {
	other := downUp
	if dir == downUp {
		other = upDown
	}
	for {
		changed := simplifyPass(s, free, dir)
		changed = simplifyPass(s, free, other) || changed
		if !changed {
			return
		}
	}
}

// simplifyPass runs a single up-down or down-up scan, returning whether it
// changed anything.
func simplifyPass(s binMatrix, free []vectorSymbol, dir direction) bool {
	r := s.rows()
	changed := false
	for i := 0; i < r; i++ {
		partners := partnerOrder(i, r, dir)
		for _, j := range partners {
			candidate, weightCandidate := xorRowWeight(s[i], s[j])
			if weightCandidate < weight(s[i]) {
				copy(s[i], candidate)
				free[i] = free[i].add(free[j])
				changed = true
			}
		}
	}
	return changed
}

func partnerOrder(i, r int, dir direction) []int {
	out := make([]int, 0, r-1)
	if dir == upDown {
		for j := 0; j < r; j++ {
			if j != i {
				out = append(out, j)
			}
		}
	} else {
		for j := r - 1; j >= 0; j-- {
			if j != i {
				out = append(out, j)
			}
		}
	}
	return out
}

func weight(row []byte) int {
	w := 0
	for _, v := range row {
		if v != 0 {
			w++
		}
	}
	return w
}

func xorRowWeight(a, b []byte) ([]byte, int) {
	out := make([]byte, len(a))
	w := 0
	for k := range a {
		out[k] = a[k] ^ b[k]
		if out[k] != 0 {
			w++
		}
	}
	return out, w
}
