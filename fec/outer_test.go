package fec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOuterCode(t *testing.T) *outerCode {
	t.Helper()
	oc, err := newOuterCode(nil, 6, 4, 1) // default extended Hamming, N=32 K=26
	require.NoError(t, err)
	return oc
}

func TestOuterEncodeDecodeRoundTripNoErasures(t *testing.T) {
	oc := newTestOuterCode(t)
	info := make([]vectorSymbol, oc.k)
	for i := range info {
		info[i] = normalSymbol([]int{i % 7})
	}

	codeword, err := oc.encode(info)
	require.NoError(t, err)

	decoded, res, err := oc.decode(codeword)
	require.NoError(t, err)
	assert.Equal(t, 0, res.erasedCount)
	for i := range info {
		assert.Equal(t, info[i].data, decoded[i].data)
	}
}

func TestOuterSyndromeIsZeroForValidCodeword(t *testing.T) {
	oc := newTestOuterCode(t)
	info := make([]vectorSymbol, oc.k)
	for i := range info {
		info[i] = normalSymbol([]int{i % 3})
	}
	codeword, err := oc.encode(info)
	require.NoError(t, err)

	syn := oc.syndrome(codeword)
	for _, s := range syn {
		require.Equal(t, StatusNormal, s.status)
		for _, scalar := range s.data {
			assert.Equal(t, 0, scalar, "a valid codeword's syndrome must be the all-zero vector symbol")
		}
	}
}

func TestOuterDecodeRecoversErasures(t *testing.T) {
	oc := newTestOuterCode(t)
	info := make([]vectorSymbol, oc.k)
	for i := range info {
		info[i] = normalSymbol([]int{(i * 3) % 11})
	}
	codeword, err := oc.encode(info)
	require.NoError(t, err)

	erasedAt := []int{1, 4, 9}
	for _, idx := range erasedAt {
		codeword[idx] = vectorSymbol{status: StatusErased}
	}

	decoded, res, err := oc.decode(codeword)
	require.NoError(t, err)
	assert.Equal(t, len(erasedAt), res.erasedCount)
	for i := range info {
		assert.Equal(t, info[i].data, decoded[i].data)
	}
}

// buildTestGolayH constructs the 11x23 parity-check matrix of the perfect
// binary Golay(23,12,7) code: row i is the coefficient pattern of h*(x) (the
// reciprocal of (x^23+1)/g(x)) cyclically shifted by i, where g(x) is the
// generator polynomial 0xC75 = x^11+x^10+x^6+x^5+x^4+x^2+1 — the same
// constant _examples' dbehnke-ysf2dmr/internal/correction/golay.go uses for
// the related (24,12,8) extended code.
func buildTestGolayH() binMatrix {
	row0 := []int{0, 1, 2, 3, 4, 7, 10, 12}
	h := make(binMatrix, 11)
	for i := 0; i < 11; i++ {
		row := make([]byte, 23)
		for _, c := range row0 {
			row[(c+i)%23] = 1
		}
		h[i] = row
	}
	return h
}

func TestOuterGolayDecodeRecoversNamedErasurePattern(t *testing.T) {
	h := buildTestGolayH()
	oc, err := newOuterCode(h, 11, 7, 1)
	require.NoError(t, err)
	require.Equal(t, 12, oc.k)

	info := make([]vectorSymbol, oc.k)
	for i := range info {
		info[i] = normalSymbol([]int{(i * 5) % 13})
	}
	codeword, err := oc.encode(info)
	require.NoError(t, err)

	erasedAt := []int{1, 3, 7, 19}
	for _, idx := range erasedAt {
		codeword[idx] = vectorSymbol{status: StatusErased}
	}

	decoded, res, err := oc.decode(codeword)
	require.NoError(t, err)
	assert.Equal(t, len(erasedAt), res.erasedCount)
	for i := range info {
		assert.Equal(t, info[i].data, decoded[i].data)
	}
}

func TestOuterEncodeAppliesSwapsWhenNonSystematic(t *testing.T) {
	oc := newTestOuterCode(t)
	oc.switchMode(false)

	info := make([]vectorSymbol, oc.k)
	for i := range info {
		info[i] = normalSymbol([]int{i % 5})
	}
	codeword, err := oc.encode(info)
	require.NoError(t, err)

	decoded, res, err := oc.decode(codeword)
	require.NoError(t, err)
	assert.Equal(t, 0, res.erasedCount)
	for i := range info {
		assert.Equal(t, info[i].data, decoded[i].data)
	}
}
