package fec

import "errors"

// Construction-time errors (fatal at BuildCodec; the codec is never created).
var (
	// ErrPolynomialNotPrimitive is returned when the configured generator
	// polynomial's LFSR orbit does not enumerate the full field order.
	ErrPolynomialNotPrimitive = errors.New("fec: generator polynomial is not primitive over GF(p)")

	// ErrParityMatrixRankDeficient is returned when the outer parity-check
	// matrix cannot be brought to systematic form on the requested columns.
	ErrParityMatrixRankDeficient = errors.New("fec: outer parity-check matrix is rank-deficient on the requested columns")

	// ErrBadShape is returned when the requested dimensions are inconsistent:
	// an outer H whose row count differs from R_outer or whose N_outer does
	// not exceed R_outer, or a vector-symbol width M that differs from K_inner.
	ErrBadShape = errors.New("fec: codec dimensions are inconsistent")
)

// Per-frame errors (reported in the decode result; the codec state is
// unaffected and remains usable for subsequent frames).
var (
	// ErrTooManyErasures is returned when a frame's erasure count exceeds
	// R_outer, making recovery structurally impossible.
	ErrTooManyErasures = errors.New("fec: too many erasures for outer code to recover")

	// ErrUnrecoverableErasurePattern is returned when the simplifier cannot
	// isolate a pivot for every erased position in either scan direction,
	// and the Gaussian-elimination fallback also fails.
	ErrUnrecoverableErasurePattern = errors.New("fec: erasure pattern could not be resolved by either simplifier strategy")

	// errUncorrectable is returned by the inner RS decoder when a row's
	// syndrome matches neither the 1- nor 2-error LUT; the caller erases the
	// corresponding outer symbol instead of failing the whole frame.
	errUncorrectable = errors.New("fec: rs row uncorrectable")
)
