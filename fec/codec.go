package fec

import (
	"fmt"
	"math/rand"

	"github.com/nawww83/rsexh/internal/channelsim"
)

// Params configures a Codec: the inner field GF(p^q) via its primitive
// generator polynomial, the inner/outer code rates, the vector-symbol
// width M, and (optionally) a custom outer parity-check matrix.
type Params struct {
	P, Q                int
	GeneratorPolynomial []int
	RInner              int
	ROuter              int
	M                    int // must equal K_inner = N_inner - R_inner

	// OuterH, if non-nil, replaces the default extended-Hamming
	// construction (e.g. for a Golay code). OuterDistance must be given
	// alongside it.
	OuterH        [][]byte
	OuterDistance int
}

// Stats reports the outcome of one Decode call.
type Stats struct {
	ErasedRows      int
	StrategyFlipped bool
}

// Codec is a built codec handle: one field table, one RS codec with its
// 1-/2-error LUTs, and one outer code, all read-only after construction.
type Codec struct {
	table *gfTable
	field gf
	rs    *rsCodec
	outer *outerCode
	rec   *Recorder
}

// BuildCodec constructs a Codec from params, failing if the generator
// polynomial is not primitive or the outer parity-check matrix cannot be
// made systematic on its default (or requested) columns.
func BuildCodec(params Params) (*Codec, error) {
	table := buildGFTable(params.P, params.Q, params.GeneratorPolynomial)
	if !table.isGood {
		return nil, ErrPolynomialNotPrimitive
	}
	field := newGF(table)
	rs := newRSCodec(field, params.RInner)
	if params.M != rs.k {
		return nil, fmt.Errorf("%w: M=%d must equal K_inner=N_inner-R_inner=%d", ErrBadShape, params.M, rs.k)
	}

	var h binMatrix
	if params.OuterH != nil {
		h = binMatrix(params.OuterH)
	}
	distance := params.OuterDistance
	if distance == 0 {
		distance = 4 // extended Hamming's minimum distance
	}
	outer, err := newOuterCode(h, params.ROuter, distance, params.M)
	if err != nil {
		return nil, err
	}

	return &Codec{table: table, field: field, rs: rs, outer: outer}, nil
}

// FrameSize returns K_outer*M, the exact length Encode expects for frame.
func (c *Codec) FrameSize() int {
	return c.outer.k * c.outer.m
}

// ChannelShape returns N_outer and N_inner, the dimensions of the matrix
// Encode produces and Decode expects.
func (c *Codec) ChannelShape() (nOuter, nInner int) {
	return c.outer.n, c.rs.n
}

// AttachMetrics wires a Recorder into the codec so subsequent Encode/Decode
// calls report counters and histograms through it. Passing nil detaches
// metrics recording.
func (c *Codec) AttachMetrics(rec *Recorder) {
	c.rec = rec
}

// SwitchSystematic toggles whether the outer code's on-wire boundary is the
// systematic (H_sys) or original (H) parity-check matrix.
func (c *Codec) SwitchSystematic(isSystematic bool) {
	c.outer.switchMode(isSystematic)
}

// SimulateChannel runs sim over channel exactly once, standing in for the
// transmission link between Encode and Decode (§4.H). It exists so callers
// (and tests) drive the concatenation layer's one-call-per-frame contract
// with a real ChannelSimulator rather than invoking Perturb directly.
func (c *Codec) SimulateChannel(rng *rand.Rand, channel [][]int, sim channelsim.ChannelSimulator) channelsim.ChannelStats {
	_, nInner := c.ChannelShape()
	return sim.Perturb(rng, channel, nInner)
}

// Encode splits frame into K_outer vector symbols of M inner scalars each,
// outer-encodes to N_outer vector symbols, then RS-encodes each one's M
// scalars into an N_inner-long channel row. frame must have exactly
// K_outer*M entries in storage convention.
func (c *Codec) Encode(frame []int) ([][]int, error) {
	k := c.outer.k
	m := c.outer.m
	if len(frame) != k*m {
		return nil, fmt.Errorf("fec: encode expects %d scalars (K_outer=%d * M=%d), got %d", k*m, k, m, len(frame))
	}

	info := make([]vectorSymbol, k)
	for i := 0; i < k; i++ {
		info[i] = normalSymbol(append([]int(nil), frame[i*m:(i+1)*m]...))
	}

	outerWord, err := c.outer.encode(info)
	if err != nil {
		return nil, err
	}

	channel := make([][]int, len(outerWord))
	for i, sym := range outerWord {
		channel[i] = c.rs.encode(sym.data)
	}
	if c.rec != nil {
		c.rec.observeEncode(len(channel))
	}
	return channel, nil
}

// Decode runs the inner RS decoder per channel row (§4.H decode path),
// marking rows the RS layer cannot correct as Erased, then outer-decodes
// the resulting N_outer-long vector in erasure mode and returns the first
// K_outer*M scalars. On an unrecoverable pattern it returns a nil frame
// alongside the stats describing the failure.
func (c *Codec) Decode(channel [][]int) ([]int, Stats, error) {
	n := c.outer.n
	if len(channel) != n {
		return nil, Stats{}, fmt.Errorf("fec: decode expects %d channel rows (N_outer), got %d", n, len(channel))
	}

	received := make([]vectorSymbol, n)
	for i, row := range channel {
		corrected, errorsFound, err := c.rs.correctRow(row)
		if err != nil {
			received[i] = vectorSymbol{status: StatusErased, data: make([]int, c.outer.m)}
			continue
		}
		data := c.rs.decode(corrected)
		received[i] = normalSymbol(data)
		if c.rec != nil {
			c.rec.observeRsRow(errorsFound)
		}
	}

	info, res, err := c.outer.decode(received)
	stats := Stats{ErasedRows: res.erasedCount, StrategyFlipped: res.strategyFlipped}
	if c.rec != nil {
		c.rec.observeDecode(stats, err)
	}
	if err != nil {
		return nil, stats, err
	}

	frame := make([]int, 0, len(info)*c.outer.m)
	for _, sym := range info {
		frame = append(frame, sym.data...)
	}
	return frame, stats, nil
}
