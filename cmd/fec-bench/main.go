// Command fec-bench compares the concatenated RS+outer codec against
// systematic RaptorQ on a synthetic byte stream, reporting throughput and
// recovery rate under independent packet loss.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	mrand "math/rand"
	"os"
	"time"

	rqq "github.com/xssnick/raptorq"

	"github.com/nawww83/rsexh/fec"
	"github.com/nawww83/rsexh/internal/channelsim"
)

func main() {
	var (
		rInner  = flag.Int("r-inner", 5, "R_inner")
		rOuter  = flag.Int("r-outer", 6, "R_outer")
		rqGroup = flag.Int("rq-group", 4, "scalars per RaptorQ source symbol, for sizing its comparison run")
		l       = flag.Int("l", 256, "RaptorQ symbol size in bytes")
		lossP   = flag.Float64("loss", 0.02, "per-row/per-symbol independent loss probability")
		trials  = flag.Int("trials", 500, "trials per scheme")
		seed    = flag.Int64("seed", 7, "PRNG seed")
	)
	flag.Parse()

	rng := mrand.New(mrand.NewSource(*seed))

	// GF(2^4) fixes N_inner=15, so M (vector-symbol width) is derived from
	// R_inner rather than chosen independently: M = K_inner = N_inner - R_inner.
	codec, err := fec.BuildCodec(fec.Params{
		P: 2, Q: 4, GeneratorPolynomial: []int{1, 0, 0, 1},
		RInner: *rInner, ROuter: *rOuter, M: 15 - *rInner,
	})
	if err != nil {
		fatalf("build codec: %v", err)
	}
	nOuter, nInner := codec.ChannelShape()
	frameSize := codec.FrameSize()

	k := frameSize / *rqGroup // RaptorQ source symbols, sized independently of the core's M
	runCoreTrials(codec, rng, *trials, *lossP, frameSize, nOuter, nInner)
	runRaptorQTrials(rng, *trials, *lossP, k, *l, nOuter)
}

func runCoreTrials(codec *fec.Codec, rng *mrand.Rand, trials int, lossP float64, frameSize, nOuter, nInner int) {
	var ok int
	var encTotal, decTotal time.Duration
	for t := 0; t < trials; t++ {
		frame := make([]int, frameSize)
		for i := range frame {
			frame[i] = rng.Intn(nInner + 1)
		}

		t0 := time.Now()
		channel, err := codec.Encode(frame)
		encTotal += time.Since(t0)
		if err != nil {
			fatalf("core encode: %v", err)
		}

		// A lost packet carries no recoverable data; scramble it rather than
		// zero it out, since an all-zero row is itself a valid RS codeword
		// and would be silently accepted instead of erased.
		codec.SimulateChannel(rng, channel, channelsim.BurstEraser{P: lossP, BurstLen: 1})

		t1 := time.Now()
		got, _, err := codec.Decode(channel)
		decTotal += time.Since(t1)
		if err == nil && equalInts(got, frame) {
			ok++
		}
	}
	fmt.Printf("core:    ok=%d/%d enc=%v dec=%v (N_outer=%d)\n", ok, trials, encTotal, decTotal, nOuter)
}

func runRaptorQTrials(rng *mrand.Rand, trials int, lossP float64, k, l, n int) {
	if n <= k {
		n = k + 4
	}
	var ok int
	var encTotal, decTotal time.Duration
	payload := make([]byte, k*l)
	for t := 0; t < trials; t++ {
		if _, err := rand.Read(payload); err != nil {
			fatalf("rand: %v", err)
		}

		t0 := time.Now()
		pkts, err := raptorQEncodeBlock(payload, n, k, l)
		encTotal += time.Since(t0)
		if err != nil {
			fatalf("raptorq encode: %v", err)
		}

		recv := make([]raptorQPacket, 0, n)
		for _, p := range pkts {
			if rng.Float64() < lossP {
				continue
			}
			recv = append(recv, p)
		}

		t1 := time.Now()
		got, success := raptorQDecodeBytes(recv, n, l, len(payload))
		decTotal += time.Since(t1)
		if success && bytesEqual(got, payload) {
			ok++
		}
	}
	fmt.Printf("raptorq: ok=%d/%d enc=%v dec=%v (N=%d K=%d L=%d)\n", ok, trials, encTotal, decTotal, n, k, l)
}

// raptorQPacket is one systematic-RaptorQ symbol, local to this comparison
// harness.
type raptorQPacket struct {
	index int
	data  []byte
}

// raptorQEncodeBlock runs one systematic-RaptorQ encoding generation over up
// to k*l bytes of payload (truncating any overrun) and emits n symbols
// (source symbols for index < k, repair symbols beyond it).
func raptorQEncodeBlock(payload []byte, n, k, l int) ([]raptorQPacket, error) {
	if n <= 0 || k <= 0 || l <= 0 || k > n {
		return nil, fmt.Errorf("raptorq block needs 0 < k <= n and l > 0, got n=%d k=%d l=%d", n, k, l)
	}
	if max := k * l; len(payload) > max {
		payload = payload[:max]
	}
	enc, err := rqq.NewRaptorQ(uint32(l)).CreateEncoder(payload)
	if err != nil {
		return nil, fmt.Errorf("raptorq create encoder: %w", err)
	}
	out := make([]raptorQPacket, n)
	for i := 0; i < n; i++ {
		out[i] = raptorQPacket{index: i, data: enc.GenSymbol(uint32(i))}
	}
	return out, nil
}

// raptorQDecodeBytes reconstructs a dataSize-byte payload from whatever
// symbols survived loss, ignoring indices outside [0,n).
func raptorQDecodeBytes(recv []raptorQPacket, n, l, dataSize int) ([]byte, bool) {
	if l <= 0 || dataSize < 0 {
		return nil, false
	}
	dec, err := rqq.NewRaptorQ(uint32(l)).CreateDecoder(uint32(dataSize))
	if err != nil {
		return nil, false
	}
	for _, p := range recv {
		if p.index < 0 || p.index >= n {
			continue
		}
		_, _ = dec.AddSymbol(uint32(p.index), p.data)
	}
	ok, data, err := dec.Decode()
	if err != nil || !ok {
		return nil, false
	}
	return data, true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}
