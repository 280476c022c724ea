// Command fec-eval sweeps a list of outer-code / inner-check-length / erasure
// configurations, runs N trials each through encode -> channel simulator ->
// decode, and emits a gojay-encoded JSON report.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/francoispqt/gojay"

	"github.com/nawww83/rsexh/fec"
	"github.com/nawww83/rsexh/internal/channelsim"
)

type sweepPoint struct {
	RInner  int
	ROuter  int
	Erasure float64
}

type trialAgg struct {
	Point      sweepPoint
	Runs       int
	Successes int
	Flipped    int
	EncTotal   time.Duration
	DecTotal   time.Duration
}

// MarshalJSONObject implements gojay.MarshalerJSONObject.
func (a *trialAgg) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("r_inner", a.Point.RInner)
	enc.IntKey("r_outer", a.Point.ROuter)
	enc.Float64Key("erasure_p", a.Point.Erasure)
	enc.IntKey("runs", a.Runs)
	enc.IntKey("successes", a.Successes)
	enc.IntKey("strategy_flips", a.Flipped)
	enc.Int64Key("enc_ms_total", a.EncTotal.Milliseconds())
	enc.Int64Key("dec_ms_total", a.DecTotal.Milliseconds())
}

// IsNil implements gojay.MarshalerJSONObject.
func (a *trialAgg) IsNil() bool { return a == nil }

type report struct {
	Points []*trialAgg
}

// MarshalJSONArray implements gojay.MarshalerJSONArray.
func (r *report) MarshalJSONArray(enc *gojay.Encoder) {
	for _, p := range r.Points {
		enc.Object(p)
	}
}

// IsNil implements gojay.MarshalerJSONArray.
func (r *report) IsNil() bool { return r == nil || len(r.Points) == 0 }

func main() {
	var (
		rInners = flag.String("r-inner", "5", "comma-separated list of R_inner (inner check-symbol counts)")
		rOuters = flag.String("r-outer", "6", "comma-separated list of R_outer (outer check-symbol counts)")
		erasures = flag.String("erasure-p", "0.01,0.05,0.1", "comma-separated list of per-row erasure burst probabilities")
		runs    = flag.Int("runs", 2000, "trials per sweep point")
		seed    = flag.Int64("seed", 1337, "PRNG seed")
		out     = flag.String("out", "", "output JSON path; default stdout")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	rep := &report{}
	for _, ri := range parseInts(*rInners) {
		for _, ro := range parseInts(*rOuters) {
			for _, ep := range parseFloats(*erasures) {
				agg := runSweepPoint(rng, ri, ro, ep, *runs)
				rep.Points = append(rep.Points, agg)
				fmt.Fprintf(os.Stderr, "R_inner=%d R_outer=%d erasure_p=%.3f ok=%d/%d flips=%d\n",
					ri, ro, ep, agg.Successes, agg.Runs, agg.Flipped)
			}
		}
	}

	b, err := gojay.MarshalJSONArray(rep)
	if err != nil {
		fatalf("marshal report: %v", err)
	}
	if *out == "" {
		os.Stdout.Write(b)
		fmt.Println()
		return
	}
	if err := os.WriteFile(*out, b, 0o644); err != nil {
		fatalf("write %s: %v", *out, err)
	}
}

func runSweepPoint(rng *rand.Rand, rInner, rOuter int, erasureP float64, runs int) *trialAgg {
	// GF(2^4) fixes N_inner=15, so M (vector-symbol width) is derived from
	// R_inner rather than chosen independently: M = K_inner = N_inner - R_inner.
	codec, err := fec.BuildCodec(fec.Params{
		P:                   2,
		Q:                   4,
		GeneratorPolynomial: []int{1, 0, 0, 1},
		RInner:              rInner,
		ROuter:              rOuter,
		M:                   15 - rInner,
	})
	if err != nil {
		fatalf("build codec R_inner=%d R_outer=%d: %v", rInner, rOuter, err)
	}

	_, nInner := codec.ChannelShape()
	eraser := channelsim.BurstEraser{P: erasureP, BurstLen: 1}

	agg := &trialAgg{Point: sweepPoint{RInner: rInner, ROuter: rOuter, Erasure: erasureP}, Runs: runs}
	for run := 0; run < runs; run++ {
		frame := randomFrame(rng, codec, nInner)

		t0 := time.Now()
		channel, err := codec.Encode(frame)
		agg.EncTotal += time.Since(t0)
		if err != nil {
			fatalf("encode: %v", err)
		}

		codec.SimulateChannel(rng, channel, eraser)

		t1 := time.Now()
		_, stats, err := codec.Decode(channel)
		agg.DecTotal += time.Since(t1)
		if stats.StrategyFlipped {
			agg.Flipped++
		}
		if err == nil {
			agg.Successes++
		}
	}
	return agg
}

func randomFrame(rng *rand.Rand, codec *fec.Codec, nInner int) []int {
	frame := make([]int, codec.FrameSize())
	for i := range frame {
		frame[i] = rng.Intn(nInner + 1) // storage convention, [0, N_inner]
	}
	return frame
}

func parseInts(s string) []int {
	var out []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			fatalf("bad int %q: %v", p, err)
		}
		out = append(out, v)
	}
	return out
}

func parseFloats(s string) []float64 {
	var out []float64
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			fatalf("bad float %q: %v", p, err)
		}
		out = append(out, v)
	}
	return out
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}
