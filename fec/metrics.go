package fec

import "github.com/prometheus/client_golang/prometheus"

// Recorder wraps the Prometheus counters and histograms a running codec
// instance can optionally report through. A nil *Recorder is always safe to
// call methods on: every method no-ops when the receiver is nil, so call
// sites never need to check before recording.
type Recorder struct {
	framesEncoded prometheus.Counter
	rowsByErrors  *prometheus.CounterVec
	erasedRows    prometheus.Histogram
	decodeFailures prometheus.Counter
	strategyFlips prometheus.Counter
}

// NewRecorder builds a Recorder and registers its collectors against reg.
// Passing nil for reg registers against prometheus.DefaultRegisterer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		framesEncoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fec",
			Name:      "frames_encoded_total",
			Help:      "Number of frames passed through Codec.Encode.",
		}),
		rowsByErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fec",
			Name:      "rs_rows_total",
			Help:      "Inner RS rows processed, labelled by number of symbol errors corrected.",
		}, []string{"errors"}),
		erasedRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fec",
			Name:      "outer_erased_rows",
			Help:      "Erased outer vector symbols per decoded frame.",
			Buckets:   prometheus.LinearBuckets(0, 1, 16),
		}),
		decodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fec",
			Name:      "decode_failures_total",
			Help:      "Frames the outer decoder could not recover.",
		}),
		strategyFlips: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fec",
			Name:      "decode_strategy_flips_total",
			Help:      "Decodes that required the reversed simplifier scan direction.",
		}),
	}
	reg.MustRegister(r.framesEncoded, r.rowsByErrors, r.erasedRows, r.decodeFailures, r.strategyFlips)
	return r
}

func (r *Recorder) observeEncode(numRows int) {
	if r == nil {
		return
	}
	r.framesEncoded.Inc()
}

func (r *Recorder) observeRsRow(errorsFound int) {
	if r == nil {
		return
	}
	label := "0"
	switch errorsFound {
	case 1:
		label = "1"
	case 2:
		label = "2"
	}
	r.rowsByErrors.WithLabelValues(label).Inc()
}

func (r *Recorder) observeDecode(stats Stats, err error) {
	if r == nil {
		return
	}
	r.erasedRows.Observe(float64(stats.ErasedRows))
	if stats.StrategyFlipped {
		r.strategyFlips.Inc()
	}
	if err != nil {
		r.decodeFailures.Inc()
	}
}
