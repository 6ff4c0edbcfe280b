package metrics

import (
	"github.com/atiedebee/huff/internal/huffman"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	opCompress   = "compress"
	opDecompress = "decompress"
)

// Observer counts codec work in a private prometheus registry.
type Observer struct {
	registry *prometheus.Registry

	BytesIn    *prometheus.CounterVec
	BytesOut   *prometheus.CounterVec
	Operations *prometheus.CounterVec
	TreeBits   prometheus.Histogram
	Symbols    prometheus.Gauge
}

// New registers the collectors with names starting with prefix.
func New(prefix string) *Observer {
	o := &Observer{
		registry: prometheus.NewRegistry(),
		BytesIn: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "bytes_in_total",
				Help: "Total number of bytes read by the codec",
			},
			[]string{"op"},
		),
		BytesOut: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "bytes_out_total",
				Help: "Total number of bytes produced by the codec",
			},
			[]string{"op"},
		),
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "operations_total",
				Help: "Total number of successful codec calls",
			},
			[]string{"op"},
		),
		TreeBits: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    prefix + "tree_bits",
				Help:    "Length in bits of serialized code trees",
				Buckets: prometheus.ExponentialBuckets(9, 2, 9),
			},
		),
		Symbols: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + "distinct_symbols",
				Help: "Distinct symbols in the last coded input",
			},
		),
	}
	o.registry.MustRegister(o.BytesIn, o.BytesOut, o.Operations, o.TreeBits, o.Symbols)
	return o
}

// Registry returns the registry holding the collectors.
func (o *Observer) Registry() *prometheus.Registry { return o.registry }

func (o *Observer) Observe(ev huffman.Event) {
	switch ev.Kind {
	case huffman.EventCompressed:
		o.record(opCompress, ev)
	case huffman.EventDecompressed:
		o.record(opDecompress, ev)
	}
}

func (o *Observer) record(op string, ev huffman.Event) {
	o.BytesIn.WithLabelValues(op).Add(float64(ev.InputBytes))
	o.BytesOut.WithLabelValues(op).Add(float64(ev.OutputBytes))
	o.Operations.WithLabelValues(op).Inc()
	o.TreeBits.Observe(float64(ev.TreeBits))
	o.Symbols.Set(float64(ev.Symbols))
}

// WriteTextfile writes the current metrics in the text exposition format.
func (o *Observer) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, o.registry)
}
