// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/bincollate/bincollate"
	"github.com/bincollate/bincollate/colcmp"
	"github.com/bincollate/bincollate/strcol"
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"
)

const (
	minLatency = 100 * time.Nanosecond
	maxLatency = 10 * time.Second
)

var benchConfig = struct {
	concurrency int
	duration    time.Duration
	rows        int
	maxLen      int
	maxPad      int
	op          string
	seed        uint64
}{}

var benchCmd = &cobra.Command{
	Use:   "bench <collation>",
	Short: "benchmark collated column comparisons",
	Long: `
Generates two random columns of space-padded strings and repeatedly compares
them row by row with the given operator from concurrent workers, reporting
the latency of each full-column pass.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := lookupCollation(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		return runBench(ctx, cmd.OutOrStdout(), c)
	},
}

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 1)
}

type namedHistogram struct {
	name string
	mu   struct {
		sync.Mutex
		current *hdrhistogram.Histogram
	}
}

func newNamedHistogram(name string) *namedHistogram {
	w := &namedHistogram{name: name}
	w.mu.current = newHistogram()
	return w
}

func (w *namedHistogram) Record(elapsed time.Duration) {
	if elapsed < minLatency {
		elapsed = minLatency
	} else if elapsed > maxLatency {
		elapsed = maxLatency
	}

	w.mu.Lock()
	err := w.mu.current.RecordValue(elapsed.Nanoseconds())
	w.mu.Unlock()

	if err != nil {
		// Note that a histogram only drops recorded values that are out of range,
		// but we clamp the latency value to the configured range to prevent such
		// drops. This code path should never happen.
		panic(fmt.Sprintf(`%s: recording value: %s`, w.name, err))
	}
}

func (w *namedHistogram) snapshot() *hdrhistogram.Histogram {
	w.mu.Lock()
	defer w.mu.Unlock()
	return hdrhistogram.Import(w.mu.current.Export())
}

type histogramRegistry struct {
	mu struct {
		sync.Mutex
		registered []*namedHistogram
	}
}

func (r *histogramRegistry) Register(name string) *namedHistogram {
	hist := newNamedHistogram(name)

	r.mu.Lock()
	r.mu.registered = append(r.mu.registered, hist)
	r.mu.Unlock()

	return hist
}

// Merged returns the histograms merged by name, sorted by name.
func (r *histogramRegistry) Merged() ([]string, map[string]*hdrhistogram.Histogram) {
	r.mu.Lock()
	registered := append([]*namedHistogram(nil), r.mu.registered...)
	r.mu.Unlock()

	merged := make(map[string]*hdrhistogram.Histogram)
	var names []string
	for _, hist := range registered {
		h := hist.snapshot()
		if m, ok := merged[hist.name]; ok {
			m.Merge(h)
		} else {
			merged[hist.name] = h
			names = append(names, hist.name)
		}
	}
	sort.Strings(names)
	return names, merged
}

// benchMetrics are exported through a private prometheus registry.
type benchMetrics struct {
	registry *prometheus.Registry
	pass     prometheus.Histogram
	rows     prometheus.Counter
}

func newBenchMetrics(c *bincollate.Collator) *benchMetrics {
	labels := prometheus.Labels{"collation": c.Name}
	m := &benchMetrics{
		registry: prometheus.NewRegistry(),
		pass: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "bincollate",
			Subsystem:   "bench",
			Name:        "pass_duration_seconds",
			Help:        "Latency of one full-column comparison pass.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1e-6, 2, 24),
		}),
		rows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "bincollate",
			Subsystem:   "bench",
			Name:        "rows_compared_total",
			Help:        "Number of rows compared.",
			ConstLabels: labels,
		}),
	}
	m.registry.MustRegister(m.pass, m.rows)
	return m
}

func (m *benchMetrics) rowsCompared() float64 {
	var pb dto.Metric
	if err := m.rows.Write(&pb); err != nil {
		return 0
	}
	return pb.GetCounter().GetValue()
}

// randPaddedColumn builds a column of random lowercase strings followed by up
// to maxPad spaces.
func randPaddedColumn(rng *rand.Rand, rows, maxLen, maxPad int) strcol.Column {
	var b strcol.Builder
	buf := make([]byte, 0, maxLen+maxPad)
	for i := 0; i < rows; i++ {
		buf = buf[:0]
		n := rng.IntN(maxLen + 1)
		for j := 0; j < n; j++ {
			// A small alphabet makes equal prefixes, and so the slow paths,
			// common.
			buf = append(buf, byte('a'+rng.IntN(3)))
		}
		for j := rng.IntN(maxPad + 1); j > 0; j-- {
			buf = append(buf, ' ')
		}
		b.Put(buf)
	}
	return b.Finish()
}

func cpuFeatures() string {
	var features []string
	add := func(name string, ok bool) {
		if ok {
			features = append(features, name)
		}
	}
	add("sse42", cpu.X86.HasSSE42)
	add("avx2", cpu.X86.HasAVX2)
	add("avx512bw", cpu.X86.HasAVX512BW)
	add("asimd", cpu.ARM64.HasASIMD)
	if len(features) == 0 {
		return "none detected"
	}
	return strings.Join(features, " ")
}

func runBench(ctx context.Context, w io.Writer, c *bincollate.Collator) error {
	cfg := benchConfig
	if cfg.concurrency < 1 || cfg.rows < 1 || cfg.maxLen < 0 || cfg.maxPad < 0 {
		return errors.Newf("invalid bench configuration: concurrency=%d rows=%d max-len=%d max-pad=%d",
			cfg.concurrency, cfg.rows, cfg.maxLen, cfg.maxPad)
	}
	op, err := colcmp.ParseOp(cfg.op)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(0, cfg.seed))
	a := randPaddedColumn(rng, cfg.rows, cfg.maxLen, cfg.maxPad)
	b := randPaddedColumn(rng, cfg.rows, cfg.maxLen, cfg.maxPad)
	if verbose {
		logger.Infof("collation %s (%s), op %s, %s rows (%s), %d workers, cpu: %s",
			c, c.Padding, op,
			crhumanize.Count(int64(cfg.rows), crhumanize.Compact),
			crhumanize.Bytes(int64(len(a.Chars)+len(b.Chars)), crhumanize.Compact, crhumanize.OmitI),
			cfg.concurrency, cpuFeatures())
	}

	var hists histogramRegistry
	metrics := newBenchMetrics(c)
	name := fmt.Sprintf("%s/%s", c, op)

	if cfg.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.duration)
		defer cancel()
	}
	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.concurrency; i++ {
		hist := hists.Register(name)
		g.Go(func() error {
			res := make([]uint8, cfg.rows)
			for ctx.Err() == nil {
				passStart := time.Now()
				colcmp.VectorVector(c, op, a, b, res)
				elapsed := time.Since(passStart)
				hist.Record(elapsed)
				metrics.pass.Observe(elapsed.Seconds())
				metrics.rows.Add(float64(cfg.rows))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	names, merged := hists.Merged()
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"name", "passes", "rows/sec", "p50(µs)", "p95(µs)", "p99(µs)", "pMax(µs)"})
	for _, n := range names {
		h := merged[n]
		rowsPerSec := float64(h.TotalCount()) * float64(cfg.rows) / elapsed.Seconds()
		tw.Append([]string{
			n,
			fmt.Sprint(h.TotalCount()),
			fmt.Sprintf("%.0f", rowsPerSec),
			fmt.Sprintf("%.1f", time.Duration(h.ValueAtQuantile(50)).Seconds()*1e6),
			fmt.Sprintf("%.1f", time.Duration(h.ValueAtQuantile(95)).Seconds()*1e6),
			fmt.Sprintf("%.1f", time.Duration(h.ValueAtQuantile(99)).Seconds()*1e6),
			fmt.Sprintf("%.1f", time.Duration(h.Max()).Seconds()*1e6),
		})
	}
	tw.Render()
	fmt.Fprintf(w, "compared %s rows in %s\n",
		crhumanize.Count(int64(metrics.rowsCompared()), crhumanize.Compact), elapsed.Round(time.Millisecond))

	return writeMetrics(w, metrics.registry)
}

// writeMetrics prints a summary of every metric family in the registry.
func writeMetrics(w io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"metric", "type", "value"})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value string
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				value = fmt.Sprintf("%.0f", m.GetCounter().GetValue())
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				value = fmt.Sprintf("count=%d sum=%.6fs", h.GetSampleCount(), h.GetSampleSum())
			default:
				value = m.String()
			}
			tw.Append([]string{mf.GetName(), strings.ToLower(mf.GetType().String()), value})
		}
	}
	tw.Render()
	return nil
}
