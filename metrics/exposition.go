package metrics

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

// WriteText writes every metric in r in the Prometheus text exposition
// format, ordered by kind and then by name. Dots and dashes in metric names
// become underscores; a non-empty namespace is prepended with an underscore.
// Histograms are written as summaries with _count and _sum, plus _min, _max
// and _mean once something has been observed.
func WriteText(w io.Writer, r *Registry, namespace string) error {
	bw := bufio.NewWriter(w)

	for _, c := range sorted(r, r.counters) {
		name := promName(namespace, c.Name())
		writeHeader(bw, name, "counter", c.Name())
		fmt.Fprintf(bw, "%s %d\n", name, c.Value())
	}
	for _, g := range sorted(r, r.gauges) {
		name := promName(namespace, g.Name())
		writeHeader(bw, name, "gauge", g.Name())
		fmt.Fprintf(bw, "%s %d\n", name, g.Value())
	}
	for _, h := range sorted(r, r.histograms) {
		name := promName(namespace, h.Name())
		s := h.Snapshot()
		writeHeader(bw, name, "summary", h.Name())
		fmt.Fprintf(bw, "%s_count %d\n", name, s.Count)
		fmt.Fprintf(bw, "%s_sum %s\n", name, formatFloat(s.Sum))
		if s.Count > 0 {
			fmt.Fprintf(bw, "%s_min %s\n", name, formatFloat(s.Min))
			fmt.Fprintf(bw, "%s_max %s\n", name, formatFloat(s.Max))
			fmt.Fprintf(bw, "%s_mean %s\n", name, formatFloat(s.Mean()))
		}
	}
	return bw.Flush()
}

// promName converts a dot-separated metric name to Prometheus form.
func promName(namespace, name string) string {
	sanitized := strings.NewReplacer(".", "_", "-", "_").Replace(name)
	if namespace != "" {
		return namespace + "_" + sanitized
	}
	return sanitized
}

// formatFloat formats v for the exposition format, spelling out infinities
// and NaN.
func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return fmt.Sprintf("%g", v)
}

func writeHeader(w io.Writer, name, kind, help string) {
	fmt.Fprintf(w, "# HELP %s %s\n", name, help)
	fmt.Fprintf(w, "# TYPE %s %s\n", name, kind)
}
