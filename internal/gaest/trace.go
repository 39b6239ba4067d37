package gaest

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DefaultTraceFile is written when tracing is requested without a path
const DefaultTraceFile = "gaesttrace.out"

// Trace writes run statistics for a clustering run: the input size, the
// GA parameters, the sizing prediction and a per-generation score table
type Trace struct {
	w     io.Writer
	start time.Time
}

// NewTrace makes a trace over the writer. A nil writer disables every
// method, so callers don't need to guard each call
func NewTrace(w io.Writer) *Trace {
	return &Trace{w: w}
}

// Header logs the input size
func (t *Trace) Header(n int) {
	if t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "Number of sequences:\t\t%d\n", n)
}

// Params logs the GA parameters
func (t *Trace) Params(popSize, nGen int, pMut float64) {
	if t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "Population size:\t\t%d\n", popSize)
	fmt.Fprintf(t.w, "Number of generations:\t\t%d\n", nGen)
	fmt.Fprintf(t.w, "Mutation rate:\t\t\t%g\n\n", pMut)
}

// Sizing logs the expected alignment count and the table size chosen
// from it. The expectation counts cache entries; alignments are half
// that, one per unordered pair
func (t *Trace) Sizing(expected float64, tableSize int) {
	if t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "Expected number of dynamic programming alignments: %g\n", expected/2)
	fmt.Fprintf(t.w, "Calculated tablesize: %d\n\n", tableSize)
}

// Start marks the beginning of the GA run and prints the table heading
func (t *Trace) Start() {
	t.start = time.Now()
	if t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "Starting GA...\n\n")
	fmt.Fprintf(t.w, "Generation:\tTime:\t\tBest Score:\n\n")
}

// Generation logs one row of the per-generation table
func (t *Trace) Generation(gen int, best float64) {
	if t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "%d\t\t%s\t\t%g\n", gen, formatDuration(time.Since(t.start)), best)
}

// Alignments logs how many alignments were actually performed
func (t *Trace) Alignments(count int) {
	if t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "\nAlignments performed: %d\n", count)
}

// formatDuration renders an elapsed time compactly, skipping zero
// components: "2h", "2h30min", "1min5s", "45s"
func formatDuration(d time.Duration) string {
	secs := int(d.Seconds())
	h, m, s := secs/3600, (secs/60)%60, secs%60

	var b strings.Builder
	if h > 0 {
		fmt.Fprintf(&b, "%dh", h)
	}
	if m > 0 {
		fmt.Fprintf(&b, "%dmin", m)
	}
	if s > 0 || (h == 0 && m == 0) {
		fmt.Fprintf(&b, "%ds", s)
	}
	return b.String()
}
