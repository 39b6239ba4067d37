package gaest

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/jni/gaest/config"
)

// Flags contains parsed cobra flags like "in", "out", "load", etc that
// are shared by the cluster and exhaustive commands
type Flags struct {
	// In is the file to read sequences from; empty means stdin
	In string

	// Out is the file to write the clustering to; empty means stdout
	Out string

	// Params is the GA parameter file path
	Params string

	// Stats is the file to write GA statistics to; empty disables them
	Stats string

	// Trace is the file to write trace statistics to; empty disables them
	Trace string

	// NamesOnly prints sequence names instead of whole sequences
	NamesOnly bool

	// Load is the expected load of the oracle's hash tables
	Load float64

	// MaxSize is the maximum size of the oracle's hash tables
	MaxSize int

	// Mode is the sequence print mode for the output
	Mode PrintMode

	// Wrap is the line length for sequence and alignment output
	Wrap int
}

// DefaultLoad is the default expected load of the oracle's hash tables
const DefaultLoad = 0.5

// DefaultMaxSize is the default maximum size of those tables
const DefaultMaxSize = 1000

// readInput reads at least min sequences from the file named by the
// flags, or from stdin when no input file was set
func readInput(f *Flags, min int) []*Sequence {
	var seqs []*Sequence
	var err error

	if f.In == "" {
		seqs, err = ReadSequences(os.Stdin)
	} else {
		seqs, err = ReadSequenceFile(f.In)
	}
	if err != nil {
		stderr.Fatalf("%v", err)
	}

	if len(seqs) < min {
		stderr.Fatalf("failed: need at least %d sequences, have %d", min, len(seqs))
	}
	return seqs
}

// output opens the output file named by the flags, or stdout
func output(f *Flags) (io.Writer, func()) {
	if f.Out == "" {
		return os.Stdout, func() {}
	}

	out, err := os.Create(f.Out)
	if err != nil {
		stderr.Fatalf("failed to open output file %s: %v", f.Out, err)
	}
	return out, func() { out.Close() }
}

// Cluster runs the whole pipeline: read sequences, size the oracle's
// cache, run the GA, and write the best genome's clusters
func Cluster(f *Flags, conf *config.Config) {
	seqs := readInput(f, 2)
	n := len(seqs)

	var trace *Trace
	if f.Trace == "" {
		trace = NewTrace(nil)
	} else {
		tf, err := os.Create(f.Trace)
		if err != nil {
			stderr.Fatalf("failed to open trace file %s: %v", f.Trace, err)
		}
		defer tf.Close()
		trace = NewTrace(tf)
	}
	trace.Header(n)
	trace.Params(conf.PopulationSize, conf.Generations, conf.PMutation)

	expected := ExpectedAlignments(n, conf.PopulationSize, conf.Generations, conf.PMutation)
	tableSize := TableSize(expected, n, f.MaxSize, f.Load)
	trace.Sizing(expected, tableSize)

	oracle := NewOracle(seqs, DefaultScoring(), tableSize)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	engine := NewEngine(oracle, conf.PopulationSize, conf.Generations, conf.PMutation, conf.PCrossover, conf.Elitism, rng)

	trace.Start()
	engine.Run(trace.Generation)
	trace.Alignments(oracle.Alignments())

	if f.Stats != "" {
		if err := engine.Statistics().Write(f.Stats); err != nil {
			stderr.Fatalf("%v", err)
		}
	}

	best, _ := engine.Best()
	clusters, unclustered := Clusters(best, oracle)

	out, done := output(f)
	defer done()
	WriteClusters(out, clusters, unclustered, seqs, f.NamesOnly, f.Mode, f.Wrap)
}

// Exhaustive clusters by aligning every pair of sequences: the
// brute-force baseline the GA approximates. Writes the clusters, the
// clustering score and the alignment count
func Exhaustive(f *Flags) {
	seqs := readInput(f, 2)
	n := len(seqs)

	start := time.Now()
	edges := ExhaustiveEdges(seqs, DefaultScoring())
	elapsed := time.Since(start)

	clusters, unclustered := components(edges)

	out, done := output(f)
	defer done()
	WriteClusters(out, clusters, unclustered, seqs, f.NamesOnly, f.Mode, f.Wrap)

	fmt.Fprintf(out, " SCORE: %g\n", ClusterScore(clusters))
	fmt.Fprintf(out, " TIME: %s\n", formatDuration(elapsed))
	fmt.Fprintf(out, " ALIGNMENTS: %d\n", n*(n-1)/2)
}

// AlignPair fully aligns two sequences of the input, chosen by index,
// and prints the traced alignment
func AlignPair(f *Flags, i, j int) {
	seqs := readInput(f, 2)

	if i < 0 || i >= len(seqs) || j < 0 || j >= len(seqs) {
		stderr.Fatalf("failed: sequence indexes %d, %d out of range, have %d sequences", i, j, len(seqs))
	}

	a := Align(seqs[i], seqs[j], DefaultScoring())
	a.Tracepath()

	out, done := output(f)
	defer done()
	fmt.Fprint(out, a.Format(f.Wrap))
}

// PrintSequences writes the chosen sequences (every one when no indexes
// are given) in the flags' print mode
func PrintSequences(f *Flags, indexes []int) {
	seqs := readInput(f, 1)

	if len(indexes) == 0 {
		for i := range seqs {
			indexes = append(indexes, i)
		}
	}

	out, done := output(f)
	defer done()
	for _, i := range indexes {
		if i < 0 || i >= len(seqs) {
			stderr.Fatalf("failed: sequence index %d out of range, have %d sequences", i, len(seqs))
		}
		fmt.Fprintln(out, seqs[i].Format(f.Mode, f.Wrap))
	}
}
