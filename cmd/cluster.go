package cmd

import (
	"log"

	"github.com/jni/gaest/config"
	"github.com/jni/gaest/internal/gaest"
	"github.com/spf13/cobra"
)

// clusterCmd represents the cluster command
var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Cluster the input sequences with the genetic algorithm",
	Long: `Cluster the input sequences by pairwise similarity.

A genetic algorithm searches the space of sequence pairings: each genome
pairs every sequence with a candidate partner and is scored by the sizes
of the clusters those pairings produce. Pairs are compared with a local
alignment whose result is cached, so each pair is aligned at most once
no matter how often the GA revisits it.

The GA parameters (population size, number of generations, mutation rate)
are read from a parameter file, "gaparam.in" by default`,
	Run: runCluster,
}

// set flags
func init() {
	RootCmd.AddCommand(clusterCmd)

	clusterCmd.Flags().StringP("in", "i", "", "Input file with EST sequences <FASTA> (default stdin)")
	clusterCmd.Flags().StringP("out", "o", "", "Output file for the clusters (default stdout)")
	clusterCmd.Flags().StringP("params", "p", config.DefaultFile, "File with the GA parameters")
	clusterCmd.Flags().String("stats", "", "Write GA statistics to the file")
	clusterCmd.Flags().StringP("trace", "t", "", "Write trace statistics to the file")
	clusterCmd.Flags().Lookup("trace").NoOptDefVal = gaest.DefaultTraceFile
	clusterCmd.Flags().BoolP("names", "n", false, "Only output sequence names")
	clusterCmd.Flags().Float64P("load", "l", gaest.DefaultLoad, "Expected load of the similarity hash tables; low values use more memory but are faster")
	clusterCmd.Flags().IntP("size", "s", gaest.DefaultMaxSize, "Maximum size of the similarity hash tables")
	clusterCmd.Flags().String("mode", "nice", "Sequence print mode: fasta, nice or raw")
	clusterCmd.Flags().Int("wrap", 60, "Line length for sequence output")
}

func runCluster(cmd *cobra.Command, args []string) {
	f := parseFlags(cmd)

	if f.Load <= 0 {
		log.Fatalf("failed: load must be > 0, have %g", f.Load)
	}

	gaest.Cluster(f, config.New(f.Params))
}
