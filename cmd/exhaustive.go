package cmd

import (
	"github.com/jni/gaest/internal/gaest"
	"github.com/spf13/cobra"
)

// exhaustiveCmd represents the exhaustive command
var exhaustiveCmd = &cobra.Command{
	Use:   "exhaustive",
	Short: "Cluster the input sequences by aligning every pair",
	Long: `Cluster the input sequences by aligning every one of the n*(n-1)/2
pairs. This is the brute-force baseline the genetic algorithm
approximates: the clustering is exact, the cost is quadratic in the
number of sequences`,
	Run: runExhaustive,
}

// set flags
func init() {
	RootCmd.AddCommand(exhaustiveCmd)

	exhaustiveCmd.Flags().StringP("in", "i", "", "Input file with EST sequences <FASTA> (default stdin)")
	exhaustiveCmd.Flags().StringP("out", "o", "", "Output file for the clusters (default stdout)")
	exhaustiveCmd.Flags().BoolP("names", "n", false, "Only output sequence names")
	exhaustiveCmd.Flags().String("mode", "nice", "Sequence print mode: fasta, nice or raw")
	exhaustiveCmd.Flags().Int("wrap", 60, "Line length for sequence output")
}

func runExhaustive(cmd *cobra.Command, args []string) {
	gaest.Exhaustive(parseFlags(cmd))
}
