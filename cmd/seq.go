package cmd

import (
	"log"
	"strconv"

	"github.com/jni/gaest/internal/gaest"
	"github.com/spf13/cobra"
)

// seqCmd represents the seq command
var seqCmd = &cobra.Command{
	Use:   "seq [index...]",
	Short: "Print input sequences in fasta, nice or raw mode",
	Long: `Print the chosen sequences (every sequence when no indexes are given)
in one of three modes: fasta wraps the body at the wrap width, nice adds
1-based position indexes and spaces every ten letters, raw prints the
body on a single line`,
	Run: runSeq,
}

// set flags
func init() {
	RootCmd.AddCommand(seqCmd)

	seqCmd.Flags().StringP("in", "i", "", "Input file with EST sequences <FASTA> (default stdin)")
	seqCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	seqCmd.Flags().String("mode", "nice", "Sequence print mode: fasta, nice or raw")
	seqCmd.Flags().Int("wrap", 60, "Line length for sequence output")
}

func runSeq(cmd *cobra.Command, args []string) {
	var indexes []int
	for _, arg := range args {
		i, err := strconv.Atoi(arg)
		if err != nil {
			log.Fatalf("failed to parse sequence index %q: %v", arg, err)
		}
		indexes = append(indexes, i)
	}

	gaest.PrintSequences(parseFlags(cmd), indexes)
}
