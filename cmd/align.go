package cmd

import (
	"log"
	"strconv"

	"github.com/jni/gaest/internal/gaest"
	"github.com/spf13/cobra"
)

// alignCmd represents the align command
var alignCmd = &cobra.Command{
	Use:   "align <index> <index>",
	Short: "Align two of the input sequences and print the alignment",
	Long: `Align two sequences of the input, chosen by their 0-based position
in the file, and print the aligned regions with the alignment score.
A warning precedes the alignment when the two sequences are not
considered significantly similar`,
	Args: cobra.ExactArgs(2),
	Run:  runAlign,
}

// set flags
func init() {
	RootCmd.AddCommand(alignCmd)

	alignCmd.Flags().StringP("in", "i", "", "Input file with EST sequences <FASTA> (default stdin)")
	alignCmd.Flags().StringP("out", "o", "", "Output file for the alignment (default stdout)")
	alignCmd.Flags().Int("wrap", 60, "Line length for alignment output")
}

func runAlign(cmd *cobra.Command, args []string) {
	i, err := strconv.Atoi(args[0])
	if err != nil {
		log.Fatalf("failed to parse sequence index %q: %v", args[0], err)
	}
	j, err := strconv.Atoi(args[1])
	if err != nil {
		log.Fatalf("failed to parse sequence index %q: %v", args[1], err)
	}

	gaest.AlignPair(parseFlags(cmd), i, j)
}
