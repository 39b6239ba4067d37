// Package cmd is for command line interactions with the gaest application
package cmd

import (
	"log"

	"github.com/jni/gaest/internal/gaest"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "gaest",
	Short: `Cluster EST sequences by similarity using a genetic algorithm.
Reads sequences in FASTA format and writes them back grouped into clusters
of mutually related sequences`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// parseFlags gathers the in path, out path, etc from a cobra cmd object.
// Flags a command doesn't define come back as their zero values
func parseFlags(cmd *cobra.Command) *gaest.Flags {
	f := &gaest.Flags{}

	f.In, _ = cmd.Flags().GetString("in")
	f.Out, _ = cmd.Flags().GetString("out")
	f.Params, _ = cmd.Flags().GetString("params")
	f.Stats, _ = cmd.Flags().GetString("stats")
	f.Trace, _ = cmd.Flags().GetString("trace")
	f.NamesOnly, _ = cmd.Flags().GetBool("names")
	f.Load, _ = cmd.Flags().GetFloat64("load")
	f.MaxSize, _ = cmd.Flags().GetInt("size")
	f.Wrap, _ = cmd.Flags().GetInt("wrap")

	mode, _ := cmd.Flags().GetString("mode")
	if mode == "" {
		f.Mode = gaest.ModeNice
	} else {
		parsed, err := gaest.ParsePrintMode(mode)
		if err != nil {
			log.Fatalf("%v", err)
		}
		f.Mode = parsed
	}

	return f
}
