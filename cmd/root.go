// Package cmd is for command line interactions with the kmer-count
// application
package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// logger writes leveled output to stderr so tables on stdout stay clean.
var logger = log.New(os.Stderr)

var verbose bool

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:     "kmer-count",
	Short:   "Count the frequency of all k-mers in FASTA files under a directory",
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		} else {
			logger.SetLevel(log.InfoLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
}
