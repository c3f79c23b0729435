package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd writes Markdown documentation for the command tree. Hidden:
// it's for regenerating /docs, not for end users.
var docsCmd = &cobra.Command{
	Use:    "docs [directory]",
	Short:  "Generate Markdown documentation for the kmer-count commands",
	Hidden: true,
	Args:   cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "./docs"
		if len(args) > 0 {
			dir = args[0]
		}
		return doc.GenMarkdownTree(RootCmd, dir)
	},
}

func init() {
	RootCmd.AddCommand(docsCmd)
}
