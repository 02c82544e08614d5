package main

import (
	"io"

	"github.com/benjaminschreck/go-wordml/pkg/wordml"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. A fresh tree per call keeps flag
// state out of package globals.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "wordml",
		Short: "Inspect and edit paragraphs in WordprocessingML parts",
		Long: `wordml reads the document.xml part of a Word document (already extracted
from its package) and prints or edits its paragraphs: their text, style
and alignment. Edits are written back as canonical XML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				wordml.GetLogger().SetLevel(wordml.LogDebug)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		textCmd(),
		dumpCmd(),
		alignCmd(),
		styleCmd(),
		versionCmd(),
	)
	return root
}

// execute runs args through a fresh command tree. The package log level
// raised by --verbose is restored afterwards, whether or not the command
// fails.
func execute(args []string, stdout, stderr io.Writer) error {
	logger := wordml.GetLogger()
	defer logger.SetLevel(logger.Level())

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}
