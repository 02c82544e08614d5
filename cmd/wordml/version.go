package main

import (
	"fmt"

	"github.com/benjaminschreck/go-wordml/pkg/wordml"
	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of wordml",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wordml version %s\n", wordml.Version)
		},
	}
}
