package main

import (
	"fmt"

	"github.com/benjaminschreck/go-wordml/pkg/wordml"
	"github.com/benjaminschreck/go-wordml/pkg/wordml/enum"
	"github.com/spf13/cobra"
)

func alignCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "align <file> <index> <alignment>",
		Short: "Set the alignment of a paragraph",
		Long: `Set the alignment of the paragraph at index (as listed by dump).
Alignment is a name such as left, center, right, justify or distribute,
or a w:jc token such as both. "inherit" removes the explicit alignment.
The file is rewritten in place unless --out is given.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			alignment, err := enum.ParseAlignmentName(args[2])
			if err != nil {
				return err
			}

			body, err := loadBody(args[0], nil)
			if err != nil {
				return err
			}
			p, err := paragraphAt(body, args[1])
			if err != nil {
				return err
			}
			if err := p.SetAlignment(alignment); err != nil {
				return err
			}

			target := outputPath(args[0], out)
			if err := saveBody(body, target); err != nil {
				return err
			}
			wordml.WithFields(wordml.Fields{"index": args[1], "alignment": alignment}).Info("aligned paragraph")
			fmt.Fprintf(cmd.OutOrStdout(), "%s: paragraph %s aligned %s\n", target, args[1], args[2])
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the result to this file instead of the input")
	return cmd
}
