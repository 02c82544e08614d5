package main

import (
	"fmt"

	"github.com/benjaminschreck/go-wordml/pkg/wordml"
	"github.com/spf13/cobra"
)

func styleCmd() *cobra.Command {
	var (
		styles styleSource
		out    string
	)

	cmd := &cobra.Command{
		Use:   "style <file> <index> <name>",
		Short: "Set the style of a paragraph",
		Long: `Set the paragraph style of the paragraph at index (as listed by dump).
The name is resolved to a style id with --styles (a styles.xml part) or
--style-map (a YAML table); without either, WORDML_STYLE_MAP is consulted
and otherwise the name is used as the id. An empty name or the default
paragraph style removes the style reference.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := styles.resolver()
			if err != nil {
				return err
			}
			body, err := loadBody(args[0], resolver)
			if err != nil {
				return err
			}
			p, err := paragraphAt(body, args[1])
			if err != nil {
				return err
			}
			if err := p.SetStyle(args[2]); err != nil {
				return err
			}

			target := outputPath(args[0], out)
			if err := saveBody(body, target); err != nil {
				return err
			}
			wordml.WithFields(wordml.Fields{"index": args[1], "style": args[2]}).Info("styled paragraph")
			fmt.Fprintf(cmd.OutOrStdout(), "%s: paragraph %s styled %s\n", target, args[1], p.Style())
			return nil
		},
	}

	styles.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the result to this file instead of the input")
	return cmd
}
