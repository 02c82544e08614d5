package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benjaminschreck/go-wordml/pkg/wordml/enum"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func dumpCmd() *cobra.Command {
	var styles styleSource

	cmd := &cobra.Command{
		Use:   "dump <pattern>...",
		Short: "List paragraphs with their index, style and alignment",
		Long: `List paragraphs with their index, style name, alignment and text.
Indexes are the ones accepted by the align and style commands.
Style names are resolved with --styles or --style-map when given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandInputs(args)
			if err != nil {
				return err
			}
			resolver, err := styles.resolver()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			header := color.New(color.Bold)
			index := color.New(color.FgYellow).SprintFunc()
			style := color.New(color.FgCyan).SprintFunc()
			align := color.New(color.FgGreen).SprintFunc()
			faint := color.New(color.Faint).SprintFunc()

			for _, path := range files {
				body, err := loadBody(path, resolver)
				if err != nil {
					return err
				}
				if len(files) > 1 {
					header.Fprintf(out, "==> %s <==\n", path)
				}
				for i, p := range body.Paragraphs() {
					alignment := "-"
					if a := p.Alignment(); a != enum.AlignInherit {
						alignment = strings.ToLower(a.String())
					}
					text := strconv.Quote(p.Text())
					fmt.Fprintf(out, "%s\t%s\t%s\t%s\n",
						index(i), style(p.Style()), align(alignment), faint(text))
				}
			}
			return nil
		},
	}

	styles.register(cmd)
	return cmd
}
