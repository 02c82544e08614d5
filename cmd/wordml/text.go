package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func textCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text <pattern>...",
		Short: "Print the text of every paragraph",
		Long: `Print the text of every paragraph, one per line. Tabs and breaks inside a
paragraph come out as tab and newline characters. When more than one file
matches, each file's output is preceded by its path.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandInputs(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			header := color.New(color.Bold)
			for _, path := range files {
				body, err := loadBody(path, nil)
				if err != nil {
					return err
				}
				if len(files) > 1 {
					header.Fprintf(out, "==> %s <==\n", path)
				}
				for _, p := range body.Paragraphs() {
					fmt.Fprintln(out, p.Text())
				}
			}
			return nil
		},
	}
}
