package main

import (
	"fmt"

	"github.com/dhamidi/graphlet/completion"
	"github.com/dhamidi/graphlet/format"
	"github.com/spf13/cobra"
)

var catalogNames = []string{"operators", "shapes", "keywords"}

func newCatalogCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:       "catalog [operators|shapes|keywords]",
		Short:     "Print the built-in completion vocabularies",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"operators", "operator", "shapes", "shape", "keywords", "keyword"},
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			names := catalogNames
			if len(args) == 1 {
				names = args
			}
			for _, name := range names {
				entries, ok := completion.Catalog(name)
				if !ok {
					return fmt.Errorf("unknown catalog %q", name)
				}
				if err := encoder.EncodeCatalog(format.CatalogReport{Name: name, Entries: entries}); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")

	return cmd
}
