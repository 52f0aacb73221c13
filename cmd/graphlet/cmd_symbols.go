package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"sync"

	"github.com/dhamidi/graphlet/diagram"
	"github.com/dhamidi/graphlet/format"
	"github.com/dhamidi/graphlet/watch"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newSymbolsCmd() *cobra.Command {
	var outputFormat string
	var watchFiles bool

	cmd := &cobra.Command{
		Use:   "symbols <file>...",
		Short: "List the nodes declared in Mermaid files (- reads stdin)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if countStdin(args) > 1 {
				return errors.New("stdin (-) can only be given once")
			}
			if watchFiles && slices.Contains(args, "-") {
				return errors.New("--watch cannot be combined with stdin")
			}

			reports, err := collectSymbols(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			for _, report := range reports {
				if err := encoder.EncodeSymbols(report); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}

			if !watchFiles {
				return nil
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchSymbols(ctx, encoder, cmd.ErrOrStderr(), args)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")
	cmd.Flags().BoolVarP(&watchFiles, "watch", "w", false, "print the symbols again whenever a file changes")

	return cmd
}

func countStdin(paths []string) int {
	n := 0
	for _, path := range paths {
		if path == "-" {
			n++
		}
	}
	return n
}

// collectSymbols reads and scans every path concurrently. Reports come back
// in argument order.
func collectSymbols(stdin io.Reader, paths []string) ([]format.SymbolReport, error) {
	reports := make([]format.SymbolReport, len(paths))

	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		eg.Go(func() error {
			report, err := symbolReport(stdin, path)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func symbolReport(stdin io.Reader, path string) (format.SymbolReport, error) {
	text, err := readSource(stdin, path)
	if err != nil {
		return format.SymbolReport{}, fmt.Errorf("%s: %w", path, err)
	}
	return format.SymbolReport{
		Source:  path,
		Type:    diagram.DetectType(text),
		Symbols: diagram.ExtractDeclarations(text),
	}, nil
}

func watchSymbols(ctx context.Context, encoder format.Encoder, stderr io.Writer, paths []string) error {
	var mu sync.Mutex
	w, err := watch.New(paths, func(path string) {
		report, err := symbolReport(nil, path)

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return
		}
		if err := encoder.EncodeSymbols(report); err != nil {
			fmt.Fprintf(stderr, "encode: %s\n", err)
		}
	})
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
