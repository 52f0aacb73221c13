package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/graphlet/completion"
	"github.com/dhamidi/graphlet/format"
	"github.com/spf13/cobra"
)

func newCompleteCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "complete <file>:<line>:<column>",
		Short: "Rank completion candidates at a 1-based position in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, line, column, err := parseLocation(args[0])
			if err != nil {
				return err
			}
			encoder, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			text, err := readSource(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			report := format.CompletionReport{
				Source: path,
				Line:   line,
				Column: column,
				Result: completion.Complete(text, line, column),
			}
			if err := encoder.EncodeCompletion(report); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")

	return cmd
}

// parseLocation splits "path:line:column". The path itself may contain
// colons.
func parseLocation(arg string) (string, int, int, error) {
	rest, columnText, ok := cutLast(arg, ":")
	if !ok {
		return "", 0, 0, fmt.Errorf("invalid location %q: expected <file>:<line>:<column>", arg)
	}
	path, lineText, ok := cutLast(rest, ":")
	if !ok || path == "" {
		return "", 0, 0, fmt.Errorf("invalid location %q: expected <file>:<line>:<column>", arg)
	}
	line, err := strconv.Atoi(lineText)
	if err != nil || line < 1 {
		return "", 0, 0, fmt.Errorf("invalid line %q in %q", lineText, arg)
	}
	column, err := strconv.Atoi(columnText)
	if err != nil || column < 1 {
		return "", 0, 0, fmt.Errorf("invalid column %q in %q", columnText, arg)
	}
	return path, line, column, nil
}

func cutLast(s, sep string) (string, string, bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
