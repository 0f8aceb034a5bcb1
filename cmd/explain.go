// Copyright © 2025 The whyerr authors

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/whyerr/whyerr/report"
)

// explainCmd represents the explain command
var explainCmd = &cobra.Command{
	Use:   "explain [file.json]",
	Short: "Explain a captured fault record",
	Long: `Explain a captured fault record.

Reads a JSON fault record from the given file, or from stdin when no file
is given, and prints the layered explanation: the annotated fault site,
a generic description of the fault category, the likely cause with a
suggestion when one is known, and the values of the variables appearing
in the shown source.

When the record names a readable source file but carries no source lines,
the lines are read from disk.

Exit codes:
  0  Record explained
  2  Bad invocation (unreadable input, malformed record)

Examples:
  whyerr explain fault.json             # Explain a recorded fault
  cat fault.json | whyerr explain       # Explain a record from stdin
  whyerr explain --color=never fault.json`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readInput(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		rec, err := decodeRecord(data)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		engine, err := report.NewDefaultEngine(nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		composer := &report.Composer{
			Engine:   engine,
			Renderer: newRenderer(),
			Source:   &report.FileProvider{},
		}
		if err := composer.Explain(os.Stdout, rec); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	},
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return readStdin()
	}
	data, err := os.ReadFile(args[0]) //nolint:gosec // CLI tool reads user-specified files
	if err != nil {
		return nil, fmt.Errorf("%s: %w", args[0], err)
	}
	return data, nil
}

func readStdin() ([]byte, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
