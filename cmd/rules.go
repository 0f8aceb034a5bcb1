// Copyright © 2025 The whyerr authors

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/whyerr/whyerr/syntaxmsg"
)

var rulesJSON bool

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the known syntax-message shapes",
	Long: `List the known syntax-message shapes.

Syntax faults all arrive with near-identical wording, so whyerr matches the
raw message against a fixed catalogue of shapes, in priority order; the
first matching shape provides the explanation. This command prints that
catalogue in the order it is consulted.

Examples:
  whyerr rules            # One rule per line: name and description
  whyerr rules --json     # The catalogue as JSON`,
	Run: func(cmd *cobra.Command, args []string) {
		analyzers := syntaxmsg.DefaultAnalyzers()
		if rulesJSON {
			type rule struct {
				Name string `json:"name"`
				Doc  string `json:"doc"`
			}
			rules := make([]rule, len(analyzers))
			for i, a := range analyzers {
				rules[i] = rule{Name: a.Name, Doc: a.Doc}
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rules); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			return
		}
		for _, a := range analyzers {
			fmt.Printf("%-28s %s\n", a.Name, a.Doc)
		}
	},
}

func init() {
	rulesCmd.Flags().BoolVar(&rulesJSON, "json", false, "Output the catalogue as JSON")
	rootCmd.AddCommand(rulesCmd)
}
