// Copyright © 2025 The whyerr authors

package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/whyerr/whyerr/infer"
	"github.com/whyerr/whyerr/runtimefault"
)

// kindsCmd represents the kinds command
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the fault kinds with a cause handler",
	Long: `List the fault kinds with a cause handler.

A record whose kind is not listed here still gets the generic description
and the annotated source snippet, but no likely-cause narrative.`,
	Run: func(cmd *cobra.Command, args []string) {
		registry := infer.NewRegistry()
		if err := runtimefault.RegisterAll(registry, nil); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		kinds := registry.Kinds()
		sort.Strings(kinds)
		for _, kind := range kinds {
			fmt.Println(kind)
		}
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
