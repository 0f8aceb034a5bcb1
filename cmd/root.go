// Copyright © 2025 The whyerr authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/whyerr/whyerr/diagnostic"
)

var (
	cfgFile   string
	colorFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "whyerr",
	Short: "whyerr — explain Python fault reports to learners",
	Long: `whyerr takes the raw fault report of a failed Python program and turns it
into a layered, beginner-friendly explanation: what kind of error was
raised, its likely cause, a concrete suggestion when one exists, and an
annotated source snippet pinpointing the fault.

Getting started:
  whyerr explain fault.json    Explain a captured fault record
  cat fault.json | whyerr explain
                               Explain a record from stdin
  whyerr rules                 List the known syntax-message shapes
  whyerr kinds                 List the fault kinds with a cause handler

A fault record is a small JSON document captured at the point the fault was
raised. The minimal record carries "kind" and "message"; richer records add
the source location, a window of source lines, the live variable bindings,
and the members of loaded modules, all of which sharpen the explanation:

  {
    "kind": "name-not-found",
    "message": "name 'cost' is not defined",
    "file": "example.py",
    "line": 2,
    "offset": 7,
    "source_lines": ["coast = 3", "total=cost"],
    "locals": {"coast": {"repr": "3"}}
  }

More information:
  Source code: https://github.com/whyerr/whyerr`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.whyerr.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored output: "auto", "always", or "never".`)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".whyerr" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".whyerr")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func colorMode() diagnostic.ColorMode {
	switch colorFlag {
	case "always":
		return diagnostic.ColorAlways
	case "never":
		return diagnostic.ColorNever
	default:
		return diagnostic.ColorAuto
	}
}

func newRenderer() *diagnostic.Renderer {
	return &diagnostic.Renderer{Color: colorMode()}
}
