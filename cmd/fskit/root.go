package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fskit",
	Short: "Find filesystem entries with composable filters",
	Long: `fskit walks directory trees and selects entries with composable filters:
exact names, prefixes and suffixes, globs, regular expressions, sizes,
entry types, hidden status and gitignore rules. All given filters must
accept an entry for it to be selected, and they are checked in order, so
a cheap check can rule an entry out before an expensive one runs.`,
}

// verbosity counts repeated -v flags; the log level grows with it.
var verbosity int

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newFindCommand())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the version number of fskit`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fskit version %s (commit: %s, built: %s)\n", version, commit, date)
	},
}
