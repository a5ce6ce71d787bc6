package main

import (
	"testing"

	"github.com/spf13/cobra"
)

// TestRootCmdSetup checks the root command wiring done in init().
func TestRootCmdSetup(t *testing.T) {
	var _ *cobra.Command = rootCmd

	if rootCmd == nil {
		t.Fatal("rootCmd is nil after init")
	}

	expectedUse := "fskit"
	if rootCmd.Use != expectedUse {
		t.Errorf("expected command Use %q, got %q", expectedUse, rootCmd.Use)
	}

	var foundVersion, foundFind bool
	for _, cmd := range rootCmd.Commands() {
		switch cmd.Name() {
		case "version":
			foundVersion = true
		case "find":
			foundFind = true
		}
	}
	if !foundVersion {
		t.Error("version subcommand not found")
	}
	if !foundFind {
		t.Error("find subcommand not found")
	}

	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("verbose flag not registered")
	}
}
