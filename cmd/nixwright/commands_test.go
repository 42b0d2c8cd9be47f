package main

import (
	"testing"

	"github.com/spf13/cobra"
)

// The log level must be reachable from the command line, not only through
// the environment variable.
func TestPersistentFlagsRegistered(t *testing.T) {
	for _, name := range []string{"out", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Missing persistent flag --%s", name)
		}
	}
}

func TestGenerateRequiresSelections(t *testing.T) {
	f := generateCmd.Flags().Lookup("selections")
	if f == nil {
		t.Fatal("Missing --selections flag on generate")
	}
	if f.Annotations[cobra.BashCompOneRequiredFlag] == nil {
		t.Error("--selections must be marked required")
	}
}
