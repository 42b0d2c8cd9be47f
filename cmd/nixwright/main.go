// Nixwright is an interactive installer configuration wizard.
//
// It walks through hostname, locale, drives, users, desktop and system
// settings in a full-screen terminal UI, then writes two declarative
// documents: a system configuration (configuration.nix) and a disk
// provisioning plan (disko.nix). Nothing is applied to the machine;
// applying the documents is left to the installer tooling.
//
// Usage:
//
//	nixwright [command] [flags]
//
// Running without arguments launches the interactive wizard.
// See 'nixwright --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvernberg/nixwright/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nixwright",
	Short: "Declarative installer configuration wizard",
	Long: `An interactive wizard that builds a declarative system configuration.

Walks through hostname, locale, drives, users, desktop and system settings
in a full-screen terminal UI, then writes configuration.nix and disko.nix.
Nothing is applied to the machine.

If no command is specified, the interactive wizard will launch automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWizard(cmd, args)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nixwright %s\n", version.Full())
	},
}
