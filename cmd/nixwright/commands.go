package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kvernberg/nixwright/internal/config"
	"github.com/kvernberg/nixwright/internal/logging"
	"github.com/kvernberg/nixwright/internal/nixgen"
	"github.com/kvernberg/nixwright/internal/output"
	"github.com/kvernberg/nixwright/internal/selection"
	"github.com/kvernberg/nixwright/internal/tui"
)

var (
	outDir         string
	logLevel       string
	selectionsPath string
	saveSelections string
	dryRun         bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", ".", "Directory to write the generated files into")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log verbosity (debug, info, warn, error); falls back to "+logging.LogLevelEnvVar)
	rootCmd.Flags().StringVar(&saveSelections, "save-selections", "", "Also save the wizard answers as YAML for later 'generate' runs")

	rootCmd.AddCommand(generateCmd)
}

func runWizard(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the wizard needs an interactive terminal; use 'nixwright generate' for scripted runs")
	}
	if os.Geteuid() != 0 {
		fmt.Fprintln(os.Stderr, "Warning: not running as root; detected drives may be incomplete.")
	}

	if err := logging.Initialize(logLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	st := selection.NewState()
	registry, err := config.LoadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring unreadable preferences: %v\n", err)
	} else {
		registry.ApplyPreferences(st)
	}

	completed, err := tui.Run(st)
	if err != nil {
		return err
	}
	if !completed {
		fmt.Println("Aborted. Nothing was written.")
		return nil
	}

	if saveSelections != "" {
		if err := selection.Save(st, saveSelections); err != nil {
			return fmt.Errorf("failed to save selections: %w", err)
		}
		fmt.Printf("Selections saved to %s\n", saveSelections)
	}

	if err := synthesizeAndWrite(st); err != nil {
		return err
	}

	if registry != nil {
		registry.RememberPreferences(st)
		registry.RecordGeneration(st, outDir)
		if err := registry.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save preferences: %v\n", err)
		}
	}
	return nil
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate configuration from saved selections",
	Long: `Generate configuration.nix and disko.nix from a selections YAML file
without running the interactive wizard.

The selections file is what '--save-selections' writes from a wizard run,
and can be edited by hand. Missing keys fall back to the wizard defaults.`,
	Example: `  # Generate into the current directory
  nixwright generate --selections host.yaml

  # Generate into /mnt/etc/nixos
  nixwright generate --selections host.yaml --out /mnt/etc/nixos

  # Validate the selections without writing anything
  nixwright generate --selections host.yaml --dry-run`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&selectionsPath, "selections", "s", "", "Selections YAML file (required)")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and print what would be written, without writing")
	generateCmd.MarkFlagRequired("selections")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	st, err := selection.Load(selectionsPath)
	if err != nil {
		return fmt.Errorf("failed to load selections: %w", err)
	}

	if dryRun {
		cfg, err := nixgen.Synthesize(st)
		if err != nil {
			return err
		}
		fmt.Printf("OK: would write %s (%d bytes)\n", output.DiskoFile, len(cfg.Disko))
		if cfg.FlakePath != "" {
			fmt.Printf("OK: system configuration comes from flake %s\n", cfg.FlakePath)
		} else {
			fmt.Printf("OK: would write %s (%d bytes)\n", output.SystemFile, len(cfg.System))
		}
		return nil
	}

	return synthesizeAndWrite(st)
}

// synthesizeAndWrite runs the synthesis engine once over the final state
// and writes the resulting documents.
func synthesizeAndWrite(st *selection.State) error {
	cfg, err := nixgen.Synthesize(st)
	if err != nil {
		return err
	}
	logging.LogSynthesis(len(cfg.System), len(cfg.Disko), cfg.FlakePath)

	result, err := output.Write(cfg, outDir)
	if err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	if result.SystemPath != "" {
		fmt.Printf("Wrote %s\n", result.SystemPath)
	} else {
		fmt.Printf("System configuration comes from flake %s\n", result.FlakePath)
	}
	fmt.Printf("Wrote %s\n", result.DiskoPath)
	if !result.Formatted {
		fmt.Println("Note: no Nix formatter found on PATH; files are unformatted but valid.")
	}
	return nil
}
