// Package output writes the synthesized documents to disk and hands them to
// the external formatter. Everything here is presentation-side plumbing:
// correctness of the documents is established before they arrive.
package output

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kvernberg/nixwright/internal/logging"
	"github.com/kvernberg/nixwright/internal/nixgen"
)

// File names of the generated artifacts.
const (
	SystemFile = "configuration.nix"
	DiskoFile  = "disko.nix"
)

// formatters are tried in order; the first one found on PATH is used.
var formatters = []string{"alejandra", "nixfmt"}

// Result reports what was written where.
type Result struct {
	// SystemPath is empty when a flake path superseded the generated
	// system document.
	SystemPath string
	DiskoPath  string
	// FlakePath is carried through from the Configs, if set.
	FlakePath string
	// Formatted is true when an external formatter ran successfully.
	Formatted bool
}

// Write materializes the documents under dir, creating it if needed, then
// runs the cosmetic formatting pass. Formatter failures are logged and
// ignored: the documents are already syntactically valid.
func Write(cfg nixgen.Configs, dir string) (Result, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Result{}, fmt.Errorf("create output directory: %w", err)
	}

	res := Result{FlakePath: cfg.FlakePath}

	res.DiskoPath = filepath.Join(dir, DiskoFile)
	if err := os.WriteFile(res.DiskoPath, []byte(cfg.Disko), 0644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", DiskoFile, err)
	}

	if cfg.FlakePath == "" {
		res.SystemPath = filepath.Join(dir, SystemFile)
		if err := os.WriteFile(res.SystemPath, []byte(cfg.System), 0644); err != nil {
			return Result{}, fmt.Errorf("write %s: %w", SystemFile, err)
		}
	}

	res.Formatted = format(res.DiskoPath, res.SystemPath)
	return res, nil
}

// format pretty-prints the written files with the first available external
// formatter. Purely cosmetic; any failure leaves the files as written.
func format(paths ...string) bool {
	var tool string
	for _, f := range formatters {
		if _, err := exec.LookPath(f); err == nil {
			tool = f
			break
		}
	}
	if tool == "" {
		logging.Debug("No Nix formatter found, skipping pretty-print")
		return false
	}

	ok := true
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := exec.Command(tool, p).Run(); err != nil {
			logging.Warn("Formatter failed",
				zap.String("tool", tool),
				zap.String("path", p),
				zap.Error(err))
			ok = false
		}
	}
	return ok
}
