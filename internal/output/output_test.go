package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kvernberg/nixwright/internal/nixgen"
)

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := nixgen.Configs{
		System: "{ }\n",
		Disko:  "{ disko = { }; }\n",
	}

	res, err := Write(cfg, dir)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(res.SystemPath)
	if err != nil {
		t.Fatalf("Reading system document: %v", err)
	}
	if string(data) != cfg.System {
		t.Errorf("System document content mismatch: %q", data)
	}

	data, err = os.ReadFile(res.DiskoPath)
	if err != nil {
		t.Fatalf("Reading disko document: %v", err)
	}
	if string(data) != cfg.Disko {
		t.Errorf("Disko document content mismatch: %q", data)
	}
}

func TestWriteFlakePassthrough(t *testing.T) {
	dir := t.TempDir()
	cfg := nixgen.Configs{
		Disko:     "{ }\n",
		FlakePath: "/home/op/flake#host",
	}

	res, err := Write(cfg, dir)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if res.SystemPath != "" {
		t.Error("Expected no system document for flake install")
	}
	if res.FlakePath != cfg.FlakePath {
		t.Errorf("Expected flake path carried through, got %q", res.FlakePath)
	}
	if _, err := os.Stat(filepath.Join(dir, SystemFile)); !os.IsNotExist(err) {
		t.Error("configuration.nix should not exist for flake install")
	}
	if _, err := os.Stat(res.DiskoPath); err != nil {
		t.Errorf("disko.nix should exist: %v", err)
	}
}
