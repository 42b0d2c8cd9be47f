package nixgen

import (
	"fmt"

	"github.com/kvernberg/nixwright/internal/selection"
)

// Configs holds the synthesized output documents. It is created once per run
// and never mutated afterwards; ownership passes to the output step.
type Configs struct {
	// System is the configuration.nix text. Empty when FlakePath is set.
	System string
	// Disko is the disk-provisioning document text.
	Disko string
	// FlakePath, when non-empty, points at the operator's own flake
	// configuration which supersedes the generated system document.
	FlakePath string
}

// Synthesize transforms a finalized selection state into the output
// documents. It must only be called once HasAllRequirements holds; calling
// it earlier is a caller bug and is rejected rather than producing an
// incomplete document.
//
// The transform is deterministic: the same state always yields byte-identical
// documents. Failures name the offending selection field.
func Synthesize(st *selection.State) (Configs, error) {
	if missing := st.MissingRequirements(); len(missing) != 0 {
		return Configs{}, fmt.Errorf("selection state incomplete: missing %v", missing)
	}

	disko, err := DiskoDocument(st)
	if err != nil {
		return Configs{}, err
	}

	if st.FlakePath != "" {
		// The operator's flake supersedes the generated system document.
		return Configs{Disko: disko, FlakePath: st.FlakePath}, nil
	}

	system, err := SystemDocument(st)
	if err != nil {
		return Configs{}, err
	}

	return Configs{System: system, Disko: disko}, nil
}
