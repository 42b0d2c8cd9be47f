package nixgen

import "fmt"

// SynthesisError reports a selection value that cannot be represented in the
// target format. For validated input this is a programming-contract
// violation, so it carries the exact field for defect reports rather than a
// user-facing hint.
type SynthesisError struct {
	// Field is the selection field holding the offending value,
	// e.g. "hostname" or "users[1].name".
	Field string
	// Reason describes why the value is unrepresentable.
	Reason string
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("cannot represent %s in Nix: %s", e.Field, e.Reason)
}

// IsSynthesisError reports whether err is a SynthesisError.
func IsSynthesisError(err error) bool {
	_, ok := err.(*SynthesisError)
	return ok
}
