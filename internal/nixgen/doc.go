// Package nixgen turns a finalized selection state into the two declarative
// documents the external tooling consumes: a NixOS system configuration
// (configuration.nix) and a disko disk-provisioning expression (disko.nix).
//
// Synthesize is a pure function: it never touches the filesystem, and
// identical input always yields byte-identical output. Callers must check
// selection.State.HasAllRequirements before invoking it; a value that cannot
// be represented in Nix string syntax is a contract violation and is
// reported as a SynthesisError naming the offending field.
//
// When the state carries a flake path, the system document is not generated
// at all - the returned Configs carries the path and the operator's own
// configuration is used instead.
package nixgen
