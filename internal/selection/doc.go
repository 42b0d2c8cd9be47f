// Package selection holds the installer's selection state: every choice the
// operator makes in the wizard, from hostname to partition layout.
//
// A single State value lives for the whole process. It is owned by the
// navigation engine and mutated field-by-field by whichever page is active.
// Nothing in this package performs I/O; the only behavior beyond plain data
// is requirement validation (MissingRequirements / HasAllRequirements),
// which gates configuration synthesis.
//
// State, Disk, Partition and User all carry yaml tags so a complete set of
// selections can be loaded from a file for the non-interactive generate
// path. Ordering of drives, partitions and users is meaningful and is
// preserved verbatim into the generated documents.
package selection
