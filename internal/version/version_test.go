package version

import (
	"strings"
	"testing"
)

func TestInitPopulatesDefaults(t *testing.T) {
	if Version == "" {
		t.Error("Version must never be empty after init")
	}
	if Commit == "" {
		t.Error("Commit must never be empty after init")
	}
}

func TestFullIncludesVersionAndCommit(t *testing.T) {
	got := Full()
	if !strings.Contains(got, Version) {
		t.Errorf("Full() = %q, missing version %q", got, Version)
	}
	if !strings.Contains(got, Commit) {
		t.Errorf("Full() = %q, missing commit %q", got, Commit)
	}
}
