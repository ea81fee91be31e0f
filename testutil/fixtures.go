package testutil

import "testing"

// CreateLegacyMemoryWorkspace populates dir with the footprint of a
// workspace that has been in use without ever being tracked: a dated note
// in the memory subdirectory and a long-term memory document, no template
// files
func CreateLegacyMemoryWorkspace(t *testing.T, dir string) {
	t.Helper()
	WriteFile(t, dir, "memory/2026-08-12.md", "# 2026-08-12\n\nShipped the report generator.\n")
	WriteFile(t, dir, "MEMORY.md", "# Memory\n\n- User prefers short answers.\n")
}

// CreateGitWorkspace populates dir with version-control metadata only
func CreateGitWorkspace(t *testing.T, dir string) {
	t.Helper()
	MkDir(t, dir, ".git")
	WriteFile(t, dir, ".git/HEAD", "ref: refs/heads/main\n")
}
