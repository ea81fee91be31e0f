package internal

import (
	"testing"

	"github.com/iksnae/agent-workspace/testutil"
)

func TestClassifyWorkspace(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string)
		want  WorkspaceClass
	}{
		{
			name:  "empty directory",
			setup: func(t *testing.T, dir string) {},
			want:  WorkspaceNew,
		},
		{
			name: "template files only",
			setup: func(t *testing.T, dir string) {
				// User-editable templates are not evidence of prior use
				testutil.WriteFile(t, dir, "AGENTS.md", "# AGENTS.md\n")
				testutil.WriteFile(t, dir, "IDENTITY.md", "# IDENTITY.md\n")
			},
			want: WorkspaceNew,
		},
		{
			name: "memory subdirectory",
			setup: func(t *testing.T, dir string) {
				testutil.MkDir(t, dir, "memory")
			},
			want: WorkspacePreExisting,
		},
		{
			name: "memory document with content",
			setup: func(t *testing.T, dir string) {
				testutil.WriteFile(t, dir, "MEMORY.md", "# Memory\n\n- a fact\n")
			},
			want: WorkspacePreExisting,
		},
		{
			name: "lowercase memory document with content",
			setup: func(t *testing.T, dir string) {
				testutil.WriteFile(t, dir, "memory.md", "remember this\n")
			},
			want: WorkspacePreExisting,
		},
		{
			name: "empty memory document",
			setup: func(t *testing.T, dir string) {
				testutil.WriteFile(t, dir, "MEMORY.md", "  \n\n")
			},
			want: WorkspaceNew,
		},
		{
			name: "version control metadata",
			setup: func(t *testing.T, dir string) {
				testutil.CreateGitWorkspace(t, dir)
			},
			want: WorkspacePreExisting,
		},
		{
			name: "state record present",
			setup: func(t *testing.T, dir string) {
				if err := SaveWorkspaceState(dir, NewWorkspaceState()); err != nil {
					t.Fatalf("SaveWorkspaceState() error = %v", err)
				}
			},
			want: WorkspaceTracked,
		},
		{
			name: "state record wins over evidence",
			setup: func(t *testing.T, dir string) {
				testutil.CreateLegacyMemoryWorkspace(t, dir)
				if err := SaveWorkspaceState(dir, NewWorkspaceState()); err != nil {
					t.Fatalf("SaveWorkspaceState() error = %v", err)
				}
			},
			want: WorkspaceTracked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := testutil.CreateTempDir(t)
			tt.setup(t, dir)

			if got := ClassifyWorkspace(dir); got != tt.want {
				t.Errorf("ClassifyWorkspace() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyWorkspaceMissingDirectory(t *testing.T) {
	// A path that does not exist must classify as new, not error
	if got := ClassifyWorkspace("/nonexistent/agent-workspace-test"); got != WorkspaceNew {
		t.Errorf("ClassifyWorkspace() = %v, want %v", got, WorkspaceNew)
	}
}

func TestWorkspaceClassString(t *testing.T) {
	tests := []struct {
		class WorkspaceClass
		want  string
	}{
		{WorkspaceNew, "new"},
		{WorkspacePreExisting, "pre-existing"},
		{WorkspaceTracked, "tracked"},
		{WorkspaceClass(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("WorkspaceClass(%d).String() = %q, want %q", tt.class, got, tt.want)
		}
	}
}
