package internal

import (
	"path/filepath"
	"testing"

	"github.com/iksnae/agent-workspace/testutil"
)

func TestResolveWorkspacePathOverride(t *testing.T) {
	got, err := ResolveWorkspacePath("/tmp/custom-workspace/")
	if err != nil {
		t.Fatalf("ResolveWorkspacePath() error = %v", err)
	}
	if got != "/tmp/custom-workspace" {
		t.Errorf("ResolveWorkspacePath() = %q, want /tmp/custom-workspace", got)
	}
}

func TestDefaultWorkspacePathAgentHome(t *testing.T) {
	home := testutil.CreateTempDir(t)
	t.Setenv(EnvAgentHome, home)

	got, err := DefaultWorkspacePath()
	if err != nil {
		t.Fatalf("DefaultWorkspacePath() error = %v", err)
	}
	want := filepath.Join(home, DefaultWorkspaceDirName)
	if got != want {
		t.Errorf("DefaultWorkspacePath() = %q, want %q", got, want)
	}
}

func TestActiveProfile(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"unset", "", ""},
		{"default sentinel", DefaultProfile, ""},
		{"selector", "mini1", "mini1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvProfile, tt.value)
			if got := ActiveProfile(); got != tt.want {
				t.Errorf("ActiveProfile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProfileFileName(t *testing.T) {
	if got := ProfileFileName("mini1"); got != "PROFILE.mini1.md" {
		t.Errorf("ProfileFileName() = %q, want PROFILE.mini1.md", got)
	}
}

func TestNewWorkspacePaths(t *testing.T) {
	paths := NewWorkspacePaths("/ws")

	if paths.ConfigDir != filepath.Join("/ws", ConfigDirName) {
		t.Errorf("ConfigDir = %q", paths.ConfigDir)
	}
	if paths.StateFile != filepath.Join("/ws", ConfigDirName, StateFileName) {
		t.Errorf("StateFile = %q", paths.StateFile)
	}
	if paths.Journal != filepath.Join("/ws", ConfigDirName, JournalFileName) {
		t.Errorf("Journal = %q", paths.Journal)
	}
	if paths.MemoryDir != filepath.Join("/ws", MemoryDirName) {
		t.Errorf("MemoryDir = %q", paths.MemoryDir)
	}
}
