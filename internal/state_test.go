package internal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/iksnae/agent-workspace/testutil"
)

func TestLoadWorkspaceStateMissing(t *testing.T) {
	dir := testutil.CreateTempDir(t)

	state, err := LoadWorkspaceState(dir)
	if err != nil {
		t.Fatalf("LoadWorkspaceState() error = %v", err)
	}
	if state != nil {
		t.Errorf("LoadWorkspaceState() = %+v, want nil for missing state", state)
	}
}

func TestSaveAndLoadWorkspaceState(t *testing.T) {
	dir := testutil.CreateTempDir(t)

	seeded := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	in := NewWorkspaceState()
	in.BootstrapSeededAt = &seeded

	if err := SaveWorkspaceState(dir, in); err != nil {
		t.Fatalf("SaveWorkspaceState() error = %v", err)
	}

	out, err := LoadWorkspaceState(dir)
	if err != nil {
		t.Fatalf("LoadWorkspaceState() error = %v", err)
	}
	if out == nil {
		t.Fatal("LoadWorkspaceState() = nil, want state")
	}
	if out.Version != CurrentStateVersion {
		t.Errorf("Version = %d, want %d", out.Version, CurrentStateVersion)
	}
	if out.BootstrapSeededAt == nil || !out.BootstrapSeededAt.Equal(seeded) {
		t.Errorf("BootstrapSeededAt = %v, want %v", out.BootstrapSeededAt, seeded)
	}
	if out.OnboardingCompletedAt != nil {
		t.Errorf("OnboardingCompletedAt = %v, want nil", out.OnboardingCompletedAt)
	}
}

func TestLoadWorkspaceStateCorrupt(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	testutil.WriteFile(t, dir, filepath.Join(ConfigDirName, StateFileName), "{not json")

	// A corrupt record is a recovery path, not an error
	state, err := LoadWorkspaceState(dir)
	if err != nil {
		t.Fatalf("LoadWorkspaceState() error = %v, want nil", err)
	}
	if state != nil {
		t.Errorf("LoadWorkspaceState() = %+v, want nil for corrupt state", state)
	}
}

func TestStateFileExists(t *testing.T) {
	dir := testutil.CreateTempDir(t)

	if StateFileExists(dir) {
		t.Error("StateFileExists() = true before save")
	}
	if err := SaveWorkspaceState(dir, NewWorkspaceState()); err != nil {
		t.Fatalf("SaveWorkspaceState() error = %v", err)
	}
	if !StateFileExists(dir) {
		t.Error("StateFileExists() = false after save")
	}
}

func TestWorkspaceStatePredicates(t *testing.T) {
	now := time.Now().UTC()
	tests := []struct {
		name         string
		state        WorkspaceState
		wantSeeded   bool
		wantComplete bool
	}{
		{"empty", WorkspaceState{Version: 1}, false, false},
		{"seeded", WorkspaceState{Version: 1, BootstrapSeededAt: &now}, true, false},
		{"complete", WorkspaceState{Version: 1, OnboardingCompletedAt: &now}, false, true},
		{"both", WorkspaceState{Version: 1, BootstrapSeededAt: &now, OnboardingCompletedAt: &now}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Seeded(); got != tt.wantSeeded {
				t.Errorf("Seeded() = %v, want %v", got, tt.wantSeeded)
			}
			if got := tt.state.OnboardingComplete(); got != tt.wantComplete {
				t.Errorf("OnboardingComplete() = %v, want %v", got, tt.wantComplete)
			}
		})
	}
}
