package internal

import (
	"encoding/json"
	"os"
	"time"
)

// CurrentStateVersion is the schema version written to new state records
const CurrentStateVersion = 1

// WorkspaceState is the persisted per-workspace state record.
// Both timestamps are optional: bootstrapSeededAt is set the first time
// seed content is created for a brand-new workspace, and
// onboardingCompletedAt is set once onboarding is finished. Once set,
// onboardingCompletedAt is never cleared.
type WorkspaceState struct {
	Version               int        `json:"version"`
	BootstrapSeededAt     *time.Time `json:"bootstrapSeededAt,omitempty"`
	OnboardingCompletedAt *time.Time `json:"onboardingCompletedAt,omitempty"`
}

// NewWorkspaceState creates an empty state record at the current version
func NewWorkspaceState() *WorkspaceState {
	return &WorkspaceState{Version: CurrentStateVersion}
}

// Seeded reports whether seed content has been created for this workspace
func (s *WorkspaceState) Seeded() bool {
	return s.BootstrapSeededAt != nil
}

// OnboardingComplete reports whether onboarding has finished
func (s *WorkspaceState) OnboardingComplete() bool {
	return s.OnboardingCompletedAt != nil
}

// LoadWorkspaceState loads the state record for a workspace.
// A missing state file returns (nil, nil). A corrupt state file is treated
// the same as a missing one so a broken record never blocks progress; the
// next save rewrites it wholesale. Other read failures are surfaced.
func LoadWorkspaceState(dir string) (*WorkspaceState, error) {
	paths := NewWorkspacePaths(dir)

	data, err := os.ReadFile(paths.StateFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StateError{Path: paths.StateFile, Op: "read", Err: err}
	}

	var state WorkspaceState
	if err := json.Unmarshal(data, &state); err != nil {
		LogWarn("Ignoring unparseable workspace state at %s: %v", paths.StateFile, err)
		return nil, nil
	}

	return &state, nil
}

// SaveWorkspaceState persists the state record, creating the hidden
// configuration directory when needed. The record is written to a
// temporary file and renamed into place so readers never see a partial
// write.
func SaveWorkspaceState(dir string, state *WorkspaceState) error {
	paths := NewWorkspacePaths(dir)

	if err := os.MkdirAll(paths.ConfigDir, 0755); err != nil {
		return &StateError{Path: paths.ConfigDir, Op: "write", Err: err}
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return &StateError{Path: paths.StateFile, Op: "write", Err: err}
	}
	data = append(data, '\n')

	tmp := paths.StateFile + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &StateError{Path: tmp, Op: "write", Err: err}
	}
	if err := os.Rename(tmp, paths.StateFile); err != nil {
		os.Remove(tmp)
		return &StateError{Path: paths.StateFile, Op: "write", Err: err}
	}

	return nil
}

// StateFileExists checks whether a workspace has a state record on disk
func StateFileExists(dir string) bool {
	_, err := os.Stat(NewWorkspacePaths(dir).StateFile)
	return err == nil
}
