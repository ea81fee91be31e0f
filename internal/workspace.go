package internal

import "time"

// EnsureOptions controls a single EnsureWorkspace call
type EnsureOptions struct {
	// EnsureBootstrapFiles materializes missing template documents. When
	// false the call only reconciles the state record.
	EnsureBootstrapFiles bool
}

// EnsureAction identifies what an EnsureWorkspace call did to the workspace
type EnsureAction string

const (
	// ActionNoop means the call changed nothing (terminal onboarded state)
	ActionNoop EnsureAction = "noop"

	// ActionSeeded means a brand-new workspace was seeded with the
	// bootstrap document
	ActionSeeded EnsureAction = "seeded"

	// ActionCompleted means a previously seeded workspace was marked as
	// fully onboarded
	ActionCompleted EnsureAction = "completed"

	// ActionAdopted means a pre-existing workspace was marked as onboarded
	// without ever being seeded
	ActionAdopted EnsureAction = "adopted"
)

// EnsureResult reports the outcome of one EnsureWorkspace call
type EnsureResult struct {
	Action  EnsureAction
	Class   WorkspaceClass // classification observed before any mutation
	Created []string       // documents created by this call
	State   *WorkspaceState
}

// EnsureWorkspace brings a workspace directory to the expected maturity for
// the start of a session. It is idempotent and safe to call on every
// activation.
//
// A brand-new workspace is seeded with the one-time bootstrap document plus
// the required templates; the next call marks onboarding complete, so the
// seed document is visible for exactly one session lifecycle and never
// recreated afterwards — even if the user deletes it. A directory with
// independent evidence of prior use skips seeding entirely and is marked
// onboarded immediately. Once onboarding is complete the only remaining
// work is recreating required templates the user may have deleted.
//
// Template documents are created before the state record is persisted, so
// a failed call leaves the state unchanged and the next call retries the
// same step.
func EnsureWorkspace(dir string, opts EnsureOptions) (*EnsureResult, error) {
	state, err := LoadWorkspaceState(dir)
	if err != nil {
		return nil, err
	}

	result := &EnsureResult{Action: ActionNoop, Class: ClassifyWorkspace(dir)}

	ensureTemplates := func() error {
		if !opts.EnsureBootstrapFiles {
			return nil
		}
		created, err := EnsureTemplateFiles(dir)
		result.Created = append(result.Created, created...)
		return err
	}

	switch {
	case state != nil && state.OnboardingComplete():
		// Terminal: recreate missing templates, never the seed document.
		if err := ensureTemplates(); err != nil {
			return result, err
		}
		result.State = state

	case state != nil && state.Seeded():
		// The seed has had its one session; onboarding is now complete.
		// The seed document is left as-is whether or not it still exists.
		if err := ensureTemplates(); err != nil {
			return result, err
		}
		now := time.Now().UTC()
		state.OnboardingCompletedAt = &now
		if err := SaveWorkspaceState(dir, state); err != nil {
			return result, err
		}
		result.Action = ActionCompleted
		result.State = state
		LogInfo("Workspace onboarding complete: %s", dir)

	case hasPriorUseEvidence(dir):
		// Legacy workspace: never seed, onboarding is complete immediately.
		if err := ensureTemplates(); err != nil {
			return result, err
		}
		if state == nil {
			state = NewWorkspaceState()
		}
		now := time.Now().UTC()
		state.OnboardingCompletedAt = &now
		if err := SaveWorkspaceState(dir, state); err != nil {
			return result, err
		}
		result.Action = ActionAdopted
		result.State = state
		LogInfo("Adopted pre-existing workspace: %s", dir)

	default:
		// Brand new: seed now, defer completion to the next call so the
		// seed document gets one full session of visibility.
		if opts.EnsureBootstrapFiles {
			wrote, err := CreateSeedFile(dir)
			if err != nil {
				return result, err
			}
			if wrote {
				result.Created = append(result.Created, SeedFileName)
			}
		}
		if err := ensureTemplates(); err != nil {
			return result, err
		}
		if state == nil {
			state = NewWorkspaceState()
		}
		now := time.Now().UTC()
		state.BootstrapSeededAt = &now
		if err := SaveWorkspaceState(dir, state); err != nil {
			return result, err
		}
		result.Action = ActionSeeded
		result.State = state
		LogInfo("Seeded new workspace: %s", dir)
	}

	return result, nil
}
