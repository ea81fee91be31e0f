package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/agent-workspace/internal"
	"github.com/spf13/cobra"
)

var (
	setupSessionID string
	setupStateOnly bool
	setupNoJournal bool
)

var (
	setupDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	setupNoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Initialize or reconcile the workspace",
	Long: `Initialize or reconcile the workspace for a session.

Safe to run on every session start: a brand-new directory is seeded with
BOOTSTRAP.md and the template documents, the following run marks onboarding
complete, and a directory that was already in use (memory content or git
metadata present) is adopted without ever being seeded. Missing template
documents are recreated; documents you have edited are never touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveWorkspace()
		if err != nil {
			return err
		}

		result, err := internal.EnsureWorkspace(dir, internal.EnsureOptions{
			EnsureBootstrapFiles: !setupStateOnly,
		})
		if err != nil {
			return fmt.Errorf("workspace setup failed: %w", err)
		}

		switch result.Action {
		case internal.ActionSeeded:
			fmt.Println(setupDoneStyle.Render("✅ Seeded new workspace"), dir)
		case internal.ActionCompleted:
			fmt.Println(setupDoneStyle.Render("✅ Onboarding complete"), dir)
		case internal.ActionAdopted:
			fmt.Println(setupDoneStyle.Render("✅ Adopted pre-existing workspace"), dir)
		default:
			fmt.Println(setupDoneStyle.Render("✅ Workspace ready"), dir)
		}
		for _, name := range result.Created {
			fmt.Println(setupNoteStyle.Render("   created " + name))
		}

		if !setupNoJournal {
			recordActivation(dir, setupSessionID, result)
		}

		return nil
	},
}

// recordActivation appends the outcome to the activation journal. Journal
// failures are logged, never fatal: the journal is observability, not
// workspace state.
func recordActivation(dir, sessionID string, result *internal.EnsureResult) {
	journal, err := internal.OpenJournal(dir)
	if err != nil {
		internal.LogWarn("Skipping activation journal: %v", err)
		return
	}
	defer journal.Close()

	err = journal.Record(internal.ActivationRecord{
		SessionID:    sessionID,
		Action:       string(result.Action),
		CreatedCount: len(result.Created),
	})
	if err != nil {
		internal.LogWarn("Failed to record activation: %v", err)
	}
}

func init() {
	setupCmd.Flags().StringVar(&setupSessionID, "session", "agent:main", "Session identifier for the activation journal")
	setupCmd.Flags().BoolVar(&setupStateOnly, "state-only", false, "Reconcile state only, do not create template documents")
	setupCmd.Flags().BoolVar(&setupNoJournal, "no-journal", false, "Skip recording the activation in the journal")
	rootCmd.AddCommand(setupCmd)
}
