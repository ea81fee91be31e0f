package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/agent-workspace/internal"
	"github.com/spf13/cobra"
)

var (
	healthcheckVerbose bool
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check workspace location, state and documents",
	Long: `Check the health of the workspace by verifying:
  • Workspace path resolution
  • Workspace classification (new, pre-existing, tracked)
  • State record validity
  • Bootstrap document availability
  • Active profile document

This command is useful for debugging setup issues, especially on hosts
where AGENT_HOME or AGENT_PROFILE are set by a supervisor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("🔍 Agent Workspace Health Check"))
		fmt.Println()

		// Step 1: Resolve the workspace path
		fmt.Println(infoStyle.Render("Step 1: Resolving workspace path..."))
		dir, err := resolveWorkspace()
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Failed to resolve workspace path:"), err)
			os.Exit(1)
		}
		fmt.Println(successStyle.Render("✅ Workspace path resolved"))
		if healthcheckVerbose {
			fmt.Printf("   Workspace: %s\n", dir)
			fmt.Printf("   AGENT_HOME: %q\n", os.Getenv(internal.EnvAgentHome))
		}
		fmt.Println()

		// Step 2: Classify the workspace
		fmt.Println(infoStyle.Render("Step 2: Classifying workspace..."))
		class := internal.ClassifyWorkspace(dir)
		switch class {
		case internal.WorkspaceTracked:
			fmt.Println(successStyle.Render("✅ Workspace is tracked"))
		case internal.WorkspacePreExisting:
			fmt.Println(warningStyle.Render("⚠️  Pre-existing workspace, not yet tracked (setup will adopt it)"))
		default:
			fmt.Println(warningStyle.Render("⚠️  New workspace (setup will seed it)"))
		}
		fmt.Println()

		// Step 3: Inspect the state record
		fmt.Println(infoStyle.Render("Step 3: Checking state record..."))
		state, err := internal.LoadWorkspaceState(dir)
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Failed to read state record:"), err)
			os.Exit(1)
		}
		switch {
		case state == nil:
			fmt.Println(warningStyle.Render("⚠️  No state record"))
		case state.OnboardingComplete():
			fmt.Println(successStyle.Render("✅ Onboarding complete"))
			if healthcheckVerbose {
				fmt.Printf("   Completed: %s\n", state.OnboardingCompletedAt)
			}
		case state.Seeded():
			fmt.Println(warningStyle.Render("⚠️  Seeded, onboarding pending (next setup completes it)"))
			if healthcheckVerbose {
				fmt.Printf("   Seeded: %s\n", state.BootstrapSeededAt)
			}
		default:
			fmt.Println(warningStyle.Render("⚠️  State record present but empty"))
		}
		fmt.Println()

		// Step 4: Load the bootstrap documents
		fmt.Println(infoStyle.Render("Step 4: Loading bootstrap documents..."))
		env := internal.EnvironmentFromOS()
		files, err := internal.LoadBootstrapFiles(dir, env)
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Failed to load bootstrap documents:"), err)
			os.Exit(1)
		}
		var missing int
		for _, file := range files {
			if file.Missing {
				missing++
				if healthcheckVerbose {
					fmt.Printf("   missing: %s\n", file.Name)
				}
			}
		}
		if missing == 0 {
			fmt.Println(successStyle.Render(fmt.Sprintf("✅ Loaded %d document(s)", len(files))))
		} else {
			fmt.Println(warningStyle.Render(fmt.Sprintf("⚠️  Loaded %d document(s), %d required document(s) missing", len(files), missing)))
		}
		fmt.Println()

		// Step 5: Check the active profile
		fmt.Println(infoStyle.Render("Step 5: Checking profile..."))
		if env.Profile == "" {
			fmt.Println(successStyle.Render("✅ No profile active"))
		} else {
			name := internal.ProfileFileName(env.Profile)
			found := false
			for _, file := range files {
				if file.Name == name {
					found = true
					break
				}
			}
			if found {
				fmt.Println(successStyle.Render("✅ Profile document loaded:"), name)
			} else {
				fmt.Println(warningStyle.Render("⚠️  Profile selected but document not found:"), name)
			}
		}

		return nil
	},
}

func init() {
	healthcheckCmd.Flags().BoolVar(&healthcheckVerbose, "verbose-output", false, "Show detailed diagnostic output")
	rootCmd.AddCommand(healthcheckCmd)
}
