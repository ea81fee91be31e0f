package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/agent-workspace/internal"
	"github.com/spf13/cobra"
)

var (
	filesSessionID string
)

var (
	filesHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	filesNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	filesOkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	filesMissingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Bold(true)
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the documents a session would load",
	Long: `List the bootstrap documents a session would load from the workspace,
in injection order.

Required documents always appear and are flagged when missing. Conditional
documents (BOOTSTRAP.md, the memory document, the active profile) appear
only when applicable. Use --session to apply the same role filtering the
runtime applies for subagent and cron sessions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveWorkspace()
		if err != nil {
			return err
		}

		files, err := internal.LoadBootstrapFiles(dir, internal.EnvironmentFromOS())
		if err != nil {
			return fmt.Errorf("failed to load bootstrap files: %w", err)
		}
		files = internal.FilterBootstrapFilesForSession(files, filesSessionID)

		if len(files) == 0 {
			fmt.Println("No bootstrap documents found. Run 'agent-workspace setup' first.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			filesHeaderStyle.Render("#"),
			filesHeaderStyle.Render("DOCUMENT"),
			filesHeaderStyle.Render("STATUS"))
		for i, file := range files {
			status := filesOkStyle.Render(fmt.Sprintf("%d bytes", len(file.Content)))
			if file.Missing {
				status = filesMissingStyle.Render("missing")
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, filesNameStyle.Render(file.Name), status)
		}
		return w.Flush()
	},
}

func init() {
	filesCmd.Flags().StringVar(&filesSessionID, "session", "agent:main", "Session identifier used for role filtering")
	rootCmd.AddCommand(filesCmd)
}
