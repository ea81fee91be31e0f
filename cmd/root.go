package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/agent-workspace/internal"
	"github.com/spf13/cobra"
)

var (
	verbose       bool
	workspacePath string
	version       string = "dev"
	commit        string = "unknown"
	date          string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "agent-workspace",
	Short: "Prepare and inspect an AI agent's workspace directory",
	Long: `A CLI tool to prepare and maintain the working directory an AI agent
runtime reads at session start.

The workspace holds the agent's identity, user notes, operating
instructions, tool notes, heartbeat duties and long-term memory as plain
markdown documents. This tool decides whether a directory is brand-new,
partially initialized, already onboarded, or a pre-existing workspace that
must never be re-seeded — and assembles the ordered document set a session
injects.

Quick Start:
  agent-workspace setup                  # Initialize (or reconcile) the workspace
  agent-workspace files                  # List the documents a session would load
  agent-workspace export --format jsonl  # Emit the document set for a runtime
  agent-workspace healthcheck            # Diagnose workspace state

The workspace defaults to ~/.agent-workspace (AGENT_HOME overrides the
home directory); use --workspace to point at another directory.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspacePath, "workspace", "w", "", "Workspace directory (default: ~/.agent-workspace)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// resolveWorkspace resolves the workspace directory from the --workspace
// flag or the default location
func resolveWorkspace() (string, error) {
	dir, err := internal.ResolveWorkspacePath(workspacePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve workspace path: %w", err)
	}
	return dir, nil
}
