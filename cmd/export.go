package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/agent-workspace/internal"
	"github.com/iksnae/agent-workspace/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat    string
	exportOutput    string
	exportSessionID string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the session document set",
	Long: `Export the bootstrap document set in a machine-readable format.

Formats:
  jsonl    One JSON object per document (default; what runtimes consume)
  json     A single indented JSON array
  yaml     A YAML document
  md       The documents concatenated as one markdown file

Writes to stdout unless --output is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveWorkspace()
		if err != nil {
			return err
		}

		files, err := internal.LoadBootstrapFiles(dir, internal.EnvironmentFromOS())
		if err != nil {
			return fmt.Errorf("failed to load bootstrap files: %w", err)
		}
		files = internal.FilterBootstrapFilesForSession(files, exportSessionID)

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		if err := exporter.Export(files, out); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			internal.LogInfo("Exported %d documents to %s", len(files), exportOutput)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "jsonl", "Export format (jsonl, json, yaml, md)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSessionID, "session", "agent:main", "Session identifier used for role filtering")
	rootCmd.AddCommand(exportCmd)
}
