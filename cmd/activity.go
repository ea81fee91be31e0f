package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/iksnae/agent-workspace/internal"
	"github.com/spf13/cobra"
)

var (
	activityLimit int
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recent workspace activations",
	Long: `Show recent workspace activations recorded by 'setup': when the
workspace was activated, by which session, and what the activation did
(seeded, completed, adopted, noop).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveWorkspace()
		if err != nil {
			return err
		}

		journal, err := internal.OpenJournal(dir)
		if err != nil {
			return fmt.Errorf("failed to open activation journal: %w", err)
		}
		defer journal.Close()

		records, err := journal.Recent(activityLimit)
		if err != nil {
			return fmt.Errorf("failed to read activation journal: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No activations recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tSESSION\tACTION\tCREATED")
		for _, rec := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
				rec.Timestamp.Local().Format(time.RFC3339),
				rec.SessionID, rec.Action, rec.CreatedCount)
		}
		return w.Flush()
	},
}

func init() {
	activityCmd.Flags().IntVarP(&activityLimit, "limit", "n", 20, "Maximum number of activations to show")
	rootCmd.AddCommand(activityCmd)
}
