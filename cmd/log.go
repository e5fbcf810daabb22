package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/envseal/envseal/internal/audit"
	"github.com/envseal/envseal/internal/ui"

	"github.com/spf13/cobra"
)

var logLimit int

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "number of recent entries to show (0 for all)")
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the audit log of past runs",
	Long: `Prints recent entries from .envseal/audit.jsonl, newest last.

Every non-dry-run encrypt, rotate, and decrypt --write appends an entry with
a run ID, the files touched, and per-variable counts. No secret material is
ever logged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := os.Getwd()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to determine working directory: %v", err)
		}

		entries, err := audit.ReadEntries(root)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read audit log: %v", err)
		}
		if len(entries) == 0 {
			fmt.Println(ui.Muted.Sprint("no audit entries"))
			return nil
		}

		if logLimit > 0 && len(entries) > logLimit {
			entries = entries[len(entries)-logLimit:]
		}

		for _, e := range entries {
			fmt.Printf("%s %s %s\n", ui.Muted.Sprint(e.Timestamp), ui.Highlight.Sprint(e.Operation), shortRunID(e.RunID))
			if len(e.Files) > 0 {
				fmt.Printf("    files: %s\n", strings.Join(e.Files, ", "))
			}
			if counts := formatCounts(e); counts != "" {
				fmt.Printf("    %s\n", counts)
			}
		}
		return nil
	},
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatCounts(e audit.Entry) string {
	var parts []string
	if e.NewlyEncrypted > 0 {
		parts = append(parts, fmt.Sprintf("%d encrypted", e.NewlyEncrypted))
	}
	if e.Rotated > 0 {
		parts = append(parts, fmt.Sprintf("%d rotated", e.Rotated))
	}
	if e.SkippedEncrypted > 0 {
		parts = append(parts, fmt.Sprintf("%d already encrypted", e.SkippedEncrypted))
	}
	if e.SkippedEmpty > 0 {
		parts = append(parts, fmt.Sprintf("%d empty", e.SkippedEmpty))
	}
	if e.NotFound > 0 {
		parts = append(parts, fmt.Sprintf("%d not found", e.NotFound))
	}
	return strings.Join(parts, ", ")
}
