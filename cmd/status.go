package cmd

import (
	"fmt"
	"strings"

	"github.com/envseal/envseal/internal/ui"
	"github.com/envseal/envseal/internal/workflows"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [files or globs]",
	Short: "Show which variables are encrypted and which are not",
	Long: `Inspects env files and reports each variable's protection state.

No secret key is needed: the check only looks at the value's structure, so
it is safe to run anywhere (including CI, to fail a build when plaintext
secrets slip in).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := workflows.Status(cmd.Context(), workflows.StatusOptions{
			FilePatterns: args,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("status failed: %v", err)
		}

		for _, file := range result.Files {
			marker := ui.Success.Sprint("✓")
			if len(file.Plaintext) > 0 {
				marker = ui.Warning.Sprint("⚠")
			}
			fmt.Printf("%s %s %s\n", marker, file.Path,
				ui.Muted.Sprintf("%d encrypted, %d plaintext, %d empty",
					file.Encrypted, len(file.Plaintext), file.Empty))
			if len(file.Plaintext) > 0 {
				fmt.Printf("    plaintext: %s\n", ui.Highlight.Sprint(strings.Join(file.Plaintext, ", ")))
			}
			for _, w := range file.Warnings {
				Logger.WarnfAlways("%s: %s", file.Path, w)
			}
		}

		if !result.FullyEncrypted() {
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("envseal encrypt") + " to protect the remaining values")
		}
		return nil
	},
}
