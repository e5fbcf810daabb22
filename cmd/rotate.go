package cmd

import (
	"fmt"

	"github.com/envseal/envseal/internal/ui"
	"github.com/envseal/envseal/internal/utils"
	"github.com/envseal/envseal/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	rotateVariables  []string
	rotateKeyFile    string
	rotateOldKeyFile string
	rotateDryRun     bool
)

func init() {
	rotateCmd.Flags().StringArrayVarP(&rotateVariables, "var", "V", nil, "variable name to rotate (repeatable; default: all)")
	rotateCmd.Flags().StringVarP(&rotateKeyFile, "key-file", "k", "", "file containing the new secret key")
	rotateCmd.Flags().StringVar(&rotateOldKeyFile, "old-key-file", "", "file containing the previous secret key")
	rotateCmd.Flags().BoolVar(&rotateDryRun, "dry-run", false, "preview changes without writing")
}

var rotateCmd = &cobra.Command{
	Use:   "rotate [files or globs]",
	Short: "Re-encrypt all protected values under a new secret key",
	Long: `Rotates the secret key: every encrypted value is decrypted with the old
key and encrypted again under the new one, with a fresh salt and IV.

The new key is read from --key-file (or stdin / prompt); the old key from
--old-key-file. Without --old-key-file the old and new keys are assumed to
be the same, which still refreshes every salt and IV.

If any value fails to decrypt with the old key, the run aborts and nothing
is written. Plaintext values found along the way are encrypted too, so a
rotated file is always fully protected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting rotate command")

		secretKey, err := utils.ResolveSecretKey(rotateKeyFile)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to obtain new secret key: %v", err)
		}

		var oldKey string
		if rotateOldKeyFile != "" {
			oldKey, err = utils.ResolveSecretKey(rotateOldKeyFile)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to obtain previous secret key: %v", err)
			}
		}

		spinner, cleanup := startSpinner("Rotating secret key...")
		defer cleanup()

		result, err := workflows.Encrypt(cmd.Context(), workflows.EncryptOptions{
			SecretKey:    secretKey,
			FilePatterns: args,
			Variables:    rotateVariables,
			Rotate:       true,
			OldSecretKey: oldKey,
			DryRun:       rotateDryRun,
		})
		if err != nil {
			spinner.FinalMSG = color.RedString("✗") + " Rotation failed, no files were modified"
			return err
		}

		var rotated, newly int
		for _, f := range result.Files {
			rotated += f.Rotated
			newly += f.NewlyEncrypted
		}

		msg := color.GreenString("✓") + fmt.Sprintf(" Rotated %d value(s) across %d file(s)", rotated, result.TotalChanged())
		if newly > 0 {
			msg += fmt.Sprintf(", newly encrypted %d", newly)
		}
		if result.DryRun {
			msg = ui.Warning.Sprint("[dry-run] ") + msg
		}
		spinner.FinalMSG = msg
		printReportWarnings(result)
		return nil
	},
}
