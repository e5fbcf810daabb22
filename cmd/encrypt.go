package cmd

import (
	"fmt"
	"strings"

	"github.com/envseal/envseal/internal/ui"
	"github.com/envseal/envseal/internal/utils"
	"github.com/envseal/envseal/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	encryptVariables  []string
	encryptKeyFile    string
	encryptDryRun     bool
	encryptRotate     bool
	encryptOldKeyFile string
)

func init() {
	encryptCmd.Flags().StringArrayVarP(&encryptVariables, "var", "V", nil, "variable name to encrypt (repeatable; default: all)")
	encryptCmd.Flags().StringVarP(&encryptKeyFile, "key-file", "k", "", "file containing the secret key")
	encryptCmd.Flags().BoolVar(&encryptDryRun, "dry-run", false, "preview changes without writing")
	encryptCmd.Flags().BoolVar(&encryptRotate, "rotate", false, "re-encrypt already-encrypted values under the key")
	encryptCmd.Flags().StringVar(&encryptOldKeyFile, "old-key-file", "", "file containing the previous secret key (with --rotate)")
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt [files or globs]",
	Short: "Encrypt plaintext values in env files",
	Long: `Encrypts variable values in env files in place.

Each value gets a fresh salt and IV, so two encryptions of the same value
never produce the same output. Values that are already encrypted are left
untouched, making the command safe to re-run. Files are only rewritten when
at least one value changed.

The secret key is read from --key-file, piped stdin, or an interactive
prompt. It is never read from an environment variable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")

		secretKey, err := utils.ResolveSecretKey(encryptKeyFile)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to obtain secret key: %v", err)
		}

		var oldKey string
		if encryptRotate && encryptOldKeyFile != "" {
			oldKey, err = utils.ResolveSecretKey(encryptOldKeyFile)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to obtain previous secret key: %v", err)
			}
		}

		spinner, cleanup := startSpinner("Encrypting env file values...")
		defer cleanup()

		result, err := workflows.Encrypt(cmd.Context(), workflows.EncryptOptions{
			SecretKey:    secretKey,
			FilePatterns: args,
			Variables:    encryptVariables,
			Rotate:       encryptRotate,
			OldSecretKey: oldKey,
			DryRun:       encryptDryRun,
		})
		if err != nil {
			// FinalMSG shows the outcome on the spinner line; the error
			// itself propagates so the process exits nonzero.
			spinner.FinalMSG = color.RedString("✗") + " Encryption failed, no files were modified"
			return err
		}

		spinner.FinalMSG = formatEncryptResult(result)
		printReportWarnings(result)
		return nil
	},
}

func formatEncryptResult(result *workflows.EncryptResult) string {
	var newly, rotated, skipped, empty, notFound int
	for _, f := range result.Files {
		newly += f.NewlyEncrypted
		rotated += f.Rotated
		skipped += f.SkippedEncrypted
		empty += f.SkippedEmpty
		notFound += f.NotFound
	}

	if newly == 0 && rotated == 0 && !result.DryRun {
		return color.GreenString("✓") + " Nothing to do: all selected values are already encrypted " +
			ui.Muted.Sprintf("%d skipped", skipped)
	}

	var b strings.Builder
	if result.DryRun {
		b.WriteString(ui.Warning.Sprint("[dry-run] "))
	}
	b.WriteString(color.GreenString("✓") + fmt.Sprintf(" Encrypted %d value(s) across %d file(s)", newly, result.TotalChanged()))
	if rotated > 0 {
		b.WriteString(fmt.Sprintf(", rotated %d", rotated))
	}
	if skipped > 0 {
		b.WriteString(ui.Muted.Sprintf(" %d already encrypted", skipped))
	}
	if empty > 0 || notFound > 0 {
		b.WriteString("\n" + ui.Warning.Sprintf("⚠ %d empty, %d not found", empty, notFound))
	}
	for _, f := range result.Files {
		if f.Changed {
			b.WriteString("\n    " + ui.Path.Sprint(f.Path))
		}
	}
	return b.String()
}

func printReportWarnings(result *workflows.EncryptResult) {
	for _, f := range result.Files {
		for _, w := range f.Warnings {
			Logger.WarnfAlways("%s: %s", f.Path, w)
		}
	}
}
