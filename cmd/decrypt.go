package cmd

import (
	"fmt"

	"github.com/envseal/envseal/internal/ui"
	"github.com/envseal/envseal/internal/utils"
	"github.com/envseal/envseal/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	decryptVariables []string
	decryptKeyFile   string
	decryptWrite     bool
)

func init() {
	decryptCmd.Flags().StringArrayVarP(&decryptVariables, "var", "V", nil, "variable name to decrypt (repeatable; default: all encrypted)")
	decryptCmd.Flags().StringVarP(&decryptKeyFile, "key-file", "k", "", "file containing the secret key")
	decryptCmd.Flags().BoolVar(&decryptWrite, "write", false, "write plaintext back into the files instead of printing")
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt [files or globs]",
	Short: "Reveal encrypted values from env files",
	Long: `Decrypts encrypted variables and prints them as KEY=VALUE lines.

By default nothing is written: values are only revealed on stdout. Pass
--write to persist the plaintext back into the files (this removes the
protection, so use it deliberately).

A value that cannot be decrypted aborts the whole run. That means the wrong
key or a corrupted file, and partial output would hide it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")

		secretKey, err := utils.ResolveSecretKey(decryptKeyFile)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to obtain secret key: %v", err)
		}

		result, err := workflows.Decrypt(cmd.Context(), workflows.DecryptOptions{
			SecretKey:    secretKey,
			FilePatterns: args,
			Variables:    decryptVariables,
			Write:        decryptWrite,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("decryption failed: %v", err)
		}

		for _, file := range result.Files {
			for _, name := range file.NotFound {
				Logger.WarnfAlways("%s: variable %s not found", file.Path, name)
			}

			if decryptWrite {
				continue
			}
			if len(result.Files) > 1 && len(file.Variables) > 0 {
				fmt.Println(ui.Muted.Sprintf("# %s", file.Path))
			}
			for _, v := range file.Variables {
				fmt.Printf("%s=%s\n", v.Key, v.Value)
			}
		}

		if decryptWrite {
			fmt.Println(ui.Success.Sprint("✓") + " Decrypted values written back " +
				ui.Warning.Sprint("(files now contain plaintext secrets)"))
		}
		return nil
	},
}
