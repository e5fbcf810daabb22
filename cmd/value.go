package cmd

import (
	"fmt"

	"github.com/envseal/envseal/internal/utils"
	"github.com/envseal/envseal/internal/workflows"

	"github.com/spf13/cobra"
)

var valueKeyFile string

func init() {
	valueCmd.Flags().StringVarP(&valueKeyFile, "key-file", "k", "", "file containing the secret key")
}

var valueCmd = &cobra.Command{
	Use:   "value <encrypted-string>",
	Short: "Decrypt a single pasted value",
	Long: `Decrypts one ENC2:... string and prints the plaintext to stdout.

Useful for inspecting a single value copied out of an env file without
touching the file itself.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secretKey, err := utils.ResolveSecretKey(valueKeyFile)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to obtain secret key: %v", err)
		}

		plaintext, err := workflows.DecryptValue(args[0], secretKey)
		if err != nil {
			return Logger.ErrorfAndReturn("decryption failed: %v", err)
		}

		fmt.Println(plaintext)
		return nil
	},
}
