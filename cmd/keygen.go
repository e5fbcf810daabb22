package cmd

import (
	"encoding/base64"
	"fmt"

	"github.com/envseal/envseal/internal/random"

	"github.com/spf13/cobra"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a random secret key",
	Long: `Generates a 32-byte random secret key and prints it base64-encoded.

Any non-empty string works as a secret key (it is stretched with Argon2id
before use), but a generated key resists guessing in a way a passphrase may
not. Store it in a file readable only by you and pass it with --key-file,
or pipe it in:

  envseal keygen > ~/.envseal.key && chmod 600 ~/.envseal.key
  envseal encrypt --key-file ~/.envseal.key`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := random.Key()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to generate key: %v", err)
		}

		fmt.Println(base64.StdEncoding.EncodeToString(key))
		return nil
	},
}
