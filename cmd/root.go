package cmd

import (
	logger "github.com/envseal/envseal/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "envseal",
		Short: "Encrypt individual secrets inside your .env files",
		Long: `envseal protects individual values inside plain-text env files using
password-derived authenticated encryption.

Each value is encrypted with AES-256-GCM under keys derived from your secret
key with Argon2id, and carries its own salt, IV, and authentication tag:

  DB_PASSWORD=ENC2:<salt>:<iv>:<ciphertext>:<mac>

Comments, blank lines, and key ordering in your files are preserved.
Re-running encrypt is a no-op for values that are already protected, and
key rotation re-encrypts everything under a new secret.

Run 'envseal help <command>' for more details on a specific command.`,
		// Runtime failures should not dump help text over the error.
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing envseal with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(valueCmd)
	RootCmd.AddCommand(rotateCmd)
	RootCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(keygenCmd)
	RootCmd.AddCommand(logCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false

	for _, cmd := range RootCmd.Commands() {
		if cmd.Flags() != nil {
			cmd.Flags().VisitAll(func(flag *pflag.Flag) {
				// Slice flags (e.g. StringArray) report DefValue as "[]";
				// passing that to Set would store a literal "[]" element,
				// so reset them through the SliceValue interface instead.
				if sv, ok := flag.Value.(pflag.SliceValue); ok {
					_ = sv.Replace(nil)
				} else {
					_ = flag.Value.Set(flag.DefValue)
				}
				flag.Changed = false
			})
		}
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
