package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/envseal/envseal/internal/configs"
	"github.com/envseal/envseal/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default project configuration file",
	Long: `Creates ` + configs.FileName + ` in the current directory with default
settings, ready to edit:

  files             = []     # default env file patterns
  strict_duplicates = false  # reject duplicate keys instead of last-wins
  audit             = true   # JSONL run log under .envseal/

The config file is optional; every command works without it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := os.Getwd()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to determine working directory: %v", err)
		}

		path := filepath.Join(root, configs.FileName)
		if _, err := os.Stat(path); err == nil {
			Logger.WarnfAlways("%s already exists, leaving it untouched", configs.FileName)
			return nil
		}

		if err := configs.Save(root, configs.DefaultSettings()); err != nil {
			return Logger.ErrorfAndReturn("failed to write config: %v", err)
		}

		fmt.Println(color.GreenString("✓") + " Wrote " + ui.Path.Sprint(configs.FileName))
		return nil
	},
}
