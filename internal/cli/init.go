package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/clai-tools/clai/internal/config"
	"github.com/clai-tools/clai/internal/errors"
)

var initForce bool

// initCmd creates a new .clai.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create " + config.ConfigFileName + " configuration",
	Long: `Initialize a clai configuration file in the current directory
with sensible defaults.

Examples:
  clai init
  clai init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

func initCommand(force bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	path := filepath.Join(cwd, config.ConfigFileName)
	if err := config.WriteDefault(path, force); err != nil {
		return err
	}
	return cons.Print("Wrote " + path)
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	rootCmd.AddCommand(initCmd)
}
