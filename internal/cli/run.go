package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/clai-tools/clai/internal/errors"
	"github.com/clai-tools/clai/internal/logger"
	"github.com/clai-tools/clai/internal/prompt"
	"github.com/clai-tools/clai/internal/script"
	"github.com/clai-tools/clai/internal/ui"
)

// run command flags
var (
	runConfirm bool
	runDir     string
)

// runCmd executes a local command with the waiting indicator animating.
var runCmd = &cobra.Command{
	Use:   "run [command]",
	Short: "Run a command with a waiting indicator",
	Long: `Run a command through your shell, streaming its output through the
console so every line lands whole between animation frames.

Examples:
  clai run "make test"
  clai run --confirm "./migrate.sh"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(strings.Join(args, " "), runDir, runConfirm)
	},
}

func runCommand(command, workDir string, confirm bool) error {
	if confirm {
		ok, err := prompt.Confirm(cons, os.Stdin, fmt.Sprintf("Run %q?", command))
		if err != nil {
			return err
		}
		if !ok {
			return cons.Print("Aborted.")
		}
	}

	logger.Default().Debug("[run] executing %q", command)
	if err := cons.Debug("running: " + command); err != nil {
		return errors.WrapWithCode(err, errors.ErrConsole,
			"Couldn't write to the terminal",
			"Check that stdout is still connected and writable")
	}

	start := time.Now()
	cons.StartWaiting("Running...")
	defer cons.StopWaiting()

	stdout := cons.Writer()
	stderr := cons.ErrorWriter()
	code, err := script.Run(command, workDir, stdout, stderr)
	if flushErr := stdout.Flush(); flushErr != nil && err == nil {
		err = errors.WrapWithCode(flushErr, errors.ErrConsole,
			"Couldn't write command output to the terminal",
			"Check that stdout is still connected and writable")
	}
	if flushErr := stderr.Flush(); flushErr != nil && err == nil {
		err = errors.WrapWithCode(flushErr, errors.ErrConsole,
			"Couldn't write command output to the terminal",
			"Check that stdout is still connected and writable")
	}
	if err != nil {
		return err
	}

	cons.StopWaiting()
	if code != 0 {
		return errors.New(errors.ErrExec,
			fmt.Sprintf("Command exited with code %d", code),
			"Inspect the output above for details")
	}

	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	return cons.Print(fmt.Sprintf("%s done %.1fs",
		ui.Colorize(successStyle, ui.SymbolSuccess), time.Since(start).Seconds()))
}

func init() {
	runCmd.Flags().BoolVar(&runConfirm, "confirm", false, "ask before executing")
	runCmd.Flags().StringVar(&runDir, "dir", "", "working directory for the command")
	rootCmd.AddCommand(runCmd)
}
