package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clai-tools/clai/internal/config"
	"github.com/clai-tools/clai/internal/console"
	"github.com/clai-tools/clai/internal/ui"
)

// Persistent flags
var (
	configFlag  string
	debugFlag   bool
	noColorFlag bool
)

// cons is the process-wide console, created once in setup and shared by
// every command for the lifetime of the process.
var cons *console.Console

var rootCmd = &cobra.Command{
	Use:   "clai",
	Short: "AI assistant for your terminal",
	Long: `clai runs commands and answers questions from your terminal,
showing an animated waiting indicator during long operations while
keeping all output clean and ordered.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// setup loads configuration, applies flag overrides, and builds the
// process-wide console.
func setup() error {
	s, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	if debugFlag {
		s.Debug = true
	}
	if noColorFlag {
		s.NoColor = true
	}
	if s.NoColor {
		ui.DisableColors()
	}

	cons = console.New(os.Stdout, s.Debug)
	cons.SetInterval(s.SpinnerInterval)
	cons.SetDefaultMessage(s.WaitingMessage)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "show diagnostic output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Structured errors already carry the failure symbol
		msg := err.Error()
		if !strings.HasPrefix(msg, ui.SymbolFail) {
			msg = ui.SymbolFail + " " + msg
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}
