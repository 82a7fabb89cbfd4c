// Package script runs local shell commands, streaming their output
// through the caller's writers.
package script

import (
	"io"
	"os"
	"os/exec"

	"github.com/clai-tools/clai/internal/errors"
)

// Run executes a command through the user's shell, streaming output to
// the provided writers. Returns the exit code and any execution error;
// a non-zero exit from the command itself is not an error.
func Run(cmd string, workDir string, stdout, stderr io.Writer) (exitCode int, err error) {
	// Use the shell so pipes and redirects work.
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	command := exec.Command(shell, "-c", cmd)
	if workDir != "" {
		command.Dir = workDir
	}
	command.Stdout = stdout
	command.Stderr = stderr

	runErr := command.Run()
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't run the command",
			"Make sure the command exists and is executable.")
	}

	return 0, nil
}
