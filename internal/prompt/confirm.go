// Package prompt asks the user yes/no questions without fighting the
// waiting indicator for the terminal cursor.
package prompt

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/clai-tools/clai/internal/console"
	"github.com/clai-tools/clai/internal/errors"
)

// Confirm asks a yes/no question and returns the answer.
//
// When the console's indicator is animating, the waiting period is
// suspended, the question is asked as a plain [y/N] line read through the
// console, and the waiting period is restored afterwards. The same plain
// path is used when stdin is not a terminal. Otherwise an interactive
// confirm form is shown.
func Confirm(c *console.Console, in io.Reader, title string) (bool, error) {
	interactive := in == os.Stdin && term.IsTerminal(int(os.Stdin.Fd()))

	if c.Active() || !interactive {
		return confirmLine(c, in, title)
	}

	var ok bool
	form := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)
	if err := form.Run(); err != nil {
		return false, errors.WrapWithCode(err, errors.ErrPrompt,
			"Couldn't read your answer",
			"Re-run and answer with y or n")
	}
	return ok, nil
}

// confirmLine is the spinner-aware path: the indicator is stopped while
// the user types and restarted with its previous message afterwards.
func confirmLine(c *console.Console, in io.Reader, title string) (bool, error) {
	if c.Waiting() {
		message := c.WaitingMessage()
		c.StopWaiting()
		defer c.StartWaiting(message)
	}

	if err := c.Print(title + " [y/N]"); err != nil {
		return false, err
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.WrapWithCode(err, errors.ErrPrompt,
			"Couldn't read your answer",
			"Re-run and answer with y or n")
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
