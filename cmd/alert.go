package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	colorize "github.com/fatih/color"
	"golang.org/x/term"
)

// terminalNotifier prints alerts in red and, on an interactive terminal,
// blocks until the user presses Enter.
type terminalNotifier struct {
	out     io.Writer
	in      *os.File
	confirm bool
}

func newTerminalNotifier(confirm bool) *terminalNotifier {
	return &terminalNotifier{
		out:     os.Stderr,
		in:      os.Stdin,
		confirm: confirm,
	}
}

func (n *terminalNotifier) Alert(message string) {
	fmt.Fprintln(n.out, colorize.New(colorize.FgRed, colorize.Bold).Sprint(message))

	if !n.confirm || n.in == nil || !term.IsTerminal(int(n.in.Fd())) {
		return
	}

	fmt.Fprint(n.out, colorize.HiBlackString("[Enter] "))
	_, _ = bufio.NewReader(n.in).ReadString('\n')
}
