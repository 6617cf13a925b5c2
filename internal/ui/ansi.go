package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects the printers below. Nil keeps the current writer.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// SetColorMode applies "always", "never" or "auto" (terminal detection).
func SetColorMode(mode string) {
	switch strings.ToLower(mode) {
	case "always":
		p := termenv.EnvColorProfile()
		if p == termenv.Ascii {
			p = termenv.ANSI256
		}
		lipgloss.SetColorProfile(p)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func OK(msg string) {
	t := current
	fmt.Fprintln(stdout, t.Success.Render(t.SymOK+" "+msg))
}

func Warn(msg string) {
	t := current
	fmt.Fprintln(stderr, t.Pending.Render(t.SymWarn+" "+msg))
}

func Fail(msg string) {
	t := current
	fmt.Fprintln(stderr, t.Error.Render(t.SymFail+" "+msg))
}

// Println writes a plain line to the standard printer output.
func Println(a ...any) { fmt.Fprintln(stdout, a...) }

func Printf(format string, a ...any) { fmt.Fprintf(stdout, format, a...) }

// ErrOutput is where Warn and Fail write.
func ErrOutput() io.Writer { return stderr }
