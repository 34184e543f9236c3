package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/complex-gh/hdkeys"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	maxWidth = 72
)

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd
	headerStyle = lipgloss.NewStyle().Bold(true)
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxWidth
	}
	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

// header prints a section title, bold on a terminal.
func header(w io.Writer, title string) {
	if isTerminal(w) {
		title = headerStyle.Render(title)
	}
	_, _ = fmt.Fprintf(w, "[%s]\n\n", title)
}

// describeError renders the user-facing text of err, spelling out the
// nearest-word suggestion of phrase errors.
func describeError(err error) string {
	var perr *hdkeys.PhraseError
	if errors.As(err, &perr) && perr.Word != "" {
		return perr.Error()
	}
	var pathErr *hdkeys.PathError
	if errors.As(err, &pathErr) {
		return "invalid derivation path: " + pathErr.Error()
	}
	return err.Error()
}

// formatError shows err in a red block on a terminal and returns it so the
// command exits with a non-zero code.
func formatError(err error) error {
	if err == nil {
		return nil
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		b := strings.Builder{}
		w := getWidth(maxWidth)

		b.WriteRune('\n')
		renderBlock(&b, errorStyle, w, describeError(err))
		b.WriteRune('\n')

		fmt.Print(b.String())
	}
	return err
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}
	return ansi
}
