package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verdantledger/marketpub/internal/core/domain"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// styled applies style only when writing to a terminal.
func styled(w io.Writer, style lipgloss.Style, s string) string {
	if !isTerminal(w) {
		return s
	}
	return style.Render(s)
}

// reportViolations prints every violation, one per line.
func reportViolations(w io.Writer, source string, vErr *domain.ValidationError) {
	n := len(vErr.Violations)
	noun := "violations"
	if n == 1 {
		noun = "violation"
	}
	fmt.Fprintln(w, styled(w, headingStyle, fmt.Sprintf("%s: %d schema %s", source, n, noun)))
	for _, v := range vErr.Violations {
		if v.Path == "" {
			fmt.Fprintf(w, "  - %s\n", v.Reason)
			continue
		}
		fmt.Fprintf(w, "  - %s: %s\n", styled(w, pathStyle, v.Path), v.Reason)
	}
}

// colorDiff highlights the -/+ lines of a cmp.Diff report.
func colorDiff(w io.Writer, diff string) string {
	if !isTerminal(w) {
		return diff
	}
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
