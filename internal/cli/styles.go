// SPDX-License-Identifier: EPL-2.0

// Package cli holds the terminal styling used by sinegen.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor  = lipgloss.Color("#00AFD7")
	errorColor   = lipgloss.Color("#D70000")
	successColor = lipgloss.Color("#00AA00")
	mutedColor   = lipgloss.Color("#888888")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)
)

// Output is where the Print helpers write; tests swap it.
var Output io.Writer = os.Stdout

// PrintTitle prints a bold heading.
func PrintTitle(title string) {
	fmt.Fprintln(Output, TitleStyle.Render(title))
}

// PrintError prints an error message to stderr.
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintSuccess prints a success message.
func PrintSuccess(message string) {
	fmt.Fprintf(Output, "%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintInfo prints a key/value line.
func PrintInfo(key, value string) {
	fmt.Fprintf(Output, "%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}
