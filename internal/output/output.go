package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorColor   = lipgloss.Color("196")
	warningColor = lipgloss.Color("214")
	successColor = lipgloss.Color("42")
	mutedColor   = lipgloss.Color("241")

	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor)
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)

// Error prints an error message to stderr
func Error(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+fmt.Sprintf(format, args...)))
}

// Warn prints a warning message to stderr
func Warn(format string, args ...any) {
	fmt.Fprintln(os.Stderr, warningStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

// Success prints a confirmation message to stdout
func Success(format string, args ...any) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Muted prints secondary information to stdout
func Muted(format string, args ...any) {
	fmt.Println(mutedStyle.Render(fmt.Sprintf(format, args...)))
}
