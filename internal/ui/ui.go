package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CA8A04"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

// FormatError returns a styled multi-line error message.
func FormatError(title, detail, suggestion string) string {
	out := errorStyle.Render("Error: "+title) + "\n"
	if detail != "" {
		out += "  " + detail + "\n"
	}
	if suggestion != "" {
		out += "  " + hintStyle.Render("Hint: "+suggestion) + "\n"
	}
	return out
}

// Status lines go to stderr so stdout stays clean for the document.

// StageDone prints a styled status when a pipeline stage finishes.
func StageDone(name string) {
	fmt.Fprintf(os.Stderr, "  %s %s\n", successStyle.Render("OK "), name)
}

// StageFailed prints a styled status when a pipeline stage fails.
func StageFailed(name string) {
	fmt.Fprintf(os.Stderr, "  %s %s\n", errorStyle.Render("ERR"), name)
}

// Success prints a green success message to stderr.
func Success(msg string) {
	fmt.Fprintln(os.Stderr, successStyle.Render(msg))
}

// Warn prints a yellow warning message to stderr.
func Warn(msg string) {
	fmt.Fprintln(os.Stderr, warnStyle.Render("Warning: "+msg))
}

// Bold renders text in bold.
func Bold(s string) string {
	return boldStyle.Render(s)
}

// Hint renders text in dim italic.
func Hint(s string) string {
	return hintStyle.Render(s)
}

// Dim renders text in a muted color.
func Dim(s string) string {
	return dimStyle.Render(s)
}

// ValidationOK prints a green check for a valid field.
func ValidationOK(field, detail string) {
	fmt.Printf("  %s %s: %s\n", successStyle.Render("OK "), field, detail)
}

// ValidationErr prints a red error for an invalid field.
func ValidationErr(field, message, suggestion string) {
	fmt.Printf("  %s %s: %s\n", errorStyle.Render("ERR"), field, message)
	if suggestion != "" {
		fmt.Printf("      %s\n", hintStyle.Render("Hint: "+suggestion))
	}
}
