package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cargolicense/pkg/license"
)

var (
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
)

const (
	iconError   = "✗"
	iconWarning = "!"
)

// reportStyles builds report styles bound to w's terminal capabilities.
func reportStyles(w io.Writer) license.Styles {
	return license.NewStyles(lipgloss.NewRenderer(w))
}

// printError prints an error message to w.
func printError(w io.Writer, format string, args ...any) {
	r := lipgloss.NewRenderer(w)
	icon := r.NewStyle().Foreground(colorRed).Render(iconError)
	fmt.Fprintln(w, icon+" "+fmt.Sprintf(format, args...))
}

// printWarning prints a warning message to w.
func printWarning(w io.Writer, format string, args ...any) {
	r := lipgloss.NewRenderer(w)
	style := r.NewStyle().Foreground(colorYellow)
	fmt.Fprintln(w, style.Render(iconWarning)+" "+style.Render(fmt.Sprintf(format, args...)))
}
