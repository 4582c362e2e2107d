package license

import "github.com/charmbracelet/lipgloss"

var colorGreen = lipgloss.Color("35")

// Styles emphasises parts of the text reports. The zero value disables all
// styling.
type Styles struct {
	License lipgloss.Style // License heading in grouped mode
	Name    lipgloss.Style // Dependency name in one-per-line mode
	Label   lipgloss.Style // The "by" separator before authors

	enabled bool
}

// NewStyles returns bold green names and licenses with a green "by" label.
// Rendering goes through r, so output to a non-terminal stays plain.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		License: r.NewStyle().Bold(true).Foreground(colorGreen),
		Name:    r.NewStyle().Bold(true).Foreground(colorGreen),
		Label:   r.NewStyle().Foreground(colorGreen),
		enabled: true,
	}
}

func (s Styles) paint(style lipgloss.Style, text string) string {
	if !s.enabled || text == "" {
		return text
	}
	return style.Render(text)
}
