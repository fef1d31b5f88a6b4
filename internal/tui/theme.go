package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name     string
	Border   lipgloss.Color
	Badge    lipgloss.Style
	Label    lipgloss.Style
	Invalid  lipgloss.Style
	Focused  lipgloss.Style
	Dim      lipgloss.Style
	Error    lipgloss.Style
	Notice   lipgloss.Style
	Selected lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:     "Default",
		Border:   lipgloss.Color("63"),
		Badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Padding(0, 1),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Invalid:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
	},
	"dracula": {
		Name:     "Dracula",
		Border:   lipgloss.Color("62"),                                                                                 // Purple
		Badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Padding(0, 1), // White on purple
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),                                      // Cyan
		Invalid:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Italic(true),                                    // Comment
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),                                     // Pink
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
		Notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("215")),            // Orange
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true), // Purple
	},
}

// ThemeFor returns the named theme, falling back to the default.
func ThemeFor(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
