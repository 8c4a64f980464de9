package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Main           lipgloss.Style
	Title          lipgloss.Style
	Card           lipgloss.Style
	CardCurrent    lipgloss.Style
	CardTitle      lipgloss.Style
	Peek           lipgloss.Style
	Button         lipgloss.Style
	Dot            lipgloss.Style
	DotActive      lipgloss.Style
	Ellipsis       lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	StatusDragging lipgloss.Style
	StatusPlaying  lipgloss.Style
	Help           lipgloss.Style
	Popup          lipgloss.Style
	Prompt         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		CardCurrent: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")),
		CardTitle:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		Peek:           lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")),
		Button:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Dot:            lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotActive:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		Ellipsis:       lipgloss.NewStyle().Faint(true),
		Dim:            lipgloss.NewStyle().Faint(true),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		StatusError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusDragging: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusPlaying:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Help:           lipgloss.NewStyle().Faint(true).MarginTop(1),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// GetCategoryColor returns the accent color for an item category
func GetCategoryColor(category string) string {
	switch category {
	case "Design":
		return "213" // pink
	case "Development":
		return "33" // blue
	case "Operations":
		return "78" // green
	case "Quality":
		return "214" // yellow
	default:
		return "245" // gray
	}
}
