package tui

import "github.com/charmbracelet/lipgloss"

var accentColors = map[string]lipgloss.Color{
	"indigo":  lipgloss.Color("#6366F1"),
	"violet":  lipgloss.Color("#8B5CF6"),
	"sky":     lipgloss.Color("#0EA5E9"),
	"cyan":    lipgloss.Color("#06B6D4"),
	"emerald": lipgloss.Color("#10B981"),
	"amber":   lipgloss.Color("#F59E0B"),
	"fuchsia": lipgloss.Color("#D946EF"),
	"slate":   lipgloss.Color("#94A3B8"),
}

var (
	brandStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	headlineStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	priceStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	ribbonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#EC4899")).Padding(0, 1)
	markerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#8B5CF6")).Padding(0, 1)
	driftStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#312E81"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#475569")).Padding(0, 1)
)

func accentColor(accent string) lipgloss.Color {
	if c, ok := accentColors[accent]; ok {
		return c
	}
	return accentColors["indigo"]
}

func badgeStyle(accent string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(accentColor(accent)).Padding(0, 1)
}

func cardStyle(accent string, focused, pressed bool) lipgloss.Style {
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	switch {
	case pressed:
		return style.BorderForeground(lipgloss.Color("#475569"))
	case focused:
		return style.Border(lipgloss.ThickBorder()).BorderForeground(accentColor(accent))
	default:
		return style.BorderForeground(lipgloss.Color("#334155"))
	}
}
