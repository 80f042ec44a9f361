package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/noteboard/internal/models"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("205"))

	draggedCardStyle = cardStyle.
				BorderStyle(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("214"))

	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1)

	dropTargetStyle = columnHeaderStyle.
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214"))

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// statusStyle colors a status tag. Unrecognized statuses are gray.
func statusStyle(s models.Status) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	switch s {
	case models.StatusTodo:
		return base.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39"))
	case models.StatusInProgress:
		return base.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214"))
	case models.StatusCompleted:
		return base.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42"))
	default:
		return base.Foreground(lipgloss.Color("252")).Background(lipgloss.Color("240"))
	}
}

func levelStyle(l models.Level) lipgloss.Style {
	if l == models.LevelHigh {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	}
	return mutedStyle
}
