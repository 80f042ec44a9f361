package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/julianstephens/noteboard/internal/constants"
	"github.com/julianstephens/noteboard/internal/interaction"
	"github.com/julianstephens/noteboard/internal/models"
	"github.com/julianstephens/noteboard/internal/utils"
)

const previewMaxWidth = 44

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateEditNote, constants.StateHabitForm:
		content = docStyle.Render(m.form.View())
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = m.viewBody()
	}

	sections := []string{m.viewTabs()}
	if m.ctrl.ViewMode().ShowsSearch() && m.state != constants.StateEditNote {
		sections = append(sections, m.search.View())
	}
	sections = append(sections, content, m.viewStatus(), m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, mode := range models.ViewModes {
		if m.ctrl.ViewMode() == mode {
			tabs = append(tabs, activeTabStyle.Render(mode.Label()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(mode.Label()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewBody() string {
	var body string
	switch m.ctrl.ViewMode() {
	case models.ViewGrid:
		body = m.viewGrid()
	case models.ViewList:
		body = m.noteList.View()
	case models.ViewBoard:
		body = m.viewBoard()
	case models.ViewMatrix:
		body = m.viewMatrix()
	case models.ViewHabitTracker:
		body = docStyle.Render(m.habitsModel.View())
	}
	body = lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(body)

	if id, anchor, ok := m.ctrl.Drag().Preview(); ok {
		if n, found := m.ctrl.Note(id); found {
			body = m.overlayPreview(body, n, anchor)
		}
	}
	return body
}

func (m Model) previewCard(n models.Note) string {
	width := min(previewMaxWidth, max(minColumnWidth, m.width-4))
	inner := width - 4
	now := m.ctrl.Now()

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(truncate(n.Title, inner)),
		statusStyle(n.Status).Render(string(n.Status)) + " " +
			levelStyle(n.Priority).Render("Priority "+string(n.Priority)) + " · " +
			levelStyle(n.Effort).Render("Effort "+string(n.Effort)),
	}
	if n.HasDeadline() {
		due := "Due " + *n.Deadline
		if n.IsOverdue(now) {
			lines = append(lines, overdueStyle.Render(due+" (overdue)"))
		} else {
			lines = append(lines, due)
		}
	}
	if strings.TrimSpace(n.Content) != "" {
		wrapped := lipgloss.NewStyle().Width(inner).Render(n.Content)
		body := strings.Split(wrapped, "\n")
		if len(body) > 6 {
			body = append(body[:5], "…")
		}
		lines = append(lines, "")
		lines = append(lines, body...)
	}
	lines = append(lines, mutedStyle.Render("Edited "+utils.FormatRelativeDay(n.UpdatedAt, now)))

	return previewStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// overlayPreview draws the preview card over base, placed next to anchor.
func (m Model) overlayPreview(base string, n models.Note, anchor interaction.Rect) string {
	cardView := m.previewCard(n)
	size := interaction.Size{Width: lipgloss.Width(cardView), Height: lipgloss.Height(cardView)}
	viewport := interaction.Size{Width: m.width, Height: m.bodyHeight()}
	pt := interaction.PlacePreview(anchor, size, viewport)
	return overlay(base, cardView, pt.X, pt.Y)
}

// overlay writes top onto base with its top-left corner at (x, y).
func overlay(base, top string, x, y int) string {
	lines := strings.Split(base, "\n")
	for i, row := range strings.Split(top, "\n") {
		at := y + i
		if at < 0 {
			continue
		}
		for at >= len(lines) {
			lines = append(lines, "")
		}
		line := lines[at]
		if w := ansi.StringWidth(line); w < x {
			line += strings.Repeat(" ", x-w)
		}
		left := ansi.Truncate(line, x, "")
		right := ansi.TruncateLeft(line, x+ansi.StringWidth(row), "")
		lines[at] = left + row + right
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return warningStyle.Render(m.status)
	}
	return infoStyle.Render(m.status)
}

func (m Model) viewConfirmDelete() string {
	what := "note"
	if m.deleteHabit {
		what = "habit"
	}
	return lipgloss.Place(m.width, m.bodyHeight(),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %s %q?", what, m.deleteName)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
