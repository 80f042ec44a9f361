package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/julianstephens/noteboard/internal/interaction"
	"github.com/julianstephens/noteboard/internal/models"
)

const (
	columnGap       = 1
	boardCardHeight = 4 // border, title, meta, border
	boardHeader     = 2 // column title and rule
	gridCardWidth   = 30
	gridCardHeight  = 5
	minColumnWidth  = 16
)

// bodyHeight is the space left for the active view under the tabs and
// above the status and help lines.
func (m Model) bodyHeight() int {
	chrome := 3
	if m.ctrl.ViewMode().ShowsSearch() {
		chrome++
	}
	return max(6, m.height-chrome)
}

func truncate(s string, width int) string {
	return ansi.Truncate(strings.ReplaceAll(s, "\n", " "), max(1, width), "…")
}

func scrollStart(selected, visible int) int {
	return max(0, selected-visible+1)
}

// card renders a note with a border, lines tall inside the border.
func card(n models.Note, width, lines int, style lipgloss.Style, now time.Time) string {
	inner := max(1, width-4)
	title := lipgloss.NewStyle().Bold(true).Render(truncate(n.Title, inner))

	meta := levelStyle(n.Priority).Render("P:"+string(n.Priority)) + " " +
		levelStyle(n.Effort).Render("E:"+string(n.Effort))
	if n.HasDeadline() {
		due := " due " + *n.Deadline
		if n.IsOverdue(now) {
			meta += overdueStyle.Render(due)
		} else {
			meta += mutedStyle.Render(due)
		}
	}

	rows := []string{title, ansi.Truncate(meta, inner, "…")}
	if lines > 2 {
		rows = append(rows, statusStyle(n.Status).Render(string(n.Status))+" "+
			mutedStyle.Render(truncate(n.Content, inner-lipgloss.Width(string(n.Status))-3)))
	}
	return style.Width(width - 2).Height(lines).Render(strings.Join(rows, "\n"))
}

func (m Model) cardStyleFor(id string, selected bool) lipgloss.Style {
	switch {
	case id == m.ctrl.Drag().DraggedID():
		return draggedCardStyle
	case selected:
		return selectedCardStyle
	default:
		return cardStyle
	}
}

// Board

func (m Model) boardColumnWidth(n int) int {
	if n == 0 {
		return m.width
	}
	return max(minColumnWidth, (m.width-columnGap*(n-1))/n)
}

func (m Model) boardVisibleCards() int {
	return max(1, (m.bodyHeight()-boardHeader-1)/boardCardHeight)
}

func (m Model) selectedBoardNote() (models.Note, interaction.Rect, bool) {
	board := m.ctrl.Board()
	if m.board.col < 0 || m.board.col >= len(board.Columns) {
		return models.Note{}, interaction.Rect{}, false
	}
	notes := board.Columns[m.board.col].Notes
	if m.board.row < 0 || m.board.row >= len(notes) {
		return models.Note{}, interaction.Rect{}, false
	}
	colW := m.boardColumnWidth(len(board.Columns))
	start := scrollStart(m.board.row, m.boardVisibleCards())
	return notes[m.board.row], interaction.Rect{
		X:      m.board.col * (colW + columnGap),
		Y:      boardHeader + (m.board.row-start)*boardCardHeight,
		Width:  colW,
		Height: boardCardHeight,
	}, true
}

func (m Model) viewBoard() string {
	board := m.ctrl.Board()
	colW := m.boardColumnWidth(len(board.Columns))
	visible := m.boardVisibleCards()
	dragging := m.ctrl.Drag().DraggedID() != ""
	now := m.ctrl.Now()

	cols := make([]string, 0, len(board.Columns))
	for i, group := range board.Columns {
		header := columnHeaderStyle
		if dragging && i == m.dropCol {
			header = dropTargetStyle
		}
		parts := []string{
			header.Render(truncate(fmt.Sprintf("%s (%d)", group.Status, len(group.Notes)), colW-2)),
			mutedStyle.Render(strings.Repeat("─", colW)),
		}

		start := 0
		if i == m.board.col {
			start = scrollStart(m.board.row, visible)
		}
		for r := start; r < len(group.Notes) && r < start+visible; r++ {
			n := group.Notes[r]
			selected := i == m.board.col && r == m.board.row
			parts = append(parts, card(n, colW, 2, m.cardStyleFor(n.ID, selected), now))
		}
		if len(group.Notes) == 0 {
			parts = append(parts, mutedStyle.Render("  empty"))
		}
		cols = append(cols, lipgloss.NewStyle().Width(colW).Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}

	out := lipgloss.JoinHorizontal(lipgloss.Top, interleave(cols, strings.Repeat(" ", columnGap))...)
	if n := len(board.Unrecognized); n > 0 {
		out += "\n" + mutedStyle.Render(fmt.Sprintf("%d note(s) with other statuses are not shown", n))
	}
	return out
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, s := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, s)
	}
	return out
}

// Matrix

func (m Model) quadrantSize() (int, int) {
	return max(minColumnWidth, (m.width-columnGap)/2), max(3, m.bodyHeight()/2)
}

func (m Model) selectedMatrixNote() (models.Note, interaction.Rect, bool) {
	buckets := m.ctrl.Matrix()
	if m.matrix.col < 0 || m.matrix.col >= len(buckets) {
		return models.Note{}, interaction.Rect{}, false
	}
	notes := buckets[m.matrix.col].Notes
	if m.matrix.row < 0 || m.matrix.row >= len(notes) {
		return models.Note{}, interaction.Rect{}, false
	}
	qW, qH := m.quadrantSize()
	start := scrollStart(m.matrix.row, qH-1)
	return notes[m.matrix.row], interaction.Rect{
		X:      (m.matrix.col % 2) * (qW + columnGap),
		Y:      (m.matrix.col/2)*qH + 1 + (m.matrix.row - start),
		Width:  qW,
		Height: 1,
	}, true
}

func (m Model) viewMatrix() string {
	buckets := m.ctrl.Matrix()
	qW, qH := m.quadrantSize()
	draggedID := m.ctrl.Drag().DraggedID()
	dragging := draggedID != ""
	now := m.ctrl.Now()

	cells := make([]string, len(buckets))
	for i, bucket := range buckets {
		header := columnHeaderStyle
		if dragging && i == m.dropCol {
			header = dropTargetStyle
		}
		lines := []string{header.Render(bucket.Quadrant.Label()) + " " +
			mutedStyle.Render(truncate(bucket.Quadrant.Caption(), qW-lipgloss.Width(bucket.Quadrant.Label())-4))}

		start := 0
		if i == m.matrix.col {
			start = scrollStart(m.matrix.row, qH-1)
		}
		for r := start; r < len(bucket.Notes) && r < start+qH-1; r++ {
			n := bucket.Notes[r]
			line := "• " + truncate(n.Title, qW-4)
			style := lipgloss.NewStyle()
			switch {
			case n.ID == draggedID:
				style = warningStyle
			case i == m.matrix.col && r == m.matrix.row:
				style = style.Reverse(true)
			case n.IsOverdue(now):
				style = overdueStyle
			}
			lines = append(lines, style.Render(line))
		}
		if len(bucket.Notes) == 0 {
			lines = append(lines, mutedStyle.Render("  empty"))
		}
		cells[i] = lipgloss.NewStyle().Width(qW).Height(qH).MaxHeight(qH).Render(strings.Join(lines, "\n"))
	}

	gap := strings.Repeat(" ", columnGap)
	top := lipgloss.JoinHorizontal(lipgloss.Top, cells[0], gap, cells[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, cells[2], gap, cells[3])
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

// Grid

func (m Model) gridPerRow() int {
	return max(1, (m.width+columnGap)/(gridCardWidth+columnGap))
}

func (m Model) selectedGridNote() (models.Note, interaction.Rect, bool) {
	notes := m.ctrl.VisibleNotes()
	if m.grid < 0 || m.grid >= len(notes) {
		return models.Note{}, interaction.Rect{}, false
	}
	perRow := m.gridPerRow()
	row := m.grid / perRow
	start := scrollStart(row, max(1, m.bodyHeight()/gridCardHeight))
	return notes[m.grid], interaction.Rect{
		X:      (m.grid % perRow) * (gridCardWidth + columnGap),
		Y:      (row - start) * gridCardHeight,
		Width:  gridCardWidth,
		Height: gridCardHeight,
	}, true
}

func (m Model) viewGrid() string {
	notes := m.ctrl.VisibleNotes()
	if len(notes) == 0 {
		return "\n  No notes match.\n  Press 'n' to add one."
	}
	perRow := m.gridPerRow()
	visibleRows := max(1, m.bodyHeight()/gridCardHeight)
	start := scrollStart(m.grid/perRow, visibleRows)
	now := m.ctrl.Now()

	var rows []string
	for r := start; r < start+visibleRows && r*perRow < len(notes); r++ {
		var cards []string
		for c := 0; c < perRow && r*perRow+c < len(notes); c++ {
			i := r*perRow + c
			cards = append(cards, card(notes[i], gridCardWidth, 3, m.cardStyleFor(notes[i].ID, i == m.grid), now))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, interleave(cards, strings.Repeat(" ", columnGap))...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// selectedCard returns the note under the cursor and where it is drawn,
// relative to the top-left of the view body.
func (m Model) selectedCard() (models.Note, interaction.Rect, bool) {
	switch m.ctrl.ViewMode() {
	case models.ViewGrid:
		return m.selectedGridNote()
	case models.ViewBoard:
		return m.selectedBoardNote()
	case models.ViewMatrix:
		return m.selectedMatrixNote()
	}
	return models.Note{}, interaction.Rect{}, false
}

// selectedNote also covers the list view, which has no geometry.
func (m Model) selectedNote() (models.Note, bool) {
	if m.ctrl.ViewMode() == models.ViewList {
		return m.noteList.Selected()
	}
	n, _, ok := m.selectedCard()
	return n, ok
}
