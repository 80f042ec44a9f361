package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/noteboard/internal/constants"
	"github.com/julianstephens/noteboard/internal/controller"
	"github.com/julianstephens/noteboard/internal/interaction"
	"github.com/julianstephens/noteboard/internal/logger"
	"github.com/julianstephens/noteboard/internal/models"
	"github.com/julianstephens/noteboard/internal/notifier"
	"github.com/julianstephens/noteboard/internal/tui/components/habits"
	"github.com/julianstephens/noteboard/internal/tui/components/notelist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if err := m.ctrl.TakeWarning(); err != nil {
		m.setError("Could not save: " + err.Error())
	}
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(size)
	}

	switch m.state {
	case constants.StateEditNote, constants.StateHabitForm:
		return m.updateForm(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case constants.StateSearch:
		return m.updateSearch(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.refresh()

	case notelist.EditNoteMsg:
		return m.editNote(msg.ID)
	case notelist.DeleteNoteMsg:
		m.confirmDeleteNote(msg.ID)
	case notelist.CycleStatusMsg:
		m.cycleStatus(msg.ID)

	case habits.AddHabitMsg:
		return m.openHabitForm("", "")
	case habits.RenameHabitMsg:
		return m.openHabitForm(msg.ID, msg.Name)
	case habits.DeleteHabitMsg:
		m.deleteID, m.deleteName, m.deleteHabit = msg.ID, msg.Name, true
		m.state = constants.StateConfirmDelete
	case habits.ToggleHabitMsg:
		if _, err := m.ctrl.ToggleCompletion(msg.ID, msg.Day); err != nil {
			m.setError(err.Error())
		}
		m.refresh()
	case habits.MonthChangedMsg:
		m.habitsModel.SetGrid(m.ctrl.HabitMonth(msg.Month))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) resize(size tea.WindowSizeMsg) {
	m.width = size.Width
	m.height = size.Height
	m.help.Width = size.Width
	m.search.Width = max(10, size.Width-4)
	m.noteList.SetSize(size.Width, m.bodyHeight())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.ctrl.Drag().State() == interaction.Dragging {
		return m.handleDragKey(msg)
	}

	mode := m.ctrl.ViewMode()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Tab):
		m.switchView(1)
		return nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.switchView(-1)
		return nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Export):
		m.export()
		return nil
	case mode != models.ViewHabitTracker && key.Matches(msg, m.keys.New):
		n := m.ctrl.CreateNote()
		m.refresh()
		return m.openNoteForm(n)
	case mode.ShowsSearch() && key.Matches(msg, m.keys.Search):
		m.state = constants.StateSearch
		m.ctrl.Unhover()
		return m.search.Focus()
	}

	var cmd tea.Cmd
	switch mode {
	case models.ViewList:
		m.noteList, cmd = m.noteList.Update(msg)
		return cmd
	case models.ViewHabitTracker:
		m.habitsModel, cmd = m.habitsModel.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Edit, m.keys.Enter):
		if n, ok := m.selectedNote(); ok {
			return m.editNote(n.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if n, ok := m.selectedNote(); ok {
			m.confirmDeleteNote(n.ID)
		}
	case key.Matches(msg, m.keys.Status):
		if n, ok := m.selectedNote(); ok {
			m.cycleStatus(n.ID)
		}
	case key.Matches(msg, m.keys.Preview):
		m.showPreview = !m.showPreview
		m.syncHover()
	case key.Matches(msg, m.keys.Grab):
		m.grab()
	}
	return nil
}

func (m *Model) switchView(delta int) {
	m.ctrl.EndDrag()
	m.ctrl.Unhover()

	i := 0
	for j, mode := range models.ViewModes {
		if mode == m.ctrl.ViewMode() {
			i = j
		}
	}
	n := len(models.ViewModes)
	if err := m.ctrl.SetViewMode(models.ViewModes[(i+delta+n)%n]); err != nil {
		m.setError(err.Error())
	}
	m.status = ""
	m.resize(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.refresh()
}

// moveCursor moves the selection of the grid, board or matrix view.
func (m *Model) moveCursor(dx, dy int) {
	switch m.ctrl.ViewMode() {
	case models.ViewGrid:
		m.grid += dx + dy*m.gridPerRow()
	case models.ViewBoard:
		m.board.col += dx
		m.board.row += dy
	case models.ViewMatrix:
		m.moveMatrixCursor(dx, dy)
	}
	m.clampCursors()
	m.syncHover()
}

// moveMatrixCursor walks rows inside a quadrant and crosses into the
// quadrant above or below at the ends.
func (m *Model) moveMatrixCursor(dx, dy int) {
	buckets := m.ctrl.Matrix()
	switch {
	case dx < 0 && m.matrix.col%2 == 1:
		m.matrix.col--
	case dx > 0 && m.matrix.col%2 == 0:
		m.matrix.col++
	case dy < 0 && m.matrix.row > 0:
		m.matrix.row--
	case dy < 0 && m.matrix.col >= 2:
		m.matrix.col -= 2
		m.matrix.row = len(buckets[m.matrix.col].Notes) - 1
	case dy > 0 && m.matrix.row < len(buckets[m.matrix.col].Notes)-1:
		m.matrix.row++
	case dy > 0 && m.matrix.col < 2:
		m.matrix.col += 2
		m.matrix.row = 0
	}
}

func (m *Model) clampCursors() {
	m.grid = clamp(m.grid, 0, len(m.ctrl.VisibleNotes())-1)

	board := m.ctrl.Board()
	m.board.col = clamp(m.board.col, 0, len(board.Columns)-1)
	if m.board.col < len(board.Columns) {
		m.board.row = clamp(m.board.row, 0, len(board.Columns[m.board.col].Notes)-1)
	}

	buckets := m.ctrl.Matrix()
	m.matrix.col = clamp(m.matrix.col, 0, len(buckets)-1)
	m.matrix.row = clamp(m.matrix.row, 0, len(buckets[m.matrix.col].Notes)-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}

// refresh re-reads the projections after a change.
func (m *Model) refresh() {
	m.noteList.SetNotes(m.ctrl.VisibleNotes(), m.ctrl.Now())
	m.habitsModel.SetGrid(m.ctrl.HabitMonth(m.habitsModel.Month()))
	m.clampCursors()
	m.syncHover()
}

// syncHover keeps the preview on the selected card while previews are on.
func (m *Model) syncHover() {
	if m.ctrl.Drag().State() == interaction.Dragging {
		return
	}
	if !m.showPreview || m.state != constants.StateBrowse {
		m.ctrl.Unhover()
		return
	}
	if n, rect, ok := m.selectedCard(); ok {
		m.ctrl.Hover(n.ID, rect)
		return
	}
	m.ctrl.Unhover()
}

// follow moves the cursor of the active view onto note id.
func (m *Model) follow(id string) {
	switch m.ctrl.ViewMode() {
	case models.ViewGrid:
		for i, n := range m.ctrl.VisibleNotes() {
			if n.ID == id {
				m.grid = i
			}
		}
	case models.ViewBoard:
		for c, group := range m.ctrl.Board().Columns {
			for r, n := range group.Notes {
				if n.ID == id {
					m.board = cursor{col: c, row: r}
				}
			}
		}
	case models.ViewMatrix:
		for c, bucket := range m.ctrl.Matrix() {
			for r, n := range bucket.Notes {
				if n.ID == id {
					m.matrix = cursor{col: c, row: r}
				}
			}
		}
	}
}

func (m *Model) grab() {
	n, _, ok := m.selectedCard()
	if !ok || m.ctrl.ViewMode() == models.ViewGrid {
		return
	}
	m.ctrl.StartDrag(n.ID)
	if m.ctrl.ViewMode() == models.ViewBoard {
		m.dropCol = m.board.col
	} else {
		m.dropCol = m.matrix.col
	}
	m.setInfo(fmt.Sprintf("Moving %q: arrows choose, enter drops, esc cancels", n.Title))
}

func (m *Model) handleDragKey(msg tea.KeyMsg) tea.Cmd {
	board := m.ctrl.ViewMode() == models.ViewBoard
	switch {
	case msg.String() == "ctrl+c":
		m.ctrl.EndDrag()
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.EndDrag()
		m.status = ""
		m.syncHover()
	case key.Matches(msg, m.keys.Enter, m.keys.Grab):
		m.drop()
	case key.Matches(msg, m.keys.Left):
		if board {
			m.dropCol = max(0, m.dropCol-1)
		} else {
			m.dropCol -= m.dropCol % 2
		}
	case key.Matches(msg, m.keys.Right):
		if board {
			m.dropCol = min(len(m.ctrl.Board().Columns)-1, m.dropCol+1)
		} else {
			m.dropCol = m.dropCol - m.dropCol%2 + 1
		}
	case !board && key.Matches(msg, m.keys.Up):
		m.dropCol %= 2
	case !board && key.Matches(msg, m.keys.Down):
		m.dropCol = 2 + m.dropCol%2
	}
	return nil
}

func (m *Model) dropTarget() (interaction.Target, bool) {
	if m.ctrl.ViewMode() == models.ViewMatrix {
		quadrants := models.Quadrants()
		if m.dropCol < 0 || m.dropCol >= len(quadrants) {
			return interaction.Target{}, false
		}
		return interaction.QuadrantTarget(quadrants[m.dropCol]), true
	}
	cols := m.ctrl.Board().Columns
	if m.dropCol < 0 || m.dropCol >= len(cols) {
		return interaction.Target{}, false
	}
	return interaction.ColumnTarget(cols[m.dropCol].Status), true
}

func (m *Model) drop() {
	target, ok := m.dropTarget()
	if !ok {
		m.ctrl.EndDrag()
		return
	}
	res, completed := m.ctrl.Drop(target)
	m.status = ""
	if res.Accepted {
		m.follow(res.NoteID)
		if n, found := m.ctrl.Note(res.NoteID); found {
			if completed {
				m.setInfo(notifier.CelebrationText(n))
			} else {
				m.setInfo(fmt.Sprintf("Moved %q", n.Title))
			}
		}
	}
	m.refresh()
}

func (m *Model) editNote(id string) tea.Cmd {
	if err := m.ctrl.StartEditing(id); err != nil {
		m.setError(err.Error())
		return nil
	}
	n, _ := m.ctrl.EditingNote()
	return m.openNoteForm(n)
}

func (m *Model) cycleStatus(id string) {
	completed, err := m.ctrl.CycleStatus(id)
	if err != nil {
		m.setError(err.Error())
		return
	}
	m.follow(id)
	if n, ok := m.ctrl.Note(id); ok {
		if completed {
			m.setInfo(notifier.CelebrationText(n))
		} else {
			m.setInfo(fmt.Sprintf("%q is now %s", n.Title, n.Status))
		}
	}
	m.refresh()
}

func (m *Model) confirmDeleteNote(id string) {
	n, ok := m.ctrl.Note(id)
	if !ok {
		return
	}
	m.deleteID, m.deleteName, m.deleteHabit = n.ID, n.Title, false
	m.state = constants.StateConfirmDelete
	m.ctrl.Unhover()
}

func (m *Model) updateConfirmDelete(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		if m.deleteHabit {
			m.ctrl.DeleteHabit(m.deleteID)
			m.setInfo("Habit deleted")
		} else {
			m.ctrl.DeleteNote(m.deleteID)
			m.setInfo("Note deleted")
		}
	case "n", "N", "esc", "q":
	default:
		return nil
	}
	m.deleteID, m.deleteName = "", ""
	m.state = constants.StateBrowse
	m.refresh()
	return nil
}

func (m *Model) updateSearch(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.search.Blur()
			m.state = constants.StateBrowse
			m.refresh()
			return nil
		case tea.KeyEsc:
			m.search.SetValue("")
			m.ctrl.SetSearchQuery("")
			m.search.Blur()
			m.state = constants.StateBrowse
			m.refresh()
			return nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.ctrl.SearchQuery() {
		m.ctrl.SetSearchQuery(m.search.Value())
		m.grid = 0
		m.refresh()
	}
	return cmd
}

func (m *Model) export() {
	path, err := m.ctrl.ExportToFile(m.exportDir)
	switch {
	case errors.Is(err, controller.ErrNothingToExport):
		m.setError("Nothing to export: there are no notes")
	case err != nil:
		logger.Error("Export failed", "error", err)
		m.setError("Export failed: " + err.Error())
	default:
		m.setInfo("Exported notes to " + path)
	}
}

func (m *Model) setInfo(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(s string) {
	m.status, m.statusErr = s, true
}
