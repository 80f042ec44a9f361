package controller

import (
	"github.com/julianstephens/noteboard/internal/commands"
	"github.com/julianstephens/noteboard/internal/interaction"
	"github.com/julianstephens/noteboard/internal/models"
)

// CreateNote adds a placeholder note and opens it for editing.
func (c *Controller) CreateNote() models.Note {
	notes, n := commands.CreateNote(c.state.Notes, c.clock, c.newID)
	c.setNotes(notes)
	c.state.EditingNoteID = n.ID
	return n
}

// StartEditing opens note id in the editor.
func (c *Controller) StartEditing(id string) error {
	if _, ok := c.Note(id); !ok {
		return ErrNoteNotFound
	}
	c.state.EditingNoteID = id
	return nil
}

// StopEditing closes the editor without saving.
func (c *Controller) StopEditing() {
	c.state.EditingNoteID = ""
}

// EditingNote returns the note open in the editor.
func (c *Controller) EditingNote() (models.Note, bool) {
	if c.state.EditingNoteID == "" {
		return models.Note{}, false
	}
	return c.Note(c.state.EditingNoteID)
}

// UpdateNote saves note and closes the editor. Blank notes are deleted.
func (c *Controller) UpdateNote(note models.Note) (commands.Outcome, error) {
	notes, outcome := commands.UpdateNote(c.state.Notes, note, c.clock)
	c.state.EditingNoteID = ""
	if outcome == commands.OutcomeMissing {
		return outcome, ErrNoteNotFound
	}
	c.setNotes(notes)
	return outcome, nil
}

// SaveEditor applies editor text and fields to note id, then saves it.
func (c *Controller) SaveEditor(id, text string, priority, effort models.Level, deadline *string) (commands.Outcome, error) {
	n, ok := c.Note(id)
	if !ok {
		c.state.EditingNoteID = ""
		return commands.OutcomeMissing, ErrNoteNotFound
	}
	return c.UpdateNote(commands.ApplyEditorText(n, text, priority, effort, deadline))
}

// DeleteNote removes note id. Unknown ids are ignored.
func (c *Controller) DeleteNote(id string) {
	if c.state.EditingNoteID == id {
		c.state.EditingNoteID = ""
	}
	if _, ok := c.Note(id); !ok {
		return
	}
	c.setNotes(commands.DeleteNote(c.state.Notes, id))
}

// ChangeStatus sets the status of note id. It reports whether the note
// was just completed.
func (c *Controller) ChangeStatus(id string, status models.Status) (bool, error) {
	if _, ok := c.Note(id); !ok {
		return false, ErrNoteNotFound
	}
	notes, completed := commands.ChangeStatus(c.state.Notes, id, status, c.clock)
	c.setNotes(notes)
	if completed {
		c.celebrate(id)
	}
	return completed, nil
}

// CycleStatus moves note id to its next status.
func (c *Controller) CycleStatus(id string) (bool, error) {
	n, ok := c.Note(id)
	if !ok {
		return false, ErrNoteNotFound
	}
	return c.ChangeStatus(id, n.Status.Next())
}

// ChangePriorityEffort moves note id to another matrix quadrant.
func (c *Controller) ChangePriorityEffort(id string, priority, effort models.Level) error {
	if _, ok := c.Note(id); !ok {
		return ErrNoteNotFound
	}
	c.setNotes(commands.ChangePriorityEffort(c.state.Notes, id, priority, effort, c.clock))
	return nil
}

// StartDrag picks up note id.
func (c *Controller) StartDrag(id string) {
	c.state.Drag.StartDrag(id)
}

// EndDrag cancels a drag.
func (c *Controller) EndDrag() {
	c.state.Drag.EndDrag()
}

// Hover shows the preview for note id anchored at rect.
func (c *Controller) Hover(id string, rect interaction.Rect) {
	c.state.Drag.Hover(id, rect)
}

// Unhover hides the preview.
func (c *Controller) Unhover() {
	c.state.Drag.Unhover()
}

// Drop ends the drag on target. When the target differs from where the
// note already is, its status or quadrant is changed. The drag state is
// Idle afterwards in every case. The bool reports a completion.
func (c *Controller) Drop(target interaction.Target) (interaction.DropResult, bool) {
	res := c.state.Drag.Drop(target, c.Note)
	if !res.Accepted {
		return res, false
	}

	if target.IsMatrix {
		// The note existed a moment ago, so this cannot fail.
		_ = c.ChangePriorityEffort(res.NoteID, target.Quadrant.Priority, target.Quadrant.Effort)
		return res, false
	}
	completed, _ := c.ChangeStatus(res.NoteID, target.Status)
	return res, completed
}
