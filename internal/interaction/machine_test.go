package interaction

import (
	"testing"

	"github.com/julianstephens/noteboard/internal/models"
)

func lookupFrom(notes ...models.Note) func(string) (models.Note, bool) {
	return func(id string) (models.Note, bool) {
		for _, n := range notes {
			if n.ID == id {
				return n, true
			}
		}
		return models.Note{}, false
	}
}

func TestStartDragCancelsPreview(t *testing.T) {
	var m Machine
	m.Hover("a", Rect{X: 1, Y: 2, Width: 10, Height: 3})
	if m.State() != HoverPreview {
		t.Fatalf("State() = %v, want hover", m.State())
	}

	m.StartDrag("b")
	if m.State() != Dragging {
		t.Errorf("State() = %v, want dragging", m.State())
	}
	if _, _, ok := m.Preview(); ok {
		t.Error("Preview() still visible while dragging")
	}
	if m.DraggedID() != "b" {
		t.Errorf("DraggedID() = %q, want b", m.DraggedID())
	}
}

func TestHoverIgnoredWhileDragging(t *testing.T) {
	var m Machine
	m.StartDrag("a")
	m.Hover("b", Rect{})
	if m.State() != Dragging {
		t.Errorf("State() = %v, want dragging", m.State())
	}
	m.Unhover()
	if m.State() != Dragging {
		t.Errorf("Unhover() changed state to %v", m.State())
	}
}

func TestDrop(t *testing.T) {
	todo := models.Note{ID: "1", Status: models.StatusTodo, Priority: models.LevelLow, Effort: models.LevelLow}

	tests := []struct {
		name     string
		target   Target
		accepted bool
	}{
		{name: "same column", target: ColumnTarget(models.StatusTodo), accepted: false},
		{name: "other column", target: ColumnTarget(models.StatusCompleted), accepted: true},
		{name: "same quadrant", target: QuadrantTarget(models.Quadrant{Priority: models.LevelLow, Effort: models.LevelLow}), accepted: false},
		{name: "other quadrant", target: QuadrantTarget(models.Quadrant{Priority: models.LevelHigh, Effort: models.LevelLow}), accepted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Machine
			m.StartDrag("1")
			res := m.Drop(tt.target, lookupFrom(todo))

			if res.Accepted != tt.accepted {
				t.Errorf("Drop().Accepted = %v, want %v", res.Accepted, tt.accepted)
			}
			if res.NoteID != "1" {
				t.Errorf("Drop().NoteID = %q, want 1", res.NoteID)
			}
			if m.State() != Idle {
				t.Errorf("State() after Drop = %v, want idle", m.State())
			}
			if m.DraggedID() != "" {
				t.Errorf("DraggedID() after Drop = %q", m.DraggedID())
			}
		})
	}
}

func TestDropVanishedNote(t *testing.T) {
	var m Machine
	m.StartDrag("gone")
	res := m.Drop(ColumnTarget(models.StatusCompleted), lookupFrom())
	if res.Accepted {
		t.Error("Drop() accepted a note that no longer exists")
	}
	if m.State() != Idle {
		t.Errorf("State() = %v, want idle", m.State())
	}
}

func TestDropWithoutDrag(t *testing.T) {
	var m Machine
	m.Hover("a", Rect{})
	res := m.Drop(ColumnTarget(models.StatusTodo), lookupFrom())
	if res.Accepted || m.State() != Idle {
		t.Errorf("Drop() without drag = %+v, state %v", res, m.State())
	}
}

func TestEndDragAndUnhover(t *testing.T) {
	var m Machine
	m.StartDrag("a")
	m.EndDrag()
	if m.State() != Idle {
		t.Errorf("State() after EndDrag = %v, want idle", m.State())
	}

	m.Hover("a", Rect{Width: 4})
	m.EndDrag()
	if m.State() != HoverPreview {
		t.Errorf("EndDrag() should not dismiss a preview, state %v", m.State())
	}
	id, rect, ok := m.Preview()
	if !ok || id != "a" || rect.Width != 4 {
		t.Errorf("Preview() = %q, %+v, %v", id, rect, ok)
	}
	m.Unhover()
	if m.State() != Idle {
		t.Errorf("State() after Unhover = %v, want idle", m.State())
	}
}

func TestStateString(t *testing.T) {
	if Idle.String() != "idle" || Dragging.String() != "dragging" || HoverPreview.String() != "hover" {
		t.Error("unexpected State.String() values")
	}
}
