// Package interaction tracks the drag and hover-preview gestures shared by
// the board and matrix views.
package interaction

import "github.com/julianstephens/noteboard/internal/models"

// State is the gesture currently in progress.
type State int

const (
	Idle State = iota
	Dragging
	HoverPreview
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case HoverPreview:
		return "hover"
	default:
		return "unknown"
	}
}

// Target is a drop zone: a board column or a matrix quadrant.
type Target struct {
	Status   models.Status
	Quadrant models.Quadrant
	IsMatrix bool
}

// ColumnTarget is a board column drop zone.
func ColumnTarget(s models.Status) Target {
	return Target{Status: s}
}

// QuadrantTarget is a matrix cell drop zone.
func QuadrantTarget(q models.Quadrant) Target {
	return Target{Quadrant: q, IsMatrix: true}
}

// Contains reports whether n already sits in t.
func (t Target) Contains(n models.Note) bool {
	if t.IsMatrix {
		return n.Quadrant() == t.Quadrant
	}
	return n.Status == t.Status
}

// DropResult tells the caller which note was dropped and whether it moved.
// When Accepted is false no mutation should be issued.
type DropResult struct {
	NoteID   string
	Target   Target
	Accepted bool
}

// Machine holds the drag/hover state. The zero value is Idle.
type Machine struct {
	state   State
	dragID  string
	hoverID string
	anchor  Rect
}

func (m *Machine) State() State { return m.state }

// DraggedID is the note being dragged, or "" when not dragging.
func (m *Machine) DraggedID() string { return m.dragID }

// Preview returns the hovered note and its anchor while a preview is shown.
func (m *Machine) Preview() (string, Rect, bool) {
	if m.state != HoverPreview {
		return "", Rect{}, false
	}
	return m.hoverID, m.anchor, true
}

// StartDrag begins dragging noteID. Any preview is dismissed.
func (m *Machine) StartDrag(noteID string) {
	m.hoverID = ""
	m.anchor = Rect{}
	m.dragID = noteID
	m.state = Dragging
}

// Drop finishes the drag on target and always returns the machine to Idle.
// lookup resolves the dragged note; the drop is accepted only when the note
// exists and target is not where it already is.
func (m *Machine) Drop(target Target, lookup func(id string) (models.Note, bool)) DropResult {
	if m.state != Dragging {
		m.reset()
		return DropResult{Target: target}
	}

	res := DropResult{NoteID: m.dragID, Target: target}
	if n, ok := lookup(m.dragID); ok {
		res.Accepted = !target.Contains(n)
	}
	m.reset()
	return res
}

// EndDrag cancels a drag without dropping.
func (m *Machine) EndDrag() {
	if m.state == Dragging {
		m.reset()
	}
}

// Hover shows a preview of noteID anchored at rect. Ignored while dragging.
func (m *Machine) Hover(noteID string, rect Rect) {
	if m.state == Dragging {
		return
	}
	m.hoverID = noteID
	m.anchor = rect
	m.state = HoverPreview
}

// Unhover dismisses the preview.
func (m *Machine) Unhover() {
	if m.state == HoverPreview {
		m.reset()
	}
}

func (m *Machine) reset() {
	*m = Machine{}
}
