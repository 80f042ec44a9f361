// Package projector derives read-only views of the note and habit
// collections. Every function returns a fresh slice and leaves its input
// untouched.
package projector

import (
	"slices"
	"strings"

	"github.com/julianstephens/noteboard/internal/models"
)

// SortedByRecency orders notes by UpdatedAt, newest first. Notes with equal
// timestamps keep their input order.
func SortedByRecency(notes []models.Note) []models.Note {
	out := slices.Clone(notes)
	slices.SortStableFunc(out, func(a, b models.Note) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out
}

// SearchFilter keeps notes whose title or content contains query,
// ignoring case. A blank query keeps everything.
func SearchFilter(notes []models.Note, query string) []models.Note {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(notes)
	}

	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}
	return out
}

// Visible is what the grid and list views show.
func Visible(notes []models.Note, query string) []models.Note {
	return SearchFilter(SortedByRecency(notes), query)
}

// StatusGroup is one board column.
type StatusGroup struct {
	Status models.Status
	Notes  []models.Note
}

// StatusBoard is the kanban projection. Unrecognized holds notes whose
// status has no column; the board does not render them.
type StatusBoard struct {
	Columns      []StatusGroup
	Unrecognized []models.Note
}

// Column returns the group for status, if the board has that column.
func (b StatusBoard) Column(status models.Status) (StatusGroup, bool) {
	for _, c := range b.Columns {
		if c.Status == status {
			return c, true
		}
	}
	return StatusGroup{}, false
}

// GroupByStatus builds one column per entry of columns, in order. Each note
// lands in at most one column.
func GroupByStatus(notes []models.Note, columns []models.Status) StatusBoard {
	sorted := SortedByRecency(notes)

	board := StatusBoard{Columns: make([]StatusGroup, 0, len(columns))}
	index := make(map[models.Status]int, len(columns))
	for _, s := range columns {
		if _, dup := index[s]; dup {
			continue
		}
		index[s] = len(board.Columns)
		board.Columns = append(board.Columns, StatusGroup{Status: s, Notes: []models.Note{}})
	}

	for _, n := range sorted {
		i, ok := index[n.Status]
		if !ok {
			board.Unrecognized = append(board.Unrecognized, n)
			continue
		}
		board.Columns[i].Notes = append(board.Columns[i].Notes, n)
	}
	return board
}

// QuadrantBucket is one matrix cell.
type QuadrantBucket struct {
	Quadrant models.Quadrant
	Notes    []models.Note
}

// QuadrantBuckets holds the four matrix cells in models.Quadrants order.
type QuadrantBuckets [4]QuadrantBucket

// Bucket returns the cell for q.
func (b QuadrantBuckets) Bucket(q models.Quadrant) QuadrantBucket {
	for _, bucket := range b {
		if bucket.Quadrant == q {
			return bucket
		}
	}
	return QuadrantBucket{Quadrant: q}
}

// GroupByQuadrant partitions notes by (priority, effort). Notes are
// expected to be normalized; an out-of-range level is treated as Low.
func GroupByQuadrant(notes []models.Note) QuadrantBuckets {
	var buckets QuadrantBuckets
	for i, q := range models.Quadrants() {
		buckets[i] = QuadrantBucket{Quadrant: q, Notes: []models.Note{}}
	}

	for _, n := range SortedByRecency(notes) {
		q := n.Quadrant()
		if !q.Priority.Valid() {
			q.Priority = models.LevelLow
		}
		if !q.Effort.Valid() {
			q.Effort = models.LevelLow
		}
		for i := range buckets {
			if buckets[i].Quadrant == q {
				buckets[i].Notes = append(buckets[i].Notes, n)
				break
			}
		}
	}
	return buckets
}
