package models

// Quadrant is one (priority, effort) cell of the priority matrix.
type Quadrant struct {
	Priority Level
	Effort   Level
}

// Quadrants returns the four matrix cells in display order.
func Quadrants() []Quadrant {
	return []Quadrant{
		{Priority: LevelHigh, Effort: LevelLow},
		{Priority: LevelHigh, Effort: LevelHigh},
		{Priority: LevelLow, Effort: LevelLow},
		{Priority: LevelLow, Effort: LevelHigh},
	}
}

func (q Quadrant) Label() string {
	switch q {
	case Quadrant{LevelHigh, LevelLow}:
		return "Do First"
	case Quadrant{LevelHigh, LevelHigh}:
		return "Schedule"
	case Quadrant{LevelLow, LevelLow}:
		return "Delegate"
	case Quadrant{LevelLow, LevelHigh}:
		return "Eliminate"
	default:
		return "Unknown"
	}
}

// Caption describes the cell in terms of its two axes.
func (q Quadrant) Caption() string {
	return string(q.Priority) + " Priority / " + string(q.Effort) + " Effort"
}
