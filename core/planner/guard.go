package planner

// guard enforces the global safeguards during one planning run:
// a student moved for a course is never moved again for that course,
// and the student's total moves stay under the configured cap.
// Counters are live; eligibility is always checked against the current
// state, not a snapshot taken at ranking time.
type guard struct {
	movedFor   map[string]map[string]bool
	totalMoves map[string]int
	maxMoves   int
}

func newGuard(maxMovesPerStudent int) *guard {
	return &guard{
		movedFor:   make(map[string]map[string]bool),
		totalMoves: make(map[string]int),
		maxMoves:   maxMovesPerStudent,
	}
}

// eligible reports whether the student may still be moved for the course.
func (g *guard) eligible(studentCode, course string) bool {
	if g.totalMoves[studentCode] >= g.maxMoves {
		return false
	}
	return !g.movedFor[studentCode][course]
}

// commit records an applied move against the student's counters.
func (g *guard) commit(studentCode, course string) {
	if g.movedFor[studentCode] == nil {
		g.movedFor[studentCode] = make(map[string]bool)
	}
	g.movedFor[studentCode][course] = true
	g.totalMoves[studentCode]++
}
