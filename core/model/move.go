package model

// Move is one proposed reassignment: immutable once recorded. Seq is
// the position within the plan; later moves may depend on earlier ones.
type Move struct {
	Seq         int    `json:"seq"`
	StudentCode string `json:"student_code"`
	Course      string `json:"course"`
	FromLine    string `json:"from_line"`
	FromClass   string `json:"from_class"`
	ToLine      string `json:"to_line"`
	ToClass     string `json:"to_class"`
}

// CourseState tracks a course through a planning run.
type CourseState int

const (
	CourseUnexamined CourseState = iota
	CourseInProgress
	CourseBalanced
	CourseStillUnbalanced
)

func (s CourseState) String() string {
	switch s {
	case CourseUnexamined:
		return "unexamined"
	case CourseInProgress:
		return "in_progress"
	case CourseBalanced:
		return "balanced"
	case CourseStillUnbalanced:
		return "still_unbalanced"
	}
	return "unknown"
}

// CourseOutcome is the per-course result: terminal state plus the
// before and after line counts and their ranges.
type CourseOutcome struct {
	Course      string         `json:"course"`
	State       CourseState    `json:"-"`
	StateName   string         `json:"state"`
	Ranked      bool           `json:"ranked"`
	RangeBefore int            `json:"range_before"`
	RangeAfter  int            `json:"range_after"`
	Before      map[string]int `json:"before"`
	After       map[string]int `json:"after"`
}

// Improvement is the reduction in spread achieved for the course.
func (o CourseOutcome) Improvement() int { return o.RangeBefore - o.RangeAfter }

// Plan is the full result of one planning run: the ordered moves and
// one outcome per course. Applying Moves in order to the original
// roster reproduces every After snapshot exactly.
type Plan struct {
	RunID   string          `json:"run_id"`
	Moves   []Move          `json:"moves"`
	Courses []CourseOutcome `json:"courses"`
}

// MovesFor returns the moves referencing the given student, in plan order.
func (p *Plan) MovesFor(studentCode string) []Move {
	var out []Move
	for _, m := range p.Moves {
		if m.StudentCode == studentCode {
			out = append(out, m)
		}
	}
	return out
}

// Outcome returns the outcome for a course, if present.
func (p *Plan) Outcome(course string) (CourseOutcome, bool) {
	for _, o := range p.Courses {
		if o.Course == course {
			return o, true
		}
	}
	return CourseOutcome{}, false
}
