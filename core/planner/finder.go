package planner

import (
	"sort"

	"github.com/rowanhk/linebalance/core/model"
)

// CandidateOrder is the comparison policy applied to movable students.
// It returns true when a should be tried before b. The ordering is
// explicit and injectable so determinism never depends on incidental
// container order.
type CandidateOrder func(a, b *model.Student) bool

// ByStudentCode orders candidates by student code ascending. This is
// the default policy.
func ByStudentCode(a, b *model.Student) bool { return a.Code < b.Code }

// Finder selects the next student move for one course: from the current
// surplus line to the current deficit line, into the least-filled
// section. It proposes nothing when no move would strictly reduce the
// course's spread.
type Finder struct {
	order CandidateOrder
}

// NewFinder returns a Finder with the given candidate ordering policy.
// A nil order falls back to ByStudentCode.
func NewFinder(order CandidateOrder) *Finder {
	if order == nil {
		order = ByStudentCode
	}
	return &Finder{order: order}
}

// Next searches the live roster state for the next move of the course.
// Surplus and deficit lines are recomputed from the roster on every
// call; one applied move changes both counts, so nothing is cached.
// Returns false when no eligible candidate exists or the count gap is
// already minimal.
func (f *Finder) Next(r *model.Roster, course string, g *guard) (model.Move, bool) {
	counts := r.CountByLine(course)
	if len(counts) < 2 {
		return model.Move{}, false
	}
	surplus, deficit := surplusDeficit(counts)
	// Moving one student must strictly reduce |surplus - deficit|.
	if counts[surplus]-counts[deficit] <= 1 {
		return model.Move{}, false
	}

	candidates := r.StudentsEnrolled(course, surplus)
	sort.SliceStable(candidates, func(i, j int) bool { return f.order(candidates[i], candidates[j]) })

	for _, s := range candidates {
		if !g.eligible(s.Code, course) {
			continue
		}
		// A student already holding a class on the deficit line
		// cannot take a second one there.
		if _, occupied := s.EnrollmentOn(deficit); occupied {
			continue
		}
		e, ok := s.EnrollmentOn(surplus)
		if !ok {
			continue
		}
		return model.Move{
			StudentCode: s.Code,
			Course:      course,
			FromLine:    surplus,
			FromClass:   e.Class,
			ToLine:      deficit,
			ToClass:     destinationSection(r, course, deficit, e.Class),
		}, true
	}
	return model.Move{}, false
}

// surplusDeficit picks the line with the maximum count and the line
// with the minimum count; ties break on line name ascending.
func surplusDeficit(counts map[string]int) (surplus, deficit string) {
	lines := make([]string, 0, len(counts))
	for l := range counts {
		lines = append(lines, l)
	}
	sort.Strings(lines)
	surplus, deficit = lines[0], lines[0]
	for _, l := range lines[1:] {
		if counts[l] > counts[surplus] {
			surplus = l
		}
		if counts[l] < counts[deficit] {
			deficit = l
		}
	}
	return surplus, deficit
}

// destinationSection returns the least-filled class section of the
// course on the destination line, ties broken by section id ascending.
// A line without sections of the course is treated as a single section
// keyed by the student's current class code.
func destinationSection(r *model.Roster, course, line, fallbackClass string) string {
	counts := r.SectionCounts(course, line)
	if len(counts) == 0 {
		return fallbackClass
	}
	sections := make([]string, 0, len(counts))
	for sec := range counts {
		sections = append(sections, sec)
	}
	sort.Strings(sections)
	best := sections[0]
	for _, sec := range sections[1:] {
		if counts[sec] < counts[best] {
			best = sec
		}
	}
	return best
}
