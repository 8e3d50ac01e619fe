package model

import (
	"fmt"
	"sort"
)

// DefaultCoursePrefixLen is the number of leading characters of a class
// code that identify the course (e.g. "12ENG" from "12ENG1A").
const DefaultCoursePrefixLen = 5

// CourseKey derives the course identifier from a class code. Multiple
// class codes collapse to the same course; every component must derive
// the key through this function so the mapping stays consistent.
func CourseKey(classCode string, prefixLen int) string {
	if prefixLen <= 0 {
		prefixLen = DefaultCoursePrefixLen
	}
	runes := []rune(classCode)
	if len(runes) <= prefixLen {
		return classCode
	}
	return string(runes[:prefixLen])
}

// Enrollment places a student into one class section on one line. The
// line is the scheduling track, the class code is the concrete section.
type Enrollment struct {
	Line  string
	Class string
}

// Student is a roster entry identified by its unique code. Enrollments
// keep the order they were loaded in.
type Student struct {
	Code        string
	Enrollments []Enrollment
}

// EnrollmentOn returns the student's enrollment on the given line, if any.
func (s *Student) EnrollmentOn(line string) (Enrollment, bool) {
	for _, e := range s.Enrollments {
		if e.Line == line {
			return e, true
		}
	}
	return Enrollment{}, false
}

// Roster is the in-memory allocation state. It is the single source of
// truth during a planning run; the planner works on a Clone and all
// enrollment counts are recomputed from it, never cached across moves.
type Roster struct {
	students  []*Student
	byCode    map[string]*Student
	prefixLen int
}

// NewRoster validates the student records and builds the roster.
// Duplicate or empty student codes, enrollments without a line, and
// class codes shorter than the course prefix are integrity errors that
// abort loading; no student is ever silently dropped.
func NewRoster(students []*Student, coursePrefixLen int) (*Roster, error) {
	if coursePrefixLen <= 0 {
		coursePrefixLen = DefaultCoursePrefixLen
	}
	r := &Roster{
		students:  make([]*Student, 0, len(students)),
		byCode:    make(map[string]*Student, len(students)),
		prefixLen: coursePrefixLen,
	}
	for _, s := range students {
		if s.Code == "" {
			return nil, fmt.Errorf("%w: student with empty code", ErrIntegrity)
		}
		if _, dup := r.byCode[s.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate student code %q", ErrIntegrity, s.Code)
		}
		seenLines := make(map[string]bool, len(s.Enrollments))
		for _, e := range s.Enrollments {
			if e.Line == "" {
				return nil, fmt.Errorf("%w: student %q has an enrollment without a line", ErrIntegrity, s.Code)
			}
			if len([]rune(e.Class)) < coursePrefixLen {
				return nil, fmt.Errorf("%w: student %q class code %q shorter than course prefix", ErrIntegrity, s.Code, e.Class)
			}
			if seenLines[e.Line] {
				return nil, fmt.Errorf("%w: student %q allocated twice on line %s", ErrIntegrity, s.Code, e.Line)
			}
			seenLines[e.Line] = true
		}
		r.students = append(r.students, s)
		r.byCode[s.Code] = s
	}
	return r, nil
}

// CoursePrefixLen returns the configured course key length.
func (r *Roster) CoursePrefixLen() int { return r.prefixLen }

// Len returns the number of students.
func (r *Roster) Len() int { return len(r.students) }

// Students returns the roster entries in load order.
func (r *Roster) Students() []*Student { return r.students }

// Student looks up a student by code.
func (r *Roster) Student(code string) (*Student, bool) {
	s, ok := r.byCode[code]
	return s, ok
}

// Clone returns a deep copy. The planner owns the copy exclusively for
// the duration of a run so the original stays a consistent snapshot.
func (r *Roster) Clone() *Roster {
	cp := &Roster{
		students:  make([]*Student, 0, len(r.students)),
		byCode:    make(map[string]*Student, len(r.students)),
		prefixLen: r.prefixLen,
	}
	for _, s := range r.students {
		ns := &Student{Code: s.Code, Enrollments: make([]Enrollment, len(s.Enrollments))}
		copy(ns.Enrollments, s.Enrollments)
		cp.students = append(cp.students, ns)
		cp.byCode[ns.Code] = ns
	}
	return cp
}

// Courses returns every course key present on the roster, sorted.
func (r *Roster) Courses() []string {
	seen := make(map[string]bool)
	for _, s := range r.students {
		for _, e := range s.Enrollments {
			seen[CourseKey(e.Class, r.prefixLen)] = true
		}
	}
	courses := make([]string, 0, len(seen))
	for c := range seen {
		courses = append(courses, c)
	}
	sort.Strings(courses)
	return courses
}

// Lines returns every line present on the roster, sorted.
func (r *Roster) Lines() []string {
	seen := make(map[string]bool)
	for _, s := range r.students {
		for _, e := range s.Enrollments {
			seen[e.Line] = true
		}
	}
	lines := make([]string, 0, len(seen))
	for l := range seen {
		lines = append(lines, l)
	}
	sort.Strings(lines)
	return lines
}

// CountByLine returns the enrollment count per line for one course.
// Lines where the course is absent are not present in the map.
func (r *Roster) CountByLine(course string) map[string]int {
	counts := make(map[string]int)
	for _, s := range r.students {
		for _, e := range s.Enrollments {
			if CourseKey(e.Class, r.prefixLen) == course {
				counts[e.Line]++
			}
		}
	}
	return counts
}

// SectionCounts returns the enrollment count per class section of one
// course on one line.
func (r *Roster) SectionCounts(course, line string) map[string]int {
	counts := make(map[string]int)
	for _, s := range r.students {
		for _, e := range s.Enrollments {
			if e.Line == line && CourseKey(e.Class, r.prefixLen) == course {
				counts[e.Class]++
			}
		}
	}
	return counts
}

// StudentsEnrolled returns the students enrolled in the course on the
// given line, in roster order. Ordering policy is applied by the caller.
func (r *Roster) StudentsEnrolled(course, line string) []*Student {
	var out []*Student
	for _, s := range r.students {
		for _, e := range s.Enrollments {
			if e.Line == line && CourseKey(e.Class, r.prefixLen) == course {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// Apply reassigns the enrollment described by the move: the student's
// class for the move's course leaves the source line and joins the
// destination section on the destination line.
func (r *Roster) Apply(m Move) error {
	s, ok := r.byCode[m.StudentCode]
	if !ok {
		return fmt.Errorf("apply move: unknown student %q", m.StudentCode)
	}
	if _, occupied := s.EnrollmentOn(m.ToLine); occupied {
		return fmt.Errorf("apply move: student %q already allocated on line %s", m.StudentCode, m.ToLine)
	}
	for i, e := range s.Enrollments {
		if e.Line == m.FromLine && CourseKey(e.Class, r.prefixLen) == m.Course {
			s.Enrollments[i].Line = m.ToLine
			s.Enrollments[i].Class = m.ToClass
			return nil
		}
	}
	return fmt.Errorf("apply move: student %q has no %s class on line %s", m.StudentCode, m.Course, m.FromLine)
}
