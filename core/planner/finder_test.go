package planner

import (
	"testing"

	"github.com/rowanhk/linebalance/core/model"
)

func student(code string, enrollments ...model.Enrollment) *model.Student {
	return &model.Student{Code: code, Enrollments: enrollments}
}

func enr(line, class string) model.Enrollment {
	return model.Enrollment{Line: line, Class: class}
}

func rosterFrom(t *testing.T, students ...*model.Student) *model.Roster {
	t.Helper()
	r, err := model.NewRoster(students, 5)
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	return r
}

func TestFinderPicksSurplusToDeficit(t *testing.T) {
	r := rosterFrom(t,
		student("S1", enr("AL1", "12ENGA")),
		student("S2", enr("AL1", "12ENGA")),
		student("S3", enr("AL1", "12ENGA")),
		student("S4", enr("AL2", "12ENGB")),
	)
	f := NewFinder(nil)
	m, ok := f.Next(r, "12ENG", newGuard(3))
	if !ok {
		t.Fatalf("expected a candidate")
	}
	if m.FromLine != "AL1" || m.ToLine != "AL2" {
		t.Fatalf("expected AL1 -> AL2, got %s -> %s", m.FromLine, m.ToLine)
	}
	// Candidates in student code order: first eligible wins.
	if m.StudentCode != "S1" {
		t.Fatalf("expected S1, got %s", m.StudentCode)
	}
	if m.ToClass != "12ENGB" {
		t.Fatalf("expected destination section 12ENGB, got %s", m.ToClass)
	}
}

func TestFinderMinimalGapProposesNothing(t *testing.T) {
	r := rosterFrom(t,
		student("S1", enr("AL1", "12ENGA")),
		student("S2", enr("AL1", "12ENGA")),
		student("S3", enr("AL2", "12ENGB")),
	)
	f := NewFinder(nil)
	// Gap of 1: moving a student would just flip the imbalance.
	if _, ok := f.Next(r, "12ENG", newGuard(3)); ok {
		t.Fatalf("expected no candidate for gap <= 1")
	}
}

func TestFinderLeastFilledSection(t *testing.T) {
	students := []*model.Student{
		student("A1", enr("AL2", "12MATX")),
		student("A2", enr("AL2", "12MATX")),
		student("A3", enr("AL2", "12MATY")),
		student("A4", enr("AL2", "12MATY")),
		student("A5", enr("AL2", "12MATY")),
		student("A6", enr("AL2", "12MATY")),
	}
	for i := 0; i < 8; i++ {
		students = append(students, student(
			string(rune('B'))+string(rune('0'+i)), enr("AL1", "12MATA")))
	}
	r := rosterFrom(t, students...)

	f := NewFinder(nil)
	m, ok := f.Next(r, "12MAT", newGuard(3))
	if !ok {
		t.Fatalf("expected a candidate")
	}
	// Sections on the deficit line hold {X: 2, Y: 4}; least-filled wins.
	if m.ToClass != "12MATX" {
		t.Fatalf("expected section 12MATX, got %s", m.ToClass)
	}
}

func TestFinderSectionTieBreaksAscending(t *testing.T) {
	r := rosterFrom(t,
		student("S1", enr("AL1", "12ENGA")),
		student("S2", enr("AL1", "12ENGA")),
		student("S3", enr("AL1", "12ENGA")),
		student("S4", enr("AL1", "12ENGA")),
		student("S5", enr("AL2", "12ENGC")),
		student("S6", enr("AL2", "12ENGB")),
	)
	f := NewFinder(nil)
	m, ok := f.Next(r, "12ENG", newGuard(3))
	if !ok {
		t.Fatalf("expected a candidate")
	}
	if m.ToClass != "12ENGB" {
		t.Fatalf("expected tie broken by section id, got %s", m.ToClass)
	}
}

func TestFinderRespectsGuard(t *testing.T) {
	r := rosterFrom(t,
		student("S1", enr("AL1", "12ENGA")),
		student("S2", enr("AL1", "12ENGA")),
		student("S3", enr("AL1", "12ENGA")),
		student("S4", enr("AL2", "12ENGB")),
	)
	g := newGuard(3)
	g.commit("S1", "12ENG")

	f := NewFinder(nil)
	m, ok := f.Next(r, "12ENG", g)
	if !ok {
		t.Fatalf("expected a candidate")
	}
	// S1 already moved for this course within the run.
	if m.StudentCode != "S2" {
		t.Fatalf("expected S2, got %s", m.StudentCode)
	}
}

func TestFinderSkipsOccupiedDestination(t *testing.T) {
	r := rosterFrom(t,
		student("S1", enr("AL1", "12ENGA"), enr("AL2", "12MATA")),
		student("S2", enr("AL1", "12ENGA")),
		student("S3", enr("AL1", "12ENGA")),
		student("S4", enr("AL2", "12ENGB")),
	)
	f := NewFinder(nil)
	m, ok := f.Next(r, "12ENG", newGuard(3))
	if !ok {
		t.Fatalf("expected a candidate")
	}
	// S1 already holds a class on AL2 and cannot take a second one.
	if m.StudentCode != "S2" {
		t.Fatalf("expected S2, got %s", m.StudentCode)
	}
}

func TestFinderNoEligibleCandidate(t *testing.T) {
	r := rosterFrom(t,
		student("S1", enr("AL1", "12ENGA")),
		student("S2", enr("AL1", "12ENGA")),
		student("S3", enr("AL1", "12ENGA")),
		student("S4", enr("AL2", "12ENGB")),
	)
	g := newGuard(3)
	g.commit("S1", "12ENG")
	g.commit("S2", "12ENG")
	g.commit("S3", "12ENG")

	f := NewFinder(nil)
	if _, ok := f.Next(r, "12ENG", g); ok {
		t.Fatalf("expected no candidate when every student is blocked")
	}
}

func TestFinderCustomOrder(t *testing.T) {
	r := rosterFrom(t,
		student("S1", enr("AL1", "12ENGA")),
		student("S2", enr("AL1", "12ENGA")),
		student("S3", enr("AL1", "12ENGA")),
		student("S4", enr("AL2", "12ENGB")),
	)
	desc := func(a, b *model.Student) bool { return a.Code > b.Code }
	f := NewFinder(desc)
	m, ok := f.Next(r, "12ENG", newGuard(3))
	if !ok {
		t.Fatalf("expected a candidate")
	}
	if m.StudentCode != "S3" {
		t.Fatalf("expected S3 under descending order, got %s", m.StudentCode)
	}
}
