package analysis

import (
	"math"
	"testing"

	"github.com/rowanhk/linebalance/core/model"
)

func rosterFrom(t *testing.T, students []*model.Student) *model.Roster {
	t.Helper()
	r, err := model.NewRoster(students, 5)
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	return r
}

func TestSnapshotIgnoreZeros(t *testing.T) {
	r := rosterFrom(t, []*model.Student{
		{Code: "S1", Enrollments: []model.Enrollment{{Line: "AL1", Class: "12ENGA"}}},
		{Code: "S2", Enrollments: []model.Enrollment{{Line: "AL1", Class: "12ENGA"}}},
		{Code: "S3", Enrollments: []model.Enrollment{{Line: "AL1", Class: "12ENGA"}}},
		{Code: "S4", Enrollments: []model.Enrollment{{Line: "AL2", Class: "12ENGB"}}},
		{Code: "S5", Enrollments: []model.Enrollment{{Line: "AL3", Class: "12MATA"}}},
	})

	dists := Snapshot(r, true)
	if len(dists) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(dists))
	}
	eng := dists[0]
	if eng.Course != "12ENG" {
		t.Fatalf("expected 12ENG first, got %s", eng.Course)
	}
	// AL3 hosts no 12ENG: left out under ignore-zeros.
	if len(eng.Lines) != 2 {
		t.Fatalf("expected 2 counted lines, got %v", eng.Lines)
	}
	if eng.Range != 2 || eng.Max != 3 || eng.Min != 1 {
		t.Fatalf("unexpected spread range=%d max=%d min=%d", eng.Range, eng.Max, eng.Min)
	}
	if eng.AppearsIn != 2 {
		t.Fatalf("expected AppearsIn 2, got %d", eng.AppearsIn)
	}
}

func TestSnapshotCountingZeros(t *testing.T) {
	r := rosterFrom(t, []*model.Student{
		{Code: "S1", Enrollments: []model.Enrollment{{Line: "AL1", Class: "12ENGA"}}},
		{Code: "S2", Enrollments: []model.Enrollment{{Line: "AL1", Class: "12ENGA"}}},
		{Code: "S3", Enrollments: []model.Enrollment{{Line: "AL2", Class: "12MATA"}}},
	})

	eng := Of(r, "12ENG", false)
	// AL2 counts as zero when zeros are not ignored.
	if len(eng.Lines) != 2 {
		t.Fatalf("expected every line counted, got %v", eng.Lines)
	}
	if eng.Range != 2 || eng.Min != 0 {
		t.Fatalf("unexpected spread range=%d min=%d", eng.Range, eng.Min)
	}
}

func TestDistributionSections(t *testing.T) {
	r := rosterFrom(t, []*model.Student{
		{Code: "S1", Enrollments: []model.Enrollment{{Line: "AL1", Class: "12ENGA"}}},
		{Code: "S2", Enrollments: []model.Enrollment{{Line: "AL1", Class: "12ENGB"}}},
		{Code: "S3", Enrollments: []model.Enrollment{{Line: "AL1", Class: "12ENGB"}}},
		{Code: "S4", Enrollments: []model.Enrollment{{Line: "AL2", Class: "12ENGC"}}},
	})

	d := Of(r, "12ENG", true)
	if d.Sections["AL1"]["12ENGA"] != 1 || d.Sections["AL1"]["12ENGB"] != 2 {
		t.Fatalf("unexpected AL1 sections %v", d.Sections["AL1"])
	}
	if d.Sections["AL2"]["12ENGC"] != 1 {
		t.Fatalf("unexpected AL2 sections %v", d.Sections["AL2"])
	}
}

func TestDistributionStats(t *testing.T) {
	r := rosterFrom(t, []*model.Student{
		{Code: "S1", Enrollments: []model.Enrollment{{Line: "AL1", Class: "12ENGA"}}},
		{Code: "S2", Enrollments: []model.Enrollment{{Line: "AL1", Class: "12ENGA"}}},
		{Code: "S3", Enrollments: []model.Enrollment{{Line: "AL1", Class: "12ENGA"}}},
		{Code: "S4", Enrollments: []model.Enrollment{{Line: "AL2", Class: "12ENGB"}}},
	})

	d := Of(r, "12ENG", true)
	if math.Abs(d.Mean-2.0) > 1e-9 {
		t.Fatalf("expected mean 2.0, got %f", d.Mean)
	}
	if math.Abs(d.StdDev-1.0) > 1e-9 {
		t.Fatalf("expected stddev 1.0, got %f", d.StdDev)
	}
}
