// Package report assembles human-readable summaries from a move plan.
// Everything here is a presentation policy over the planner's output;
// nothing feeds back into planning.
package report

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/rowanhk/linebalance/core/model"
)

// DefaultUnbalancedThreshold flags courses whose range stays above this
// value after planning.
const DefaultUnbalancedThreshold = 3

// ImpactRow is one course/line cell of the before/after table.
type ImpactRow struct {
	Course string `csv:"Course" json:"course"`
	Line   string `csv:"Line" json:"line"`
	Before int    `csv:"Before" json:"before"`
	After  int    `csv:"After" json:"after"`
	Change int    `csv:"Change" json:"change"`
}

// RangeRow summarises one course's spread before and after planning.
type RangeRow struct {
	Course      string `csv:"Course" json:"course"`
	RangeBefore int    `csv:"RangeBefore" json:"range_before"`
	RangeAfter  int    `csv:"RangeAfter" json:"range_after"`
	Improvement int    `csv:"Improvement" json:"improvement"`
}

// Summary aggregates a whole planning run.
type Summary struct {
	TotalMoves      int     `json:"total_moves"`
	CoursesImproved int     `json:"courses_improved"`
	AvgImprovement  float64 `json:"avg_improvement"`
}

// Impact builds the before/after/change table, sorted by course then line.
func Impact(plan *model.Plan) []ImpactRow {
	var rows []ImpactRow
	for _, o := range plan.Courses {
		lines := make(map[string]bool, len(o.Before)+len(o.After))
		for l := range o.Before {
			lines[l] = true
		}
		for l := range o.After {
			lines[l] = true
		}
		for l := range lines {
			rows = append(rows, ImpactRow{
				Course: o.Course,
				Line:   l,
				Before: o.Before[l],
				After:  o.After[l],
				Change: o.After[l] - o.Before[l],
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Course != rows[j].Course {
			return rows[i].Course < rows[j].Course
		}
		return rows[i].Line < rows[j].Line
	})
	return rows
}

// Ranges builds the per-course range summary. Courses with zero range
// both before and after are omitted. Sorted by improvement descending,
// ties by course code ascending.
func Ranges(plan *model.Plan) []RangeRow {
	var rows []RangeRow
	for _, o := range plan.Courses {
		if o.RangeBefore == 0 && o.RangeAfter == 0 {
			continue
		}
		rows = append(rows, RangeRow{
			Course:      o.Course,
			RangeBefore: o.RangeBefore,
			RangeAfter:  o.RangeAfter,
			Improvement: o.Improvement(),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Improvement != rows[j].Improvement {
			return rows[i].Improvement > rows[j].Improvement
		}
		return rows[i].Course < rows[j].Course
	})
	return rows
}

// StillUnbalanced lists courses whose range stays above the threshold
// after planning, worst first.
func StillUnbalanced(plan *model.Plan, threshold int) []RangeRow {
	var rows []RangeRow
	for _, r := range Ranges(plan) {
		if r.RangeAfter > threshold {
			rows = append(rows, r)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].RangeAfter > rows[j].RangeAfter })
	return rows
}

// Summarize computes the quick-summary figures for a run.
func Summarize(plan *model.Plan) Summary {
	s := Summary{TotalMoves: len(plan.Moves)}
	var improvements []float64
	for _, r := range Ranges(plan) {
		if r.Improvement > 0 {
			s.CoursesImproved++
			improvements = append(improvements, float64(r.Improvement))
		}
	}
	if len(improvements) > 0 {
		s.AvgImprovement = stat.Mean(improvements, nil)
	}
	return s
}

// Render writes the full text report: quick summary, still-unbalanced
// courses, per-course range summary, and moves grouped by student.
func Render(w io.Writer, plan *model.Plan, threshold int) error {
	s := Summarize(plan)
	if _, err := fmt.Fprintf(w, "Quick Summary\n"); err != nil {
		return err
	}
	fmt.Fprintf(w, "  Total moves proposed: %d\n", s.TotalMoves)
	fmt.Fprintf(w, "  Courses with improved balance: %d\n", s.CoursesImproved)
	fmt.Fprintf(w, "  Average improvement in course range: %.1f\n\n", s.AvgImprovement)

	fmt.Fprintf(w, "Courses Still Unbalanced (Range > %d After Moves)\n", threshold)
	alerts := StillUnbalanced(plan, threshold)
	if len(alerts) == 0 {
		fmt.Fprintf(w, "  All courses balanced within a range of %d.\n", threshold)
	}
	for _, r := range alerts {
		fmt.Fprintf(w, "  %-8s range after %d (before %d)\n", r.Course, r.RangeAfter, r.RangeBefore)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Per-course Range Summary\n")
	for _, r := range Ranges(plan) {
		fmt.Fprintf(w, "  %-8s before %-3d after %-3d improvement %d\n", r.Course, r.RangeBefore, r.RangeAfter, r.Improvement)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Student Moves\n")
	if len(plan.Moves) == 0 {
		_, err := fmt.Fprintf(w, "  No moves proposed.\n")
		return err
	}
	grouped := append([]model.Move(nil), plan.Moves...)
	sort.SliceStable(grouped, func(i, j int) bool {
		if grouped[i].StudentCode != grouped[j].StudentCode {
			return grouped[i].StudentCode < grouped[j].StudentCode
		}
		return grouped[i].Seq < grouped[j].Seq
	})
	current := ""
	for _, m := range grouped {
		if m.StudentCode != current {
			current = m.StudentCode
			fmt.Fprintf(w, "  %s\n", current)
		}
		if _, err := fmt.Fprintf(w, "    %s: %s -> %s (%s)\n", m.Course, m.FromLine, m.ToLine, m.ToClass); err != nil {
			return err
		}
	}
	return nil
}
