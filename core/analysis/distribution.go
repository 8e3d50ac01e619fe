// Package analysis computes per-course enrollment distributions across
// scheduling lines and ranks courses by imbalance.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/rowanhk/linebalance/core/model"
)

// Distribution holds the per-line (and per-section) enrollment counts of
// one course at one point in time.
type Distribution struct {
	Course string
	// Lines maps line -> enrollment count. Under ignore-zeros semantics
	// only hosting lines appear; otherwise absent lines are counted as 0.
	Lines map[string]int
	// Sections maps line -> class section -> enrollment count.
	Sections map[string]map[string]int
	// AppearsIn is the number of lines actually hosting the course.
	AppearsIn int
	Range     int
	Max       int
	Min       int
	// Mean and StdDev summarise the counted line values.
	Mean   float64
	StdDev float64
}

// Snapshot computes the distribution of every course on the roster.
// Pure read; the result is sorted by course for reproducible output.
// With ignoreZeros, lines where a course is absent are left out of the
// range computation; otherwise every roster line counts as zero.
func Snapshot(r *model.Roster, ignoreZeros bool) []Distribution {
	allLines := r.Lines()
	courses := r.Courses()
	out := make([]Distribution, 0, len(courses))
	for _, course := range courses {
		out = append(out, distributionOf(r, course, allLines, ignoreZeros))
	}
	return out
}

// Of computes the distribution of a single course.
func Of(r *model.Roster, course string, ignoreZeros bool) Distribution {
	return distributionOf(r, course, r.Lines(), ignoreZeros)
}

func distributionOf(r *model.Roster, course string, allLines []string, ignoreZeros bool) Distribution {
	hosted := r.CountByLine(course)
	d := Distribution{
		Course:    course,
		Lines:     make(map[string]int),
		Sections:  make(map[string]map[string]int),
		AppearsIn: len(hosted),
	}
	if ignoreZeros {
		for line, n := range hosted {
			d.Lines[line] = n
		}
	} else {
		for _, line := range allLines {
			d.Lines[line] = hosted[line]
		}
	}
	for line := range hosted {
		d.Sections[line] = r.SectionCounts(course, line)
	}
	d.Range, d.Max, d.Min = spread(d.Lines)
	if len(d.Lines) > 0 {
		vals := make([]float64, 0, len(d.Lines))
		for _, n := range d.Lines {
			vals = append(vals, float64(n))
		}
		d.Mean = stat.Mean(vals, nil)
		d.StdDev = stat.PopStdDev(vals, nil)
	}
	return d
}

// spread returns max-min over the counted lines, with max and min.
func spread(counts map[string]int) (rng, max, min int) {
	first := true
	for _, n := range counts {
		if first {
			max, min = n, n
			first = false
			continue
		}
		if n > max {
			max = n
		}
		if n < min {
			min = n
		}
	}
	if first {
		return 0, 0, 0
	}
	return max - min, max, min
}

// SortedLines returns the distribution's lines in ascending name order.
func (d Distribution) SortedLines() []string {
	lines := make([]string, 0, len(d.Lines))
	for l := range d.Lines {
		lines = append(lines, l)
	}
	sort.Strings(lines)
	return lines
}
