package analysis

import "sort"

// Ranking splits the analyzed courses into the list handed to the
// planner and the courses excluded from it. Excluded courses still show
// up in the final report, hosted-on-too-few-lines ones with Range 0.
type Ranking struct {
	Ranked   []Distribution
	Excluded []Distribution
}

// Rank orders courses by Range descending, ties broken by course code
// ascending, so repeated runs on identical input produce identical
// output. Courses hosted on fewer than minLines lines are excluded.
// When topOnly > 0 the ranked list is truncated to the top N courses
// and the remainder passes through as excluded.
func Rank(dists []Distribution, minLines, topOnly int) Ranking {
	var rk Ranking
	for _, d := range dists {
		if minLines > 0 && d.AppearsIn < minLines {
			ex := d
			ex.Range = 0
			rk.Excluded = append(rk.Excluded, ex)
			continue
		}
		rk.Ranked = append(rk.Ranked, d)
	}
	sort.SliceStable(rk.Ranked, func(i, j int) bool {
		if rk.Ranked[i].Range != rk.Ranked[j].Range {
			return rk.Ranked[i].Range > rk.Ranked[j].Range
		}
		return rk.Ranked[i].Course < rk.Ranked[j].Course
	})
	if topOnly > 0 && len(rk.Ranked) > topOnly {
		rk.Excluded = append(rk.Excluded, rk.Ranked[topOnly:]...)
		rk.Ranked = rk.Ranked[:topOnly]
	}
	return rk
}
