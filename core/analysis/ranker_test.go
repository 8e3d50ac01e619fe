package analysis

import "testing"

func dist(course string, rng, appearsIn int) Distribution {
	return Distribution{Course: course, Range: rng, AppearsIn: appearsIn, Lines: map[string]int{}}
}

func TestRankOrderIsDeterministic(t *testing.T) {
	dists := []Distribution{
		dist("12MAT", 3, 2),
		dist("12ENG", 5, 3),
		dist("12ART", 3, 2),
		dist("12SCI", 1, 2),
	}
	rk := Rank(dists, 2, 0)
	want := []string{"12ENG", "12ART", "12MAT", "12SCI"}
	if len(rk.Ranked) != len(want) {
		t.Fatalf("expected %d ranked, got %d", len(want), len(rk.Ranked))
	}
	for i, course := range want {
		if rk.Ranked[i].Course != course {
			t.Fatalf("position %d: expected %s, got %s", i, course, rk.Ranked[i].Course)
		}
	}
}

func TestRankMinLinesExclusion(t *testing.T) {
	dists := []Distribution{
		dist("12ENG", 4, 2),
		dist("12MAT", 6, 1),
	}
	rk := Rank(dists, 2, 0)
	if len(rk.Ranked) != 1 || rk.Ranked[0].Course != "12ENG" {
		t.Fatalf("unexpected ranked %v", rk.Ranked)
	}
	if len(rk.Excluded) != 1 || rk.Excluded[0].Course != "12MAT" {
		t.Fatalf("unexpected excluded %v", rk.Excluded)
	}
	// Single-line courses are reported with range zero.
	if rk.Excluded[0].Range != 0 {
		t.Fatalf("expected excluded range 0, got %d", rk.Excluded[0].Range)
	}
}

func TestRankTopOnly(t *testing.T) {
	dists := []Distribution{
		dist("12ENG", 5, 2),
		dist("12MAT", 4, 2),
		dist("12ART", 3, 2),
	}
	rk := Rank(dists, 2, 2)
	if len(rk.Ranked) != 2 {
		t.Fatalf("expected top 2, got %d", len(rk.Ranked))
	}
	if rk.Ranked[0].Course != "12ENG" || rk.Ranked[1].Course != "12MAT" {
		t.Fatalf("unexpected order %v", rk.Ranked)
	}
	if len(rk.Excluded) != 1 || rk.Excluded[0].Course != "12ART" {
		t.Fatalf("unexpected excluded %v", rk.Excluded)
	}
	// Truncated courses keep their real range in the report.
	if rk.Excluded[0].Range != 3 {
		t.Fatalf("expected passthrough range 3, got %d", rk.Excluded[0].Range)
	}
}
