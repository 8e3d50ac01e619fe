package planner

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/rowanhk/linebalance/core/analysis"
	"github.com/rowanhk/linebalance/core/logger"
	"github.com/rowanhk/linebalance/core/model"
)

// Planner orchestrates the candidate finder across the ranked course
// list and produces the full move plan. The planning pass is a single
// ordered sequence: every applied move mutates the working roster that
// the next decision depends on, so nothing here runs concurrently.
type Planner struct {
	cfg    Config
	finder *Finder
	log    logger.Logger
}

// New returns a Planner for the given configuration. A nil log disables
// logging.
func New(cfg Config, log logger.Logger) (*Planner, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("planner config: %w", err)
	}
	if log == nil {
		log = nopLogger{}
	}
	return &Planner{cfg: cfg, finder: NewFinder(ByStudentCode), log: log}, nil
}

// SetOrder replaces the candidate ordering policy.
func (p *Planner) SetOrder(order CandidateOrder) {
	p.finder = NewFinder(order)
}

// Plan runs one planning pass over the roster. The roster itself is
// left untouched: the planner clones it and exclusively owns the copy
// until the run completes. Ranked courses are processed in order of
// imbalance; a move applied for an earlier course consumes the
// student's move budget before later courses are examined.
func (p *Planner) Plan(r *model.Roster) (*model.Plan, error) {
	before := analysis.Snapshot(r, p.cfg.IgnoreZeros)
	ranking := analysis.Rank(before, p.cfg.MinLines, p.cfg.TopOnly)

	working := r.Clone()
	g := newGuard(p.cfg.MaxMovesPerStudent)
	states := make(map[string]model.CourseState, len(ranking.Ranked))
	var moves []model.Move

	if !p.cfg.SinglePass {
		for _, d := range ranking.Ranked {
			states[d.Course] = model.CourseInProgress
			for attempt := 0; attempt < p.cfg.MaxAttemptsPerCourse; attempt++ {
				m, ok := p.finder.Next(working, d.Course, g)
				if !ok {
					break
				}
				if err := working.Apply(m); err != nil {
					return nil, fmt.Errorf("planning %s: %w", d.Course, err)
				}
				m.Seq = len(moves) + 1
				moves = append(moves, m)
				g.commit(m.StudentCode, m.Course)
				p.log.Debugw("move applied", map[string]any{
					"seq": m.Seq, "student": m.StudentCode, "course": m.Course,
					"from": m.FromLine, "to": m.ToLine, "section": m.ToClass,
				})
			}
			if analysis.Of(working, d.Course, p.cfg.IgnoreZeros).Range <= 1 {
				states[d.Course] = model.CourseBalanced
			} else {
				states[d.Course] = model.CourseStillUnbalanced
				p.log.Infof("course %s still unbalanced after planning", d.Course)
			}
		}
	}

	plan := &model.Plan{
		RunID:   uuid.NewString(),
		Moves:   moves,
		Courses: p.outcomes(ranking, working, states),
	}
	p.log.Infof("planning run %s: %d moves across %d ranked courses", plan.RunID, len(moves), len(ranking.Ranked))
	return plan, nil
}

// outcomes assembles the per-course results: ranked courses first in
// ranked order, then the excluded ones sorted by course code.
func (p *Planner) outcomes(ranking analysis.Ranking, working *model.Roster, states map[string]model.CourseState) []model.CourseOutcome {
	out := make([]model.CourseOutcome, 0, len(ranking.Ranked)+len(ranking.Excluded))
	for _, d := range ranking.Ranked {
		after := analysis.Of(working, d.Course, p.cfg.IgnoreZeros)
		state := states[d.Course]
		out = append(out, model.CourseOutcome{
			Course:      d.Course,
			State:       state,
			StateName:   state.String(),
			Ranked:      true,
			RangeBefore: d.Range,
			RangeAfter:  after.Range,
			Before:      d.Lines,
			After:       after.Lines,
		})
	}
	excluded := append([]analysis.Distribution(nil), ranking.Excluded...)
	sort.Slice(excluded, func(i, j int) bool { return excluded[i].Course < excluded[j].Course })
	for _, d := range excluded {
		// Unplanned courses are untouched: a move only shifts the
		// enrollment of the course it was proposed for.
		out = append(out, model.CourseOutcome{
			Course:      d.Course,
			State:       model.CourseUnexamined,
			StateName:   model.CourseUnexamined.String(),
			RangeBefore: d.Range,
			RangeAfter:  d.Range,
			Before:      d.Lines,
			After:       d.Lines,
		})
	}
	return out
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
