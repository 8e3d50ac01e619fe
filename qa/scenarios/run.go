package scenarios

import (
	"fmt"

	"github.com/rowanhk/linebalance/core/model"
	"github.com/rowanhk/linebalance/core/planner"
	"github.com/rowanhk/linebalance/infra/logger"
)

// Run builds the roster, plans moves and checks the scenario's
// expectations. A non-nil error describes the first mismatch.
func Run(sc *Scenario) error {
	students := make([]*model.Student, 0, len(sc.Students))
	for _, def := range sc.Students {
		students = append(students, def.ToModel())
	}
	roster, err := model.NewRoster(students, 5)
	if err != nil {
		return fmt.Errorf("build roster: %w", err)
	}

	p, err := planner.New(sc.Planner, logger.NopLogger{})
	if err != nil {
		return fmt.Errorf("build planner: %w", err)
	}
	plan, err := p.Plan(roster)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	if len(plan.Moves) != sc.Expected.Moves {
		return fmt.Errorf("moves: got %d, want %d", len(plan.Moves), sc.Expected.Moves)
	}
	for i, want := range sc.Expected.Details {
		if i >= len(plan.Moves) {
			return fmt.Errorf("move %d: missing", i+1)
		}
		got := plan.Moves[i]
		if got.StudentCode != want.Student || got.Course != want.Course ||
			got.ToLine != want.ToLine || got.ToClass != want.ToClass {
			return fmt.Errorf("move %d: got %s %s -> %s/%s, want %s %s -> %s/%s",
				i+1, got.StudentCode, got.Course, got.ToLine, got.ToClass,
				want.Student, want.Course, want.ToLine, want.ToClass)
		}
	}
	for _, want := range sc.Expected.Courses {
		out, ok := plan.Outcome(want.Course)
		if !ok {
			return fmt.Errorf("course %s: no outcome", want.Course)
		}
		if out.RangeAfter != want.RangeAfter {
			return fmt.Errorf("course %s: range after: got %d, want %d", want.Course, out.RangeAfter, want.RangeAfter)
		}
		if want.State != "" && out.StateName != want.State {
			return fmt.Errorf("course %s: state: got %s, want %s", want.Course, out.StateName, want.State)
		}
	}
	return nil
}
