package scenarios

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/rowanhk/linebalance/core/model"
	"github.com/rowanhk/linebalance/core/planner"
)

// StudentDef declares one student: line -> class code.
type StudentDef struct {
	Code    string            `yaml:"code"`
	Classes map[string]string `yaml:"classes"`
}

// ToModel converts the definition to a roster entry. Enrollments are
// ordered by line name so scenario runs stay deterministic.
func (s StudentDef) ToModel() *model.Student {
	lines := make([]string, 0, len(s.Classes))
	for line := range s.Classes {
		lines = append(lines, line)
	}
	sort.Strings(lines)
	st := &model.Student{Code: s.Code}
	for _, line := range lines {
		st.Enrollments = append(st.Enrollments, model.Enrollment{Line: line, Class: s.Classes[line]})
	}
	return st
}

// ExpectedCourse asserts the outcome of one course after planning.
type ExpectedCourse struct {
	Course     string `yaml:"course"`
	RangeAfter int    `yaml:"range_after"`
	State      string `yaml:"state,omitempty"`
}

// ExpectedMove asserts one planned move, matched by position.
type ExpectedMove struct {
	Student string `yaml:"student"`
	Course  string `yaml:"course"`
	ToLine  string `yaml:"to_line"`
	ToClass string `yaml:"to_class"`
}

// Expected asserts the overall result of a scenario.
type Expected struct {
	Moves   int              `yaml:"moves"`
	Details []ExpectedMove   `yaml:"details,omitempty"`
	Courses []ExpectedCourse `yaml:"courses,omitempty"`
}

// Scenario is a YAML-defined end-to-end planning case.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Students    []StudentDef   `yaml:"students"`
	Planner     planner.Config `yaml:"planner"`
	Expected    Expected       `yaml:"expected"`
}

// Load reads one scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
