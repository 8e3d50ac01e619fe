// Package export writes planning results to CSV and JSON files.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/rowanhk/linebalance/core/model"
	"github.com/rowanhk/linebalance/pkg/report"
)

// MoveRow is the CSV representation of one proposed move.
type MoveRow struct {
	Seq         int    `csv:"Seq"`
	StudentCode string `csv:"StudentCode"`
	Course      string `csv:"Course"`
	FromLine    string `csv:"FromLine"`
	ToLine      string `csv:"ToLine"`
	ToClass     string `csv:"ToClass"`
}

// WriteMovesCSV writes the ordered move suggestions to w.
func WriteMovesCSV(w io.Writer, moves []model.Move) error {
	rows := make([]MoveRow, 0, len(moves))
	for _, m := range moves {
		rows = append(rows, MoveRow{
			Seq:         m.Seq,
			StudentCode: m.StudentCode,
			Course:      m.Course,
			FromLine:    m.FromLine,
			ToLine:      m.ToLine,
			ToClass:     m.ToClass,
		})
	}
	return gocsv.Marshal(&rows, w)
}

// WriteImpactCSV writes the before/after impact table to w.
func WriteImpactCSV(w io.Writer, rows []report.ImpactRow) error {
	return gocsv.Marshal(&rows, w)
}

// WriteRangesCSV writes the per-course range summary to w.
func WriteRangesCSV(w io.Writer, rows []report.RangeRow) error {
	return gocsv.Marshal(&rows, w)
}

// WriteJSON writes the whole plan to w in JSON format.
func WriteJSON(w io.Writer, plan *model.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

// Format selects the output files written by WritePlan.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatBoth Format = "both"
)

// WritePlan writes the plan artifacts into dir and returns the paths,
// keyed by artifact name. CSV output mirrors the conventional report
// set: move suggestions, before/after impact, and range summary.
func WritePlan(dir string, plan *model.Plan, format Format) (map[string]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	paths := make(map[string]string)

	if format == FormatCSV || format == FormatBoth {
		files := []struct {
			name  string
			write func(io.Writer) error
		}{
			{"move_suggestions.csv", func(w io.Writer) error { return WriteMovesCSV(w, plan.Moves) }},
			{"before_after_impact.csv", func(w io.Writer) error { return WriteImpactCSV(w, report.Impact(plan)) }},
			{"range_summary.csv", func(w io.Writer) error { return WriteRangesCSV(w, report.Ranges(plan)) }},
		}
		for _, f := range files {
			path := filepath.Join(dir, f.name)
			if err := writeFile(path, f.write); err != nil {
				return nil, err
			}
			paths[f.name] = path
		}
	}
	if format == FormatJSON || format == FormatBoth {
		path := filepath.Join(dir, "plan.json")
		if err := writeFile(path, func(w io.Writer) error { return WriteJSON(w, plan) }); err != nil {
			return nil, err
		}
		paths["plan.json"] = path
	}
	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
