package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rowanhk/linebalance/core/model"
)

// Options describes the shape of a student allocations export: one row
// per student, an identifier column, and one column per line whose
// header starts with the line prefix (AL1..ALn). Cell values are class
// codes; an empty cell means the student is not allocated on that line.
type Options struct {
	CodeColumn      string
	LinePrefix      string
	CoursePrefixLen int
	Delimiter       rune
}

// SetDefaults applies the conventional export format.
func (o *Options) SetDefaults() {
	if o.CodeColumn == "" {
		o.CodeColumn = "Code"
	}
	if o.LinePrefix == "" {
		o.LinePrefix = "AL"
	}
	if o.CoursePrefixLen == 0 {
		o.CoursePrefixLen = model.DefaultCoursePrefixLen
	}
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
}

// LoadAllocations reads and parses the allocations CSV file into a
// roster. Malformed input (missing identifier column, no line columns,
// duplicate student codes) is rejected here, before any planning.
func LoadAllocations(path string, opts Options) (*model.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadAllocations(f, opts)
}

// ReadAllocations parses allocation rows from r. The line columns are
// discovered from the header, so the export may carry any number of
// lines and any extra columns; only the code column and the line
// columns are consumed.
func ReadAllocations(r io.Reader, opts Options) (*model.Roster, error) {
	opts.SetDefaults()
	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	type lineCol struct {
		idx  int
		name string
	}
	codeIdx := -1
	var lineCols []lineCol
	for i, col := range header {
		name := strings.TrimSpace(col)
		if name == opts.CodeColumn {
			codeIdx = i
			continue
		}
		if strings.HasPrefix(name, opts.LinePrefix) {
			lineCols = append(lineCols, lineCol{idx: i, name: name})
		}
	}
	if codeIdx < 0 {
		return nil, fmt.Errorf("%w: missing %q column", model.ErrIntegrity, opts.CodeColumn)
	}
	if len(lineCols) == 0 {
		return nil, fmt.Errorf("%w: no line columns found, expected headers starting with %q", model.ErrIntegrity, opts.LinePrefix)
	}

	var students []*model.Student
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}
		if codeIdx >= len(rec) {
			return nil, fmt.Errorf("%w: row %d has no %q value", model.ErrIntegrity, row, opts.CodeColumn)
		}
		s := &model.Student{Code: strings.TrimSpace(rec[codeIdx])}
		for _, col := range lineCols {
			if col.idx >= len(rec) {
				continue
			}
			class := strings.TrimSpace(rec[col.idx])
			if class == "" {
				continue
			}
			s.Enrollments = append(s.Enrollments, model.Enrollment{Line: col.name, Class: class})
		}
		students = append(students, s)
	}

	return model.NewRoster(students, opts.CoursePrefixLen)
}
