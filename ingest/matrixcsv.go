package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/routegraph/routegraph/core"
	"github.com/routegraph/routegraph/matrix"
)

// headerLabel is written in the top-left cell by WriteMatrixCSV.
const headerLabel = "from/to"

// newCSVReader returns a reader that tolerates ragged rows and surrounding spaces;
// width checks are done by the caller so all problems can be reported together.
func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	return cr
}

// ReadMatrixCSV parses a square weight matrix with a header row of vertex
// names. The first column of every row is the row label and must match the
// header name at the same position. An empty label is accepted.
func ReadMatrixCSV(r io.Reader) ([]string, *matrix.Dense, error) {
	records, err := newCSVReader(r).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: read matrix csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, ErrEmptyInput
	}

	header := records[0]
	if len(header) < 2 {
		return nil, nil, fmt.Errorf("%w: need a label column and at least one name", ErrHeader)
	}
	names := make([]string, len(header)-1)
	for i, h := range header[1:] {
		names[i] = strings.TrimSpace(h)
	}
	n := len(names)

	var result *multierror.Error
	for i, name := range names {
		if name == "" {
			result = multierror.Append(result, fmt.Errorf("%w: column %d has no name", ErrHeader, i+1))
		}
	}

	rows := records[1:]
	if len(rows) != n {
		result = multierror.Append(result, fmt.Errorf("%w: %d rows for %d columns", ErrRowCount, len(rows), n))
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	for i, rec := range rows {
		line := i + 2
		if i >= n {
			break
		}
		if len(rec) != n+1 {
			result = multierror.Append(result, fmt.Errorf("%w: line %d has %d fields, want %d", ErrRowWidth, line, len(rec), n+1))
			continue
		}
		if label := strings.TrimSpace(rec[0]); label != "" && label != names[i] {
			result = multierror.Append(result, fmt.Errorf("%w: line %d is %q, want %q", ErrRowLabel, line, label, names[i]))
		}
		for j, cell := range rec[1:] {
			w, err := parseNumber(cell)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("line %d column %d: %w", line, j+2, err))
				continue
			}
			_ = m.Set(i, j, w)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, nil, err
	}

	return names, m, nil
}

// ReadMatrixGraph parses a weight-matrix CSV straight into a graph.
func ReadMatrixGraph(r io.Reader) (*core.Graph[float64], error) {
	names, m, err := ReadMatrixCSV(r)
	if err != nil {
		return nil, err
	}

	return matrix.ToGraph(names, m)
}

// WriteMatrixCSV writes names and m in the format read by ReadMatrixCSV.
func WriteMatrixCSV(w io.Writer, names []string, m *matrix.Dense) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	if !m.IsSquare() || len(names) != m.Rows() {
		return fmt.Errorf("%w: %d names for %dx%d", matrix.ErrNameCount, len(names), m.Rows(), m.Cols())
	}

	cw := csv.NewWriter(w)
	header := append([]string{headerLabel}, names...)
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := make([]string, len(names)+1)
	for i, name := range names {
		rec[0] = name
		for j, v := range m.Row(i) {
			rec[j+1] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// parseNumber parses a trimmed float field, mapping failures to ErrBlankField
// or ErrNumber.
func parseNumber(field string) (float64, error) {
	s := strings.TrimSpace(field)
	if s == "" {
		return 0, ErrBlankField
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, fmt.Errorf("%w: %q (%v)", ErrNumber, s, err)
	}

	return v, nil
}
