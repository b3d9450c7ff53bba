// SPDX-License-Identifier: MIT

// Package matrix - text and YAML codecs plus the row-by-row printer.
//
// Text format (Parse):
//   - one row per non-blank line, cells separated by any whitespace;
//   - every cell must be a base-10 integer.
//
// YAML format (MarshalYAML/UnmarshalYAML):
//   - a sequence of integer sequences, e.g. [[1, 2], [3, 4]].

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ctxParse         = "Parse"
	ctxUnmarshalYAML = "UnmarshalYAML"
	ctxMarshalYAML   = "MarshalYAML"

	// notMatrixLabel precedes the raw value when Format is given a non-matrix.
	notMatrixLabel = "Input is not a matrix, but here it is anyways:"
)

var (
	_ yaml.Marshaler   = (*Matrix)(nil)
	_ yaml.Unmarshaler = (*Matrix)(nil)
)

// Parse reads whitespace-separated integer rows from r.
//
// Errors:
//   - ErrParse for a token that is not an integer (line and field are 1-based).
//   - ErrNotMatrix for no rows or ragged rows.
//   - Reader errors are returned wrapped.
func Parse(r io.Reader) (*Matrix, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for k, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, matrixErrorf(ctxParse,
					fmt.Errorf("line %d field %d %q: %w", line, k+1, f, ErrParse))
			}
			row[k] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, matrixErrorf(ctxParse, err)
	}
	if err := ValidateRows(rows); err != nil {
		return nil, matrixErrorf(ctxParse, err)
	}

	return newOwned(rows), nil
}

// MarshalYAML encodes m as a sequence of integer sequences.
func (m *Matrix) MarshalYAML() (interface{}, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxMarshalYAML, err)
	}

	return m.Data(), nil
}

// UnmarshalYAML decodes a sequence of integer sequences into m, with the
// same guarantee as Replace: on error m is unchanged.
//
// Errors:
//   - ErrParse for non-integer cells or a non-sequence document.
//   - ErrNotMatrix for empty or ragged rows.
func (m *Matrix) UnmarshalYAML(value *yaml.Node) error {
	var rows [][]int
	if err := value.Decode(&rows); err != nil {
		return matrixErrorf(ctxUnmarshalYAML, fmt.Errorf("%v: %w", err, ErrParse))
	}
	if err := ValidateRows(rows); err != nil {
		return matrixErrorf(ctxUnmarshalYAML, err)
	}
	m.rows = rows

	return nil
}

// Format prints a valid matrix row by row ("[1, 2, 3]" per line). Anything
// else is printed after a warning label using its default %v form.
// Returns the first write error.
func Format(w io.Writer, candidate any) error {
	if !IsMatrix(candidate) {
		if _, err := fmt.Fprintln(w, notMatrixLabel); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, candidate)
		return err
	}

	var rows []string
	switch v := candidate.(type) {
	case *Matrix:
		rows = formatIntRows(v.rows)
	case [][]int:
		rows = formatIntRows(v)
	case *Dense:
		rows = formatFloatRows(v.Data())
	case [][]float64:
		rows = formatFloatRows(v)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}

	return nil
}

func formatIntRows(rows [][]int) []string {
	out := make([]string, len(rows))
	cells := make([]string, 0, len(rows[0]))
	for i, row := range rows {
		cells = cells[:0]
		for _, v := range row {
			cells = append(cells, strconv.Itoa(v))
		}
		out[i] = _fmtOpen + strings.Join(cells, _fmtSep) + _fmtClose
	}

	return out
}

func formatFloatRows(rows [][]float64) []string {
	out := make([]string, len(rows))
	cells := make([]string, 0, len(rows[0]))
	for i, row := range rows {
		cells = cells[:0]
		for _, v := range row {
			cells = append(cells, strconv.FormatFloat(v, 'g', -1, 64))
		}
		out[i] = _fmtOpen + strings.Join(cells, _fmtSep) + _fmtClose
	}

	return out
}
