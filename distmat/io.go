package distmat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Write writes the matrix in tab-separated lsmat layout: a header of ids
// preceded by an empty cell, then one row per id.
func (d *DistanceMatrix) Write(w io.Writer) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'

	n := len(d.ids)
	header := make([]string, 0, n+1)
	header = append(header, "")
	header = append(header, d.ids...)
	if err := writer.Write(header); err != nil {
		return err
	}

	record := make([]string, n+1)
	for i, id := range d.ids {
		record[0] = id
		for j := 0; j < n; j++ {
			record[j+1] = strconv.FormatFloat(d.data.At(i, j), 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// Read parses a matrix written by Write.
func Read(r io.Reader) (*DistanceMatrix, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'

	records, err := reader.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &FormatError{Line: pe.Line, Msg: pe.Err.Error()}
		}
		return nil, fmt.Errorf("distmat: read lsmat: %w", err)
	}
	if len(records) == 0 {
		return nil, &FormatError{Line: 1, Msg: "missing header"}
	}

	ids := records[0][1:]
	rows := records[1:]
	if len(rows) != len(ids) {
		return nil, &FormatError{
			Line: len(records) + 1,
			Msg:  fmt.Sprintf("found %d rows for %d ids", len(rows), len(ids)),
		}
	}

	data := make([][]float64, len(rows))
	for i, record := range rows {
		line := i + 2
		if record[0] != ids[i] {
			return nil, &FormatError{Line: line, Msg: fmt.Sprintf("row id %q does not match header id %q", record[0], ids[i])}
		}
		data[i] = make([]float64, len(ids))
		for j, val := range record[1:] {
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, &FormatError{Line: line, Msg: fmt.Sprintf("column %d: %v", j+1, err)}
			}
			data[i][j] = f
		}
	}

	return New(data, ids)
}
