package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// table is a sample-by-OTU count table.
type table struct {
	sampleIDs []string
	otuIDs    []string
	counts    [][]float64
}

// loadTable loads a tab-separated table. The first row holds an ignored
// cell followed by the OTU ids; every other row holds a sample id
// followed by its counts.
func loadTable(filename string) (*table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readTable(file)
}

func readTable(r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	t := &table{
		otuIDs:    records[0][1:],
		sampleIDs: make([]string, 0, len(records)-1),
		counts:    make([][]float64, 0, len(records)-1),
	}
	for i, record := range records[1:] {
		row := make([]float64, len(record)-1)
		for j, val := range record[1:] {
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, col %d: %v", i+2, j+2, err)
			}
			row[j] = f
		}
		t.sampleIDs = append(t.sampleIDs, record[0])
		t.counts = append(t.counts, row)
	}

	return t, nil
}
