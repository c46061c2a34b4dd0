package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a numerical column. Std is the population standard
// deviation.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
	Std  float64
}

// Column is one CSV column. Values is only populated for numerical
// columns, with NaN standing in for empty cells.
type Column struct {
	Name      string
	Numerical bool
	Raw       []string
	Values    []float64
	Stats     *Stats
}

// Table is a parsed CSV file.
type Table struct {
	Name     string
	RowCount int
	Columns  []Column
}

// LoadCSV reads the CSV file at path. The table is named after the file.
func LoadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file, filepath.Base(path))
}

// ReadCSV parses CSV with a header row.
//
// A column is numerical when every non-empty cell parses as a float.
// Numerical columns with at least one value carry Stats.
func ReadCSV(r io.Reader, name string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: %s is empty or missing header", ErrEmptyDataset, name)
	}

	header, rows := records[0], records[1:]
	table := &Table{
		Name:     name,
		RowCount: len(rows),
		Columns:  make([]Column, len(header)),
	}

	for c, colName := range header {
		raw := make([]string, len(rows))
		for r, row := range rows {
			raw[r] = strings.TrimSpace(row[c])
		}
		table.Columns[c] = buildColumn(strings.TrimSpace(colName), raw)
	}

	return table, nil
}

func buildColumn(name string, raw []string) Column {
	col := Column{Name: name, Raw: raw}

	values := make([]float64, len(raw))
	present := make([]float64, 0, len(raw))
	for i, cell := range raw {
		if cell == "" {
			values[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return col
		}
		values[i] = v
		present = append(present, v)
	}

	col.Numerical = true
	col.Values = values
	if len(present) > 0 {
		mean, variance := stat.PopMeanVariance(present, nil)
		col.Stats = &Stats{
			Min:  floats.Min(present),
			Max:  floats.Max(present),
			Mean: mean,
			Std:  math.Sqrt(variance),
		}
	}
	return col
}

// Column returns the column called name.
func (t *Table) Column(name string) (*Column, error) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// NumericalColumns returns the names of all numerical columns.
func (t *Table) NumericalColumns() []string {
	var names []string
	for _, c := range t.Columns {
		if c.Numerical {
			names = append(names, c.Name)
		}
	}
	return names
}

// Points builds data points from the named feature columns. When label is
// non-empty its column supplies the labels; rows with an empty label cell
// become unlabeled points.
func (t *Table) Points(features []string, label string) ([]DataPoint, error) {
	cols := make([]*Column, len(features))
	for i, name := range features {
		col, err := t.numerical(name)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}

	var labelCol *Column
	if label != "" {
		col, err := t.numerical(label)
		if err != nil {
			return nil, err
		}
		labelCol = col
	}

	points := make([]DataPoint, t.RowCount)
	for r := range points {
		vec := make([]float64, len(cols))
		for i, col := range cols {
			v := col.Values[r]
			if math.IsNaN(v) {
				return nil, fmt.Errorf("%w: column %q row %d", ErrMissingValue, col.Name, r+1)
			}
			vec[i] = v
		}

		if labelCol != nil && !math.IsNaN(labelCol.Values[r]) {
			points[r] = Labeled(r, vec, labelCol.Values[r])
		} else {
			points[r] = Unlabeled(r, vec)
		}
	}
	return points, nil
}

// Dataset wraps Points into a Dataset of the given kind.
func (t *Table) Dataset(kind Kind, features []string, label string) (Dataset, error) {
	points, err := t.Points(features, label)
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{
		ID:           t.Name,
		Name:         t.Name,
		Kind:         kind,
		FeatureNames: features,
		Points:       points,
	}, nil
}

func (t *Table) numerical(name string) (*Column, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if !col.Numerical {
		return nil, fmt.Errorf("%w: %q", ErrNotNumerical, name)
	}
	return col, nil
}
