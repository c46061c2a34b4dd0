// Copyright 2025 FlowLogic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dataset

import (
	"io"

	"github.com/SubhamSaiSamal/FlowLogic/internal/dataset"
)

// Core types.
type (
	DataPoint = dataset.DataPoint
	Dataset   = dataset.Dataset
	Kind      = dataset.Kind
	Table     = dataset.Table
	Column    = dataset.Column
	Stats     = dataset.Stats
)

// Dataset kinds.
const (
	KindRegression = dataset.KindRegression
	KindClustering = dataset.KindClustering
)

// Built-in dataset ids.
const (
	StudyScoresID      = dataset.StudyScoresID
	CustomerSegmentsID = dataset.CustomerSegmentsID
	NoisySineID        = dataset.NoisySineID
)

// Errors.
var (
	ErrEmptyDataset   = dataset.ErrEmptyDataset
	ErrUnknownColumn  = dataset.ErrUnknownColumn
	ErrNotNumerical   = dataset.ErrNotNumerical
	ErrUnknownDataset = dataset.ErrUnknownDataset
	ErrMissingValue   = dataset.ErrMissingValue
)

// Labeled creates a labeled point.
func Labeled(id int, features []float64, label float64) DataPoint {
	return dataset.Labeled(id, features, label)
}

// Unlabeled creates a point without a label.
func Unlabeled(id int, features []float64) DataPoint {
	return dataset.Unlabeled(id, features)
}

// Lookup returns the built-in dataset with the given id, generated from
// seed.
func Lookup(id string, seed int64) (Dataset, error) {
	return dataset.Lookup(id, seed)
}

// Builtin returns every built-in dataset generated from seed.
func Builtin(seed int64) []Dataset {
	return dataset.Builtin(seed)
}

// LoadCSV reads a CSV file with a header row.
func LoadCSV(path string) (*Table, error) {
	return dataset.LoadCSV(path)
}

// ReadCSV reads CSV data with a header row from r.
func ReadCSV(r io.Reader, name string) (*Table, error) {
	return dataset.ReadCSV(r, name)
}

// PolynomialFeatures returns [x, x², ..., x^degree].
func PolynomialFeatures(x float64, degree int) []float64 {
	return dataset.PolynomialFeatures(x, degree)
}

// Polynomial expands the first feature of every point to degree, after
// dividing it by scale.
func Polynomial(points []DataPoint, degree int, scale float64) []DataPoint {
	return dataset.Polynomial(points, degree, scale)
}

// Split returns the first floor(len*fraction) points for training and the
// rest for validation.
func Split(points []DataPoint, fraction float64) (train, validation []DataPoint) {
	return dataset.Split(points, fraction)
}

// Normalize scales values to [0, 1].
func Normalize(values []float64) []float64 {
	return dataset.Normalize(values)
}
