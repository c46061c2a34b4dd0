// Package dataset holds the data points consumed by the models and the
// built-in, CSV and derived datasets that feed them.
package dataset

// DataPoint is a fixed-length feature vector with an optional label.
//
// Points handed to a model are treated as read-only.
type DataPoint struct {
	ID       int
	Features []float64
	Label    float64
	HasLabel bool
}

// Labeled returns a point carrying label.
func Labeled(id int, features []float64, label float64) DataPoint {
	return DataPoint{ID: id, Features: features, Label: label, HasLabel: true}
}

// Unlabeled returns a point without a label.
func Unlabeled(id int, features []float64) DataPoint {
	return DataPoint{ID: id, Features: features}
}

// Kind classifies what a dataset is meant to train.
type Kind string

// Dataset kinds.
const (
	KindRegression Kind = "regression"
	KindClustering Kind = "clustering"
)

// Dataset is a named collection of points.
type Dataset struct {
	ID           string
	Name         string
	Kind         Kind
	Description  string
	FeatureNames []string
	Points       []DataPoint
}

// Features returns the feature vectors of all points, in order.
// The vectors are shared with the points, not copied.
func (d Dataset) Features() [][]float64 {
	out := make([][]float64, len(d.Points))
	for i, p := range d.Points {
		out[i] = p.Features
	}
	return out
}

// Dim returns the feature count of the first point, or 0 when empty.
func (d Dataset) Dim() int {
	if len(d.Points) == 0 {
		return 0
	}
	return len(d.Points[0].Features)
}
