package dataset

import "errors"

// Common errors.
var (
	ErrEmptyDataset   = errors.New("dataset: no rows")
	ErrUnknownColumn  = errors.New("dataset: unknown column")
	ErrNotNumerical   = errors.New("dataset: column is not numerical")
	ErrUnknownDataset = errors.New("dataset: unknown built-in dataset")
	ErrMissingValue   = errors.New("dataset: missing feature value")
)
