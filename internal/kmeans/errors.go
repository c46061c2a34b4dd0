package kmeans

import "errors"

// Common errors.
var (
	ErrInvalidK          = errors.New("kmeans: k must be at least 1")
	ErrInsufficientData  = errors.New("kmeans: fewer data points than clusters")
	ErrEmptyData         = errors.New("kmeans: no data points")
	ErrNotInitialized    = errors.New("kmeans: engine has no centroids")
	ErrDimensionMismatch = errors.New("kmeans: point dimension differs from centroids")
)
