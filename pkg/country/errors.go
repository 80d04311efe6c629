package country

import "errors"

var (
	// ErrInvalidDataset indicates a country dataset that could not be decoded
	ErrInvalidDataset = errors.New("invalid country dataset")

	// ErrEmptyDataset indicates a dataset without any records
	ErrEmptyDataset = errors.New("empty country dataset")
)
