package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the dataset file does not exist.
	ErrNotFound = errors.New("dataset not found")

	// ErrEmpty is returned when the dataset holds no data rows.
	ErrEmpty = errors.New("dataset is empty")
)

// ParseError describes a cell or column that could not be interpreted.
type ParseError struct {
	Row    int // 1-based data row, 0 when the error concerns a whole column
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("column %q: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("row %d, column %q: invalid value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
