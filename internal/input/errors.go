// SPDX-License-Identifier: MIT

package input

import (
	"errors"
	"fmt"
)

var (
	// ErrBlankCell marks a cell with no value.
	ErrBlankCell = errors.New("input: blank cell")

	// ErrNotNumber marks a cell whose text is not a number.
	ErrNotNumber = errors.New("input: not a number")

	// ErrUnknownFormat is returned for a format name Parse does not know.
	ErrUnknownFormat = errors.New("input: unknown format")
)

// CellError locates a bad cell. Row and Col are 1-based.
type CellError struct {
	Row, Col int
	Err      error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, column %d: %v", e.Row, e.Col, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

func cellErr(row, col int, err error) error {
	return &CellError{Row: row + 1, Col: col + 1, Err: err}
}
