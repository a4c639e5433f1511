package parser

import (
	"errors"
	"fmt"
)

// ErrNotFinite indicates a price parsed to NaN or an infinity.
var ErrNotFinite = errors.New("value is not a finite number")

// ErrNotDecimal indicates a price written in a base other than ten.
var ErrNotDecimal = errors.New("value is not a decimal number")

// Row decode failure reasons.
var (
	ErrMissingValue = errors.New("missing value")
	ErrCellError    = errors.New("cell holds a formula error")
	ErrExtraColumn  = errors.New("unexpected value beyond the second column")
)

// SchemaError indicates a sheet has fewer than two header columns.
type SchemaError struct {
	SheetName string
	Columns   int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("sheet %q has %d header column(s), at least 2 are required", e.SheetName, e.Columns)
}

// RowDecodeError indicates a data row of a price table does not hold
// exactly a name and a price.
type RowDecodeError struct {
	SheetName string
	Row       int    // 1-based sheet row
	Cell      string // e.g. "B4"
	Err       error
}

func (e *RowDecodeError) Error() string {
	return fmt.Sprintf("row decode error in sheet %q at %s (row %d): %v", e.SheetName, e.Cell, e.Row, e.Err)
}

func (e *RowDecodeError) Unwrap() error {
	return e.Err
}

// ValueFormatError indicates a price could not be parsed as a number.
// It is always recovered by the caller's fallback policy.
type ValueFormatError struct {
	Raw string
	Err error
}

func (e *ValueFormatError) Error() string {
	return fmt.Sprintf("cannot format %q as a price: %v", e.Raw, e.Err)
}

func (e *ValueFormatError) Unwrap() error {
	return e.Err
}
