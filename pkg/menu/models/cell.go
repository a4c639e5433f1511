// Package models defines data structures for menu composition.
package models

import "strings"

// CellKind identifies the type of value held by a cell.
type CellKind int

const (
	// CellEmpty is a cell without a value.
	CellEmpty CellKind = iota
	// CellNumber is a numeric cell.
	CellNumber
	// CellText is a string cell (shared, inline or formula result).
	CellText
	// CellBool is a boolean cell, coerced to its formatted text.
	CellBool
	// CellDate is an ISO date cell, coerced to its formatted text.
	CellDate
	// CellError is a cell holding a formula error such as #DIV/0!.
	CellError
)

var cellKindNames = map[CellKind]string{
	CellEmpty:  "empty",
	CellNumber: "number",
	CellText:   "text",
	CellBool:   "bool",
	CellDate:   "date",
	CellError:  "error",
}

func (k CellKind) String() string {
	if name, ok := cellKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Cell is a single value of a sheet grid.
type Cell struct {
	// Kind is the value type of the cell.
	Kind CellKind `json:"kind"`
	// Value is the textual representation of the cell.
	Value string `json:"value"`
}

// Text returns a text cell.
func Text(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Value: s}
}

// Number returns a numeric cell holding the raw number text.
func Number(s string) Cell {
	return Cell{Kind: CellNumber, Value: s}
}

func (c Cell) String() string {
	return c.Value
}

// IsBlank reports whether the cell is empty or holds only whitespace.
func (c Cell) IsBlank() bool {
	return c.Kind == CellEmpty || strings.TrimSpace(c.Value) == ""
}
