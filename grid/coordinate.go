// Package grid normalizes tabular coordinate data into character
// placements and renders them as a two-dimensional text grid.
package grid

import (
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/glyphgrid/htmldoc"
)

// Required header names. Matching is case-sensitive.
const (
	ColumnX    = "x-coordinate"
	ColumnChar = "Character"
	ColumnY    = "y-coordinate"
)

// Coordinate places a single character on the grid. Row and Col are
// non-negative; Char is the glyph printed at that position.
type Coordinate struct {
	Row  int
	Col  int
	Char rune
}

// MissingColumnError reports a required header column absent from the table.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("grid: required column %q not found in table header", e.Column)
}

// MalformedCoordinateError reports a coordinate cell that is not a valid
// non-negative integer. Line is the 1-based data row number.
type MalformedCoordinateError struct {
	Line   int
	Column string
	Value  string
}

func (e *MalformedCoordinateError) Error() string {
	return fmt.Sprintf("grid: row %d: column %q value %q is not a non-negative integer", e.Line, e.Column, e.Value)
}

// FromTable maps the table's rows onto coordinates. The first row of the
// table names its columns; ColumnX, ColumnChar, and ColumnY may appear in
// any order and extra columns are ignored. Character cells are normalized
// to NFC before the glyph rune is taken; an empty cell places a space.
// The returned coordinates preserve table order (see Sort).
func FromTable(t *htmldoc.Table) ([]Coordinate, error) {
	xIdx, err := columnIndex(t.Header(), ColumnX)
	if err != nil {
		return nil, err
	}
	charIdx, err := columnIndex(t.Header(), ColumnChar)
	if err != nil {
		return nil, err
	}
	yIdx, err := columnIndex(t.Header(), ColumnY)
	if err != nil {
		return nil, err
	}

	coords := make([]Coordinate, 0, t.Len())
	for i, row := range t.Body() {
		line := i + 1

		col, err := cellInt(row, xIdx, line, ColumnX)
		if err != nil {
			return nil, err
		}
		rowIdx, err := cellInt(row, yIdx, line, ColumnY)
		if err != nil {
			return nil, err
		}

		coords = append(coords, Coordinate{
			Row:  rowIdx,
			Col:  col,
			Char: cellRune(row, charIdx),
		})
	}

	return coords, nil
}

// Sort orders coordinates ascending by row, then by column. The sort is
// stable, so records sharing a position keep their input order and
// repeated runs over the same table are deterministic.
func Sort(coords []Coordinate) {
	sort.SliceStable(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
}

// columnIndex locates name in the header row.
func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return 0, &MissingColumnError{Column: name}
}

// cellInt parses the cell at idx as a non-negative integer.
func cellInt(row []string, idx, line int, column string) (int, error) {
	if idx >= len(row) {
		return 0, &MalformedCoordinateError{Line: line, Column: column, Value: ""}
	}
	v, err := strconv.Atoi(row[idx])
	if err != nil || v < 0 {
		return 0, &MalformedCoordinateError{Line: line, Column: column, Value: row[idx]}
	}
	return v, nil
}

// cellRune returns the first rune of the cell at idx, NFC-normalized.
// Missing or empty cells place a blank.
func cellRune(row []string, idx int) rune {
	if idx >= len(row) {
		return ' '
	}
	for _, r := range norm.NFC.String(row[idx]) {
		return r
	}
	return ' '
}
