package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/glyphgrid/htmldoc"
)

func table(rows ...[]string) *htmldoc.Table {
	return &htmldoc.Table{Rows: rows}
}

func TestFromTable(t *testing.T) {
	tbl := table(
		[]string{"x-coordinate", "Character", "y-coordinate"},
		[]string{"0", "H", "0"},
		[]string{"1", "I", "0"},
	)

	coords, err := FromTable(tbl)
	require.NoError(t, err)

	want := []Coordinate{
		{Row: 0, Col: 0, Char: 'H'},
		{Row: 0, Col: 1, Char: 'I'},
	}
	if diff := cmp.Diff(want, coords); diff != "" {
		t.Errorf("FromTable() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromTable_ColumnOrderIrrelevant(t *testing.T) {
	tbl := table(
		[]string{"y-coordinate", "extra", "Character", "x-coordinate"},
		[]string{"2", "ignored", "Z", "5"},
	)

	coords, err := FromTable(tbl)
	require.NoError(t, err)
	require.Len(t, coords, 1)
	assert.Equal(t, Coordinate{Row: 2, Col: 5, Char: 'Z'}, coords[0])
}

func TestFromTable_MissingColumn(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   string
	}{
		{"no x", []string{"Character", "y-coordinate"}, ColumnX},
		{"no character", []string{"x-coordinate", "y-coordinate"}, ColumnChar},
		{"no y", []string{"x-coordinate", "Character"}, ColumnY},
		{"wrong case", []string{"X-Coordinate", "character", "Y-Coordinate"}, ColumnX},
		{"empty table", nil, ColumnX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := [][]string{}
			if tt.header != nil {
				rows = append(rows, tt.header)
			}
			_, err := FromTable(&htmldoc.Table{Rows: rows})

			var missing *MissingColumnError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.want, missing.Column)
		})
	}
}

func TestFromTable_MalformedCoordinate(t *testing.T) {
	tests := []struct {
		name   string
		row    []string
		column string
	}{
		{"non-numeric x", []string{"abc", "A", "0"}, ColumnX},
		{"negative x", []string{"-1", "A", "0"}, ColumnX},
		{"non-numeric y", []string{"0", "A", "1.5"}, ColumnY},
		{"negative y", []string{"0", "A", "-3"}, ColumnY},
		{"empty x", []string{"", "A", "0"}, ColumnX},
		{"short row", []string{"0"}, ColumnY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := table(
				[]string{"x-coordinate", "Character", "y-coordinate"},
				tt.row,
			)
			_, err := FromTable(tbl)

			var malformed *MalformedCoordinateError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.column, malformed.Column)
			assert.Equal(t, 1, malformed.Line)
		})
	}
}

func TestFromTable_CharacterCells(t *testing.T) {
	tbl := table(
		[]string{"x-coordinate", "Character", "y-coordinate"},
		[]string{"0", "█", "0"},
		[]string{"1", "", "0"},
		[]string{"2", "e\u0301", "0"}, // decomposed e + combining acute, normalized to NFC
		[]string{"3", "AB", "0"},      // only the first rune is placed
	)

	coords, err := FromTable(tbl)
	require.NoError(t, err)
	require.Len(t, coords, 4)

	assert.Equal(t, '█', coords[0].Char)
	assert.Equal(t, ' ', coords[1].Char)
	assert.Equal(t, 'é', coords[2].Char)
	assert.Equal(t, 'A', coords[3].Char)
}

func TestSort_RowMajor(t *testing.T) {
	coords := []Coordinate{
		{Row: 1, Col: 0, Char: 'c'},
		{Row: 0, Col: 3, Char: 'b'},
		{Row: 0, Col: 0, Char: 'a'},
		{Row: 1, Col: 2, Char: 'd'},
	}

	Sort(coords)

	want := []Coordinate{
		{Row: 0, Col: 0, Char: 'a'},
		{Row: 0, Col: 3, Char: 'b'},
		{Row: 1, Col: 0, Char: 'c'},
		{Row: 1, Col: 2, Char: 'd'},
	}
	if diff := cmp.Diff(want, coords); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}
}

func TestSort_StableAndIdempotent(t *testing.T) {
	// Duplicate positions keep input order across repeated sorts.
	coords := []Coordinate{
		{Row: 0, Col: 0, Char: 'x'},
		{Row: 0, Col: 0, Char: 'y'},
		{Row: 0, Col: 0, Char: 'z'},
	}

	Sort(coords)
	once := append([]Coordinate(nil), coords...)

	Sort(coords)
	if diff := cmp.Diff(once, coords); diff != "" {
		t.Errorf("re-sorting changed order (-first +second):\n%s", diff)
	}

	assert.Equal(t, 'x', once[0].Char)
	assert.Equal(t, 'y', once[1].Char)
	assert.Equal(t, 'z', once[2].Char)
}
