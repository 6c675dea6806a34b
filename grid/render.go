package grid

import (
	"bufio"
	"io"
)

// Render writes the coordinates to w as a character grid. Coordinates
// must already be in row-major order (see Sort). Column gaps within a
// row are filled with single spaces, and the output ends with a newline.
//
// A new output line starts only when a row's first record sits at column
// zero; a row whose leftmost character is further right continues the
// current line. This matches the original decoder and is covered by the
// renderer tests.
func Render(w io.Writer, coords []Coordinate) error {
	bw := bufio.NewWriter(w)

	lastRow := 0
	cursor := 0
	for _, c := range coords {
		if c.Col == 0 && c.Row > lastRow {
			bw.WriteByte('\n')
			cursor = 0
		}
		for cursor < c.Col {
			bw.WriteByte(' ')
			cursor++
		}
		bw.WriteRune(c.Char)
		cursor++
		lastRow = c.Row
	}
	bw.WriteByte('\n')

	return bw.Flush()
}
