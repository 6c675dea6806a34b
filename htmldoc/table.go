package htmldoc

// Table is a table extracted from an HTML document. Rows holds the cell
// text in document order. HasHeader is set when the table declared a
// header via thead or a leading row of th cells; consumers that expect a
// header row conventionally treat the first row as one either way.
type Table struct {
	Rows      [][]string
	HasHeader bool
}

// Header returns the first row of the table, or nil for an empty table.
func (t *Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Body returns every row after the header row.
func (t *Table) Body() [][]string {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}

// Len returns the number of data rows, excluding the header.
func (t *Table) Len() int {
	return len(t.Body())
}
