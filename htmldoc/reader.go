// Package htmldoc parses HTML documents and extracts their tables.
package htmldoc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoTable is returned when a document contains no table element.
var ErrNoTable = errors.New("htmldoc: no table found")

// Reader provides access to the tabular content of an HTML document.
type Reader struct {
	doc    *html.Node
	title  string
	tables []*Table
}

// Open parses the HTML file at filename.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from r. The HTML parser is lenient, so malformed
// markup still yields a document; parse errors are limited to read failures.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{doc: doc}
	reader.title = documentTitle(doc)
	reader.collectTables(doc)

	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Title returns the document title, or an empty string if the document
// has none.
func (r *Reader) Title() string {
	return r.title
}

// Tables returns every table found in the document, in document order.
func (r *Reader) Tables() []*Table {
	return r.tables
}

// FirstTable returns the first table in document order. It returns
// ErrNoTable when the document holds no tabular content.
func (r *Reader) FirstTable() (*Table, error) {
	if len(r.tables) == 0 {
		return nil, ErrNoTable
	}
	return r.tables[0], nil
}

// collectTables walks the DOM and parses every table element. Nested
// tables are attributed to the outer table's cells, not listed separately.
func (r *Reader) collectTables(n *html.Node) {
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "table" {
			if t := parseTable(n); len(t.Rows) > 0 {
				r.tables = append(r.tables, t)
			}
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.collectTables(c)
	}
}

// parseTable extracts cell text from an HTML table element.
func parseTable(tableNode *html.Node) *Table {
	table := &Table{}

	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead":
			table.HasHeader = true
			parseTableRows(c, table)
		case "tbody", "tfoot":
			parseTableRows(c, table)
		case "tr":
			if row := parseTableRow(c); len(row) > 0 {
				table.Rows = append(table.Rows, row)
			}
		}
	}

	// No explicit thead: treat a leading row of th cells as the header.
	if !table.HasHeader && len(table.Rows) > 0 {
		table.HasHeader = headerRow(tableNode)
	}

	return table
}

// parseTableRows parses the tr children of a thead, tbody, or tfoot.
func parseTableRows(section *html.Node, table *Table) {
	for c := section.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "tr" {
			if row := parseTableRow(c); len(row) > 0 {
				table.Rows = append(table.Rows, row)
			}
		}
	}
}

// parseTableRow extracts the text of each td or th cell in a row.
func parseTableRow(tr *html.Node) []string {
	var row []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			row = append(row, getTextContent(c))
		}
	}
	return row
}

// headerRow reports whether the first row of the table is made of th cells.
func headerRow(tableNode *html.Node) bool {
	tr := findElement(tableNode, "tr")
	if tr == nil {
		return false
	}
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			if c.Data != "th" {
				return false
			}
			return true
		}
	}
	return false
}

// shouldSkipElement returns true for elements whose content is never
// document text.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// documentTitle returns the text of the first title element in the head.
func documentTitle(n *html.Node) string {
	head := findElement(n, "head")
	if head == nil {
		return ""
	}
	title := findElement(head, "title")
	if title == nil {
		return ""
	}
	return getTextContent(title)
}

// getTextContent extracts all text content from a node and its descendants.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return strings.TrimSpace(result.String())
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			result.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
}
