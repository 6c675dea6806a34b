// Package glyphgrid decodes grid messages hidden in published HTML
// documents. The document carries a table of (x, y, character) triples;
// the decoder fetches it, reorders the triples into row-major order, and
// prints them as a two-dimensional text grid.
//
// Basic usage:
//
//	err := glyphgrid.FromURL(glyphgrid.DefaultURL).Decode(ctx)
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	err := glyphgrid.FromURL(url).
//	    Debug(true).
//	    Timeout(10 * time.Second).
//	    Output(&buf).
//	    Decode(ctx)
//
// For advanced use cases, the lower-level fetch, htmldoc, and grid
// packages are also available.
package glyphgrid

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/glyphgrid/fetch"
	"github.com/tsawler/glyphgrid/grid"
	"github.com/tsawler/glyphgrid/htmldoc"
)

// DefaultURL is the published document the decoder reads when the caller
// does not supply one.
const DefaultURL = "https://docs.google.com/document/d/e/2PACX-1vSHesOf9hv2sPOntssYrEdubmMQm8lwjfwv6NPjjmIRYs_FOYXtqrYgjh85jBUebK9swPXh_a5TJ5Kl/pub"

// Decoder provides a fluent interface for decoding a grid message. Each
// configuration method returns a new Decoder instance, making it safe to
// share a configured base across calls.
type Decoder struct {
	// Source (exactly one is set)
	url    string
	source io.Reader

	options decodeOptions
}

// FromURL returns a Decoder that fetches the document at url.
func FromURL(url string) *Decoder {
	return &Decoder{
		url:     url,
		options: defaultOptions(),
	}
}

// FromReader returns a Decoder that reads an already-retrieved document
// from r, skipping the fetch step.
func FromReader(r io.Reader) *Decoder {
	return &Decoder{
		source:  r,
		options: defaultOptions(),
	}
}

// clone creates a copy of the Decoder with a deep copy of options, so
// chain methods never mutate the receiver.
func (d *Decoder) clone() *Decoder {
	return &Decoder{
		url:     d.url,
		source:  d.source,
		options: d.options.clone(),
	}
}

// Debug enables verbose decoding output: the raw document text, the
// extracted table size, and the coordinate set before and after sorting.
func (d *Decoder) Debug(enabled bool) *Decoder {
	nd := d.clone()
	nd.options.debug = enabled
	return nd
}

// Timeout sets the fetch timeout. Zero disables the timeout and blocks
// until the transfer completes or the context is cancelled.
func (d *Decoder) Timeout(t time.Duration) *Decoder {
	nd := d.clone()
	nd.options.timeout = t
	return nd
}

// Logger sets the logger used for debug output. Without one, Debug mode
// falls back to a development logger.
func (d *Decoder) Logger(l *zap.Logger) *Decoder {
	nd := d.clone()
	nd.options.logger = l
	return nd
}

// Output sets the writer the grid is rendered to. Defaults to stdout.
func (d *Decoder) Output(w io.Writer) *Decoder {
	nd := d.clone()
	nd.options.output = w
	return nd
}

// HTTPClient sets the HTTP client used for the fetch, overriding Timeout.
func (d *Decoder) HTTPClient(c *http.Client) *Decoder {
	nd := d.clone()
	nd.options.httpClient = c
	return nd
}

// Decode runs the pipeline: fetch the document, extract its first table,
// normalize the rows into coordinates, sort them row-major, and render
// the grid to the configured output. The first table is used when the
// document holds several; htmldoc.ErrNoTable is returned when it holds
// none. Decode never terminates the process; callers map errors to exit
// codes.
func (d *Decoder) Decode(ctx context.Context) error {
	logger := d.options.debugLogger()
	defer func() { _ = logger.Sync() }()

	content, err := d.content(ctx)
	if err != nil {
		return err
	}
	logger.Debug("fetched document", zap.Int("bytes", len(content)), zap.String("body", content))

	reader, err := htmldoc.OpenReader(strings.NewReader(content))
	if err != nil {
		return err
	}
	defer reader.Close()

	table, err := reader.FirstTable()
	if err != nil {
		return err
	}
	logger.Debug("extracted table",
		zap.String("type", fmt.Sprintf("%T", table)),
		zap.String("title", reader.Title()),
		zap.Int("tables", len(reader.Tables())),
		zap.Int("rows", table.Len()),
	)

	coords, err := grid.FromTable(table)
	if err != nil {
		return err
	}
	logger.Debug("coordinates (not sorted)", zap.String("set", formatCoordinates(coords)))

	grid.Sort(coords)
	logger.Debug("coordinates (sorted)", zap.String("set", formatCoordinates(coords)))

	return grid.Render(d.options.output, coords)
}

// content returns the document text from the configured source.
func (d *Decoder) content(ctx context.Context) (string, error) {
	if d.source != nil {
		body, err := io.ReadAll(d.source)
		if err != nil {
			return "", fmt.Errorf("reading source: %w", err)
		}
		return string(body), nil
	}

	hc := d.options.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: d.options.timeout}
	}
	return fetch.NewWithClient(hc).Get(ctx, d.url)
}

// formatCoordinates renders a coordinate set for debug logging.
func formatCoordinates(coords []grid.Coordinate) string {
	var sb strings.Builder
	for i, c := range coords {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "(%d,%d,%q)", c.Row, c.Col, c.Char)
	}
	return sb.String()
}
