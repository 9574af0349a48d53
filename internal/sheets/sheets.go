// Package sheets adapts a Google Sheets spreadsheet into the application's
// record store: every tab is a collection, the first row is the header, and
// every data row is a record keyed by header name.
package sheets

import (
	"context"
	"errors"
)

var (
	// ErrConnection covers bad credentials, a missing spreadsheet or tab,
	// and network failures while reading.
	ErrConnection = errors.New("record store unreachable")

	// ErrWrite covers failed appends and cell updates.
	ErrWrite = errors.New("record store write failed")
)

// Record is one sheet row, keyed by column header. All values are strings;
// typed entities are parsed from records at the model boundary.
type Record map[string]string

// Store opens tabs of the configured spreadsheet. Handles are not cached:
// every Open builds a fresh connection, matching the one-fetch-per-request
// access pattern.
type Store interface {
	Open(ctx context.Context, tab string) (Tab, error)
}

// Tab is an open handle on one tab.
type Tab interface {
	// Headers returns the header row in sheet order.
	Headers(ctx context.Context) ([]string, error)

	// ListAll returns every data row as a record, in sheet order.
	ListAll(ctx context.Context) ([]Record, error)

	// AppendRow appends one row; values align positionally with the
	// tab's column order.
	AppendRow(ctx context.Context, values []string) error

	// UpdateCell writes a single cell. Row and column indices are
	// 1-based and the row index counts the header row, so the first
	// data row is row 2.
	UpdateCell(ctx context.Context, row, col int, value string) error
}

// Schema resolves header names to 1-based column indices. It is loaded once
// per operation from the tab's header row so the name-to-index mapping is
// defined in one place.
type Schema struct {
	headers []string
	cols    map[string]int
}

// LoadSchema reads the tab's header row and builds the column index. A
// duplicate header keeps its first position.
func LoadSchema(ctx context.Context, tab Tab) (*Schema, error) {
	headers, err := tab.Headers(ctx)
	if err != nil {
		return nil, err
	}

	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		if h == "" {
			continue
		}
		if _, seen := cols[h]; !seen {
			cols[h] = i + 1
		}
	}

	return &Schema{headers: headers, cols: cols}, nil
}

// Col returns the 1-based column index of the named header.
func (s *Schema) Col(name string) (int, bool) {
	col, ok := s.cols[name]
	return col, ok
}

// Headers returns the header row the schema was built from.
func (s *Schema) Headers() []string {
	return s.headers
}
