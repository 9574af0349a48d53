package sheets

import (
	"context"
	"fmt"
	"sync"
)

// FakeStore is an in-memory Store used by tests in place of the Sheets API.
type FakeStore struct {
	mu   sync.Mutex
	tabs map[string]*fakeTab

	// OpenErr, when set, makes every Open fail, simulating bad
	// credentials or a missing spreadsheet.
	OpenErr error
}

// NewFakeStore creates an empty fake store.
func NewFakeStore() *FakeStore {
	return &FakeStore{tabs: make(map[string]*fakeTab)}
}

// AddTab registers a tab with the given header row.
func (s *FakeStore) AddTab(name string, headers []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs[name] = &fakeTab{store: s, headers: headers}
}

// SeedRow appends a row to a tab without going through the Tab interface.
func (s *FakeStore) SeedRow(name string, values []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs[name].rows = append(s.tabs[name].rows, values)
}

// Rows returns a tab's raw rows, for write assertions.
func (s *FakeStore) Rows(name string) [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tabs[name].rows
}

// FailWrites makes appends and cell updates on the named tab fail.
func (s *FakeStore) FailWrites(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs[name].writeErr = true
}

func (s *FakeStore) Open(ctx context.Context, tab string) (Tab, error) {
	if s.OpenErr != nil {
		return nil, s.OpenErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tabs[tab]
	if !ok {
		return nil, fmt.Errorf("%w: no such tab %q", ErrConnection, tab)
	}
	return t, nil
}

type fakeTab struct {
	store    *FakeStore
	headers  []string
	rows     [][]string
	writeErr bool
}

func (t *fakeTab) Headers(ctx context.Context) ([]string, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return append([]string(nil), t.headers...), nil
}

func (t *fakeTab) ListAll(ctx context.Context) ([]Record, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	records := make([]Record, 0, len(t.rows))
	for _, row := range t.rows {
		rec := make(Record, len(t.headers))
		for i, h := range t.headers {
			if h == "" {
				continue
			}
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (t *fakeTab) AppendRow(ctx context.Context, values []string) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if t.writeErr {
		return fmt.Errorf("%w: append rejected", ErrWrite)
	}
	t.rows = append(t.rows, append([]string(nil), values...))
	return nil
}

func (t *fakeTab) UpdateCell(ctx context.Context, row, col int, value string) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if t.writeErr {
		return fmt.Errorf("%w: update rejected", ErrWrite)
	}
	// Row counts the header, so data row i is sheet row i+2.
	idx := row - 2
	if idx < 0 || idx >= len(t.rows) || col < 1 {
		return fmt.Errorf("%w: cell (%d,%d) out of range", ErrWrite, row, col)
	}

	r := t.rows[idx]
	for len(r) < col {
		r = append(r, "")
	}
	r[col-1] = value
	t.rows[idx] = r
	return nil
}
