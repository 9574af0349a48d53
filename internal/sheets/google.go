package sheets

import (
	"context"
	"fmt"

	"github.com/helpo-services/helpo-backend/config"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client is the Google Sheets implementation of Store. Credentials come from
// a service-account JSON file named in the configuration; no process-wide
// credential state is kept.
type Client struct {
	cfg config.SheetsConfig
}

func NewClient(cfg config.SheetsConfig) *Client {
	return &Client{cfg: cfg}
}

// Open builds a fresh Sheets service and returns a handle on the named tab.
func (c *Client) Open(ctx context.Context, tab string) (Tab, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(c.cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return &googleTab{
		svc:           svc,
		spreadsheetID: c.cfg.SpreadsheetID,
		tab:           tab,
	}, nil
}

type googleTab struct {
	svc           *sheets.Service
	spreadsheetID string
	tab           string
}

// fetch reads the whole tab, header row included.
func (t *googleTab) fetch(ctx context.Context) ([][]interface{}, error) {
	resp, err := t.svc.Spreadsheets.Values.Get(t.spreadsheetID, t.tab).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return resp.Values, nil
}

func (t *googleTab) Headers(ctx context.Context) ([]string, error) {
	resp, err := t.svc.Spreadsheets.Values.Get(t.spreadsheetID, t.tab+"!1:1").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	return toStrings(resp.Values[0]), nil
}

func (t *googleTab) ListAll(ctx context.Context) ([]Record, error) {
	rows, err := t.fetch(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := toStrings(rows[0])
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(headers))
		values := toStrings(row)
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(values) {
				rec[h] = values[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (t *googleTab) AppendRow(ctx context.Context, values []string) error {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}

	_, err := t.svc.Spreadsheets.Values.
		Append(t.spreadsheetID, t.tab, &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func (t *googleTab) UpdateCell(ctx context.Context, row, col int, value string) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("%w: cell (%d,%d) out of range", ErrWrite, row, col)
	}

	cell := fmt.Sprintf("%s!%s%d", t.tab, columnName(col), row)
	_, err := t.svc.Spreadsheets.Values.
		Update(t.spreadsheetID, cell, &sheets.ValueRange{Values: [][]interface{}{{value}}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// columnName converts a 1-based column index to its A1 letter form
// (1 -> A, 27 -> AA).
func columnName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}
