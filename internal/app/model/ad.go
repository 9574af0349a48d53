package model

import "github.com/helpo-services/helpo-backend/internal/sheets"

// Ad is an opaque record from the ads tab, passed through unmodified for
// display.
type Ad = sheets.Record
