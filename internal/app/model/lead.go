package model

import (
	"time"

	"github.com/helpo-services/helpo-backend/internal/sheets"
)

// Lead sheet column names, in sheet order.
const (
	ColLeadName        = "user_name"
	ColLeadPhone       = "user_phone"
	ColLeadMessage     = "message"
	ColLeadTimestamp   = "timestamp"
	ColLeadVendorPhone = "vendor_phone"
)

// Lead is a customer callback request directed at a vendor. Append-only.
type Lead struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Message     string `json:"message,omitempty"`
	Timestamp   string `json:"timestamp"`
	VendorPhone string `json:"vendor_phone"`
}

func ParseLead(rec sheets.Record) Lead {
	return Lead{
		Name:        rec[ColLeadName],
		Phone:       rec[ColLeadPhone],
		Message:     rec[ColLeadMessage],
		Timestamp:   rec[ColLeadTimestamp],
		VendorPhone: rec[ColLeadVendorPhone],
	}
}

// ParsedTime returns the lead's timestamp, falling back to now for rows
// whose timestamp does not parse, so malformed rows sort to the top of a
// newest-first listing.
func (l Lead) ParsedTime(now time.Time) time.Time {
	t, err := time.ParseInLocation(TimestampLayout, l.Timestamp, now.Location())
	if err != nil {
		return now
	}
	return t
}
