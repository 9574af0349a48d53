package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/helpo-services/helpo-backend/internal/app/model"
	"github.com/helpo-services/helpo-backend/internal/sheets"
)

var ErrLeadMissingField = errors.New("requester name, requester phone and vendor phone are required")

// LeadRepository stores append-only callback requests.
type LeadRepository struct {
	store sheets.Store
	tab   string
}

func NewLeadRepository(store sheets.Store, tab string) *LeadRepository {
	return &LeadRepository{store: store, tab: tab}
}

// Add appends a callback request with a server-generated timestamp.
func (r *LeadRepository) Add(ctx context.Context, lead *model.Lead) error {
	if lead.Name == "" || lead.Phone == "" || lead.VendorPhone == "" {
		return ErrLeadMissingField
	}

	tab, err := r.store.Open(ctx, r.tab)
	if err != nil {
		return err
	}

	return tab.AppendRow(ctx, []string{
		lead.Name,
		lead.Phone,
		lead.Message,
		time.Now().Format(model.TimestampLayout),
		lead.VendorPhone,
	})
}

// ListByVendor returns a vendor's leads sorted newest first. Rows whose
// timestamp does not parse are treated as "now" and therefore sort to the
// top. A non-empty search keeps only leads whose requester name or phone
// contains it, case-insensitively.
func (r *LeadRepository) ListByVendor(ctx context.Context, vendorPhone, search string) ([]model.Lead, error) {
	tab, err := r.store.Open(ctx, r.tab)
	if err != nil {
		return nil, err
	}

	records, err := tab.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	vendorPhone = strings.TrimSpace(vendorPhone)
	var leads []model.Lead
	for _, rec := range records {
		lead := model.ParseLead(rec)
		if strings.TrimSpace(lead.VendorPhone) == vendorPhone {
			leads = append(leads, lead)
		}
	}

	now := time.Now()
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].ParsedTime(now).After(leads[j].ParsedTime(now))
	})

	if search = strings.ToLower(strings.TrimSpace(search)); search != "" {
		var filtered []model.Lead
		for _, lead := range leads {
			if strings.Contains(strings.ToLower(lead.Name), search) ||
				strings.Contains(strings.ToLower(lead.Phone), search) {
				filtered = append(filtered, lead)
			}
		}
		leads = filtered
	}

	return leads, nil
}

// CountByVendorSince counts a vendor's leads with a parseable timestamp
// after the cutoff. Used by the daily digest; malformed rows are not
// counted here.
func (r *LeadRepository) CountByVendorSince(ctx context.Context, vendorPhone string, since time.Time) (int, error) {
	tab, err := r.store.Open(ctx, r.tab)
	if err != nil {
		return 0, err
	}

	records, err := tab.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	vendorPhone = strings.TrimSpace(vendorPhone)
	count := 0
	for _, rec := range records {
		lead := model.ParseLead(rec)
		if strings.TrimSpace(lead.VendorPhone) != vendorPhone {
			continue
		}
		t, err := time.ParseInLocation(model.TimestampLayout, lead.Timestamp, since.Location())
		if err != nil {
			continue
		}
		if t.After(since) {
			count++
		}
	}
	return count, nil
}
