package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/helpo-services/helpo-backend/internal/app/model"
	"github.com/helpo-services/helpo-backend/internal/sheets"
	"github.com/helpo-services/helpo-backend/pkg/logger"
)

var (
	ErrVendorNotFound = errors.New("vendor not found")
	ErrDuplicatePhone = errors.New("vendor already registered with this phone")
	ErrColumnNotFound = errors.New("column not found in sheet")
)

// VendorRepository stores vendors in one tab of the record store. Every
// call reopens the tab and reads it whole; there are no indexes, lookups
// are linear scans.
type VendorRepository struct {
	store sheets.Store
	tab   string
}

func NewVendorRepository(store sheets.Store, tab string) *VendorRepository {
	return &VendorRepository{store: store, tab: tab}
}

func (r *VendorRepository) open(ctx context.Context) (sheets.Tab, error) {
	return r.store.Open(ctx, r.tab)
}

// ListAll returns every vendor in sheet order.
func (r *VendorRepository) ListAll(ctx context.Context) ([]model.Vendor, error) {
	tab, err := r.open(ctx)
	if err != nil {
		return nil, err
	}

	records, err := tab.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	vendors := make([]model.Vendor, 0, len(records))
	for _, rec := range records {
		vendors = append(vendors, model.ParseVendor(rec))
	}
	return vendors, nil
}

// Create appends a new vendor row after scanning for an existing record
// with the same phone. The check and the append are separate store calls,
// so two concurrent registrations can still race; callers serialize per
// phone with a lock.
func (r *VendorRepository) Create(ctx context.Context, vendor *model.Vendor) error {
	tab, err := r.open(ctx)
	if err != nil {
		return err
	}

	records, err := tab.ListAll(ctx)
	if err != nil {
		return err
	}

	for _, rec := range records {
		if rec[model.ColPhone] == vendor.Phone {
			return ErrDuplicatePhone
		}
	}

	return tab.AppendRow(ctx, vendor.Row(time.Now()))
}

// FindByPhone looks a vendor up by trimmed phone equality.
func (r *VendorRepository) FindByPhone(ctx context.Context, phone string) (*model.Vendor, error) {
	vendors, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	phone = strings.TrimSpace(phone)
	for _, v := range vendors {
		if strings.TrimSpace(v.Phone) == phone {
			return &v, nil
		}
	}
	return nil, ErrVendorNotFound
}

// FindByEmail looks a vendor up by case-insensitive email equality.
func (r *VendorRepository) FindByEmail(ctx context.Context, email string) (*model.Vendor, error) {
	vendors, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, v := range vendors {
		if strings.EqualFold(v.Email, email) {
			return &v, nil
		}
	}
	return nil, ErrVendorNotFound
}

// Update rewrites the given fields of a vendor's row, one cell write per
// field. The photo list is recomputed as (existing - removed) + added and
// written back as the single photos field. Fields whose column is missing
// from the sheet are skipped with a warning; failed cell writes do not stop
// the remaining fields and are reported together.
func (r *VendorRepository) Update(ctx context.Context, phone string, fields map[string]string, addPhotos, removePhotos []string) error {
	tab, err := r.open(ctx)
	if err != nil {
		return err
	}

	records, err := tab.ListAll(ctx)
	if err != nil {
		return err
	}

	phone = strings.TrimSpace(phone)
	rowIndex := 0
	var existing model.Vendor
	for i, rec := range records {
		if strings.TrimSpace(rec[model.ColPhone]) == phone {
			// 1-based sheet row, counting the header row.
			rowIndex = i + 2
			existing = model.ParseVendor(rec)
			break
		}
	}
	if rowIndex == 0 {
		return ErrVendorNotFound
	}

	fields[model.ColPhotos] = model.JoinPhotos(mergePhotos(existing.PhotoList(), addPhotos, removePhotos))

	schema, err := sheets.LoadSchema(ctx, tab)
	if err != nil {
		return err
	}

	var writeErrs []error
	for _, name := range sortedKeys(fields) {
		col, ok := schema.Col(name)
		if !ok {
			logger.Warn("Column not found in vendor sheet, skipping field", map[string]interface{}{
				"column": name,
			})
			continue
		}
		if err := tab.UpdateCell(ctx, rowIndex, col, fields[name]); err != nil {
			logger.Error("Failed to update vendor field", err, map[string]interface{}{
				"column": name,
				"row":    rowIndex,
			})
			writeErrs = append(writeErrs, fmt.Errorf("%s: %w", name, err))
		}
	}

	return errors.Join(writeErrs...)
}

// UpdateSubscription writes a vendor's subscription tier as a single cell
// update.
func (r *VendorRepository) UpdateSubscription(ctx context.Context, phone, plan string) error {
	return r.updateCellByMatch(ctx, model.ColPhone, phone, model.ColSubscription, plan)
}

// UpdatePasswordByEmail writes a new password hash for the vendor with the
// given email.
func (r *VendorRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	return r.updateCellByMatch(ctx, model.ColEmail, email, model.ColPassword, passwordHash)
}

// updateCellByMatch locates the first row whose matchCol equals matchValue
// and writes value into its targetCol.
func (r *VendorRepository) updateCellByMatch(ctx context.Context, matchCol, matchValue, targetCol, value string) error {
	tab, err := r.open(ctx)
	if err != nil {
		return err
	}

	records, err := tab.ListAll(ctx)
	if err != nil {
		return err
	}

	rowIndex := 0
	for i, rec := range records {
		if strings.EqualFold(strings.TrimSpace(rec[matchCol]), strings.TrimSpace(matchValue)) {
			rowIndex = i + 2
			break
		}
	}
	if rowIndex == 0 {
		return ErrVendorNotFound
	}

	schema, err := sheets.LoadSchema(ctx, tab)
	if err != nil {
		return err
	}
	col, ok := schema.Col(targetCol)
	if !ok {
		return fmt.Errorf("%w: %s", ErrColumnNotFound, targetCol)
	}

	return tab.UpdateCell(ctx, rowIndex, col, value)
}

func mergePhotos(existing, add, remove []string) []string {
	removed := make(map[string]bool, len(remove))
	for _, p := range remove {
		removed[p] = true
	}

	var final []string
	for _, p := range existing {
		if !removed[p] {
			final = append(final, p)
		}
	}
	return append(final, add...)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
