package repository

import (
	"context"

	"github.com/helpo-services/helpo-backend/internal/app/model"
	"github.com/helpo-services/helpo-backend/internal/sheets"
)

// AdRepository reads the ads tab. Ads are opaque records passed through for
// display.
type AdRepository struct {
	store sheets.Store
	tab   string
}

func NewAdRepository(store sheets.Store, tab string) *AdRepository {
	return &AdRepository{store: store, tab: tab}
}

func (r *AdRepository) ListAll(ctx context.Context) ([]model.Ad, error) {
	tab, err := r.store.Open(ctx, r.tab)
	if err != nil {
		return nil, err
	}

	records, err := tab.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ads := make([]model.Ad, 0, len(records))
	for _, rec := range records {
		ads = append(ads, model.Ad(rec))
	}
	return ads, nil
}
