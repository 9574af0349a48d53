package repository

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/helpo-services/helpo-backend/internal/app/model"
	"github.com/helpo-services/helpo-backend/internal/sheets"
)

// ReviewRepository stores append-only customer reviews. Ratings are not
// validated on write; the read path excludes invalid ones during
// aggregation.
type ReviewRepository struct {
	store sheets.Store
	tab   string
}

func NewReviewRepository(store sheets.Store, tab string) *ReviewRepository {
	return &ReviewRepository{store: store, tab: tab}
}

// Add appends a review row with a server-side timestamp.
func (r *ReviewRepository) Add(ctx context.Context, review *model.Review) error {
	tab, err := r.store.Open(ctx, r.tab)
	if err != nil {
		return err
	}

	return tab.AppendRow(ctx, []string{
		review.VendorPhone,
		review.Name,
		review.Rating,
		review.Photo,
		review.Comment,
		time.Now().Format(model.TimestampLayout),
	})
}

// ListAll returns every review in sheet order.
func (r *ReviewRepository) ListAll(ctx context.Context) ([]model.Review, error) {
	tab, err := r.store.Open(ctx, r.tab)
	if err != nil {
		return nil, err
	}

	records, err := tab.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	reviews := make([]model.Review, 0, len(records))
	for _, rec := range records {
		reviews = append(reviews, model.ParseReview(rec))
	}
	return reviews, nil
}

// ListByVendor returns the reviews whose trimmed vendor phone matches.
func (r *ReviewRepository) ListByVendor(ctx context.Context, vendorPhone string) ([]model.Review, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	vendorPhone = strings.TrimSpace(vendorPhone)
	var reviews []model.Review
	for _, rev := range all {
		if strings.TrimSpace(rev.VendorPhone) == vendorPhone {
			reviews = append(reviews, rev)
		}
	}
	return reviews, nil
}

// RatingSummary aggregates one vendor's reviews. Average is nil, not zero,
// when no review carries a valid rating.
type RatingSummary struct {
	Average   *float64    `json:"average_rating"`
	Histogram map[int]int `json:"rating_counts"`
	Total     int         `json:"total_ratings"`
}

// Aggregate computes the rating summary over a review set. Ratings that
// fail to parse or fall outside 1..5 are excluded from the average and the
// histogram; they never abort the aggregation.
func Aggregate(reviews []model.Review) RatingSummary {
	histogram := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}

	sum, count := 0, 0
	for _, rev := range reviews {
		rating, ok := rev.ValidRating()
		if !ok {
			continue
		}
		histogram[rating]++
		sum += rating
		count++
	}

	summary := RatingSummary{Histogram: histogram, Total: count}
	if count > 0 {
		avg := math.Round(float64(sum)/float64(count)*10) / 10
		summary.Average = &avg
	}
	return summary
}
