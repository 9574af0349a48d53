package model

import (
	"strconv"

	"github.com/helpo-services/helpo-backend/internal/sheets"
)

// Review sheet column names, in sheet order.
const (
	ColReviewVendorPhone = "VendorPhone"
	ColReviewName        = "Name"
	ColReviewRating      = "Rating"
	ColReviewPhoto       = "Photo"
	ColReviewComment     = "Comment"
	ColReviewCreatedAt   = "CreatedAt"
)

// Review is an append-only customer review. Rating is kept as the raw sheet
// string: out-of-range or non-numeric values stay in storage and are only
// excluded during aggregation.
type Review struct {
	VendorPhone string `json:"vendor_phone"`
	Name        string `json:"name"`
	Rating      string `json:"rating"`
	Photo       string `json:"photo,omitempty"`
	Comment     string `json:"comment"`
	CreatedAt   string `json:"created_at"`
}

func ParseReview(rec sheets.Record) Review {
	return Review{
		VendorPhone: rec[ColReviewVendorPhone],
		Name:        rec[ColReviewName],
		Rating:      rec[ColReviewRating],
		Photo:       rec[ColReviewPhoto],
		Comment:     rec[ColReviewComment],
		CreatedAt:   rec[ColReviewCreatedAt],
	}
}

// ValidRating parses the rating, reporting false for anything that is not
// an integer between 1 and 5.
func (r Review) ValidRating() (int, bool) {
	rating, err := strconv.Atoi(r.Rating)
	if err != nil || rating < 1 || rating > 5 {
		return 0, false
	}
	return rating, true
}
