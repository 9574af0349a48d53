package service

import (
	"context"

	"github.com/helpo-services/helpo-backend/internal/app/model"
	"github.com/helpo-services/helpo-backend/internal/app/repository"
)

type ReviewService struct {
	reviewRepo *repository.ReviewRepository
	vendorRepo *repository.VendorRepository
}

func NewReviewService(reviewRepo *repository.ReviewRepository, vendorRepo *repository.VendorRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		vendorRepo: vendorRepo,
	}
}

// Add stores a review for an existing vendor. The rating is written as
// submitted; invalid values are filtered out on the read path, not here.
func (s *ReviewService) Add(ctx context.Context, vendorPhone, name, rating, photo, comment string) error {
	if name == "" || rating == "" || comment == "" {
		return ErrInvalidInput
	}

	if _, err := s.vendorRepo.FindByPhone(ctx, vendorPhone); err != nil {
		return err
	}

	return s.reviewRepo.Add(ctx, &model.Review{
		VendorPhone: vendorPhone,
		Name:        name,
		Rating:      rating,
		Photo:       photo,
		Comment:     comment,
	})
}

// VendorReviews returns a vendor's reviews with their rating summary.
func (s *ReviewService) VendorReviews(ctx context.Context, vendorPhone string) ([]model.Review, repository.RatingSummary, error) {
	reviews, err := s.reviewRepo.ListByVendor(ctx, vendorPhone)
	if err != nil {
		return nil, repository.RatingSummary{}, err
	}
	return reviews, repository.Aggregate(reviews), nil
}
