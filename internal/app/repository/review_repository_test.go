package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpo-services/helpo-backend/internal/app/model"
	"github.com/helpo-services/helpo-backend/internal/sheets"
)

const testReviewTab = "VendorReviews"

var reviewHeaders = []string{
	model.ColReviewVendorPhone, model.ColReviewName, model.ColReviewRating,
	model.ColReviewPhoto, model.ColReviewComment, model.ColReviewCreatedAt,
}

func setupReviewRepoTest(t *testing.T) (*ReviewRepository, *sheets.FakeStore) {
	t.Helper()

	store := sheets.NewFakeStore()
	store.AddTab(testReviewTab, reviewHeaders)
	return NewReviewRepository(store, testReviewTab), store
}

func TestReviewRepository_AddAndListByVendor(t *testing.T) {
	repo, store := setupReviewRepoTest(t)
	ctx := context.Background()

	err := repo.Add(ctx, &model.Review{
		VendorPhone: "9876543210",
		Name:        "Asha",
		Rating:      "5",
		Comment:     "Great service",
	})
	require.NoError(t, err)

	// A review for another vendor, phone padded with spaces
	store.SeedRow(testReviewTab, []string{" 9123456789 ", "Ravi", "3", "", "Okay", "2024-01-01 10:00:00"})

	reviews, err := repo.ListByVendor(ctx, "9876543210")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Asha", reviews[0].Name)
	assert.NotEmpty(t, reviews[0].CreatedAt)

	// Trimmed match finds the padded row
	reviews, err = repo.ListByVendor(ctx, "9123456789")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Ravi", reviews[0].Name)
}

func TestAggregate(t *testing.T) {
	mk := func(ratings ...string) []model.Review {
		reviews := make([]model.Review, 0, len(ratings))
		for _, r := range ratings {
			reviews = append(reviews, model.Review{Rating: r})
		}
		return reviews
	}

	t.Run("no reviews", func(t *testing.T) {
		summary := Aggregate(nil)
		assert.Nil(t, summary.Average)
		assert.Equal(t, 0, summary.Total)
		assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, summary.Histogram)
	})

	t.Run("only invalid ratings", func(t *testing.T) {
		summary := Aggregate(mk("abc", "0", "6", ""))
		assert.Nil(t, summary.Average)
		assert.Equal(t, 0, summary.Total)
	})

	t.Run("average rounds to one decimal", func(t *testing.T) {
		summary := Aggregate(mk("4", "5"))
		require.NotNil(t, summary.Average)
		assert.Equal(t, 4.5, *summary.Average)
		assert.Equal(t, 2, summary.Total)

		summary = Aggregate(mk("3", "3", "4"))
		require.NotNil(t, summary.Average)
		assert.Equal(t, 3.3, *summary.Average)
	})

	t.Run("invalid ratings excluded from average and histogram", func(t *testing.T) {
		summary := Aggregate(mk("5", "oops", "6", "1"))
		require.NotNil(t, summary.Average)
		assert.Equal(t, 3.0, *summary.Average)
		assert.Equal(t, 2, summary.Total)
		assert.Equal(t, map[int]int{1: 1, 2: 0, 3: 0, 4: 0, 5: 1}, summary.Histogram)
	})
}
