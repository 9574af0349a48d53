package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpo-services/helpo-backend/internal/app/model"
	"github.com/helpo-services/helpo-backend/internal/app/repository"
	"github.com/helpo-services/helpo-backend/internal/sheets"
)

const (
	testVendorTab = "Helpovendor"
	testReviewTab = "VendorReviews"
	testLeadTab   = "ContactLeads"
	testAdTab     = "Ads"
)

var (
	testReviewHeaders = []string{
		model.ColReviewVendorPhone, model.ColReviewName, model.ColReviewRating,
		model.ColReviewPhoto, model.ColReviewComment, model.ColReviewCreatedAt,
	}
	testLeadHeaders = []string{
		model.ColLeadName, model.ColLeadPhone, model.ColLeadMessage,
		model.ColLeadTimestamp, model.ColLeadVendorPhone,
	}
	testAdHeaders = []string{"title", "image", "link"}
)

func newTestStore() *sheets.FakeStore {
	store := sheets.NewFakeStore()
	store.AddTab(testVendorTab, model.VendorColumns)
	store.AddTab(testReviewTab, testReviewHeaders)
	store.AddTab(testLeadTab, testLeadHeaders)
	store.AddTab(testAdTab, testAdHeaders)
	return store
}

func seedTestVendor(store *sheets.FakeStore, name, phone, category, city string) {
	v := model.Vendor{
		BusinessName: name,
		Phone:        phone,
		Category:     category,
		City:         city,
		State:        "Delhi",
		Pincode:      "110001",
		Email:        phone + "@example.com",
		Description:  "Reliable local service",
	}
	store.SeedRow(testVendorTab, v.Row(time.Now()))
}

func setupDirectoryServiceTest(t *testing.T) (*DirectoryService, *sheets.FakeStore) {
	t.Helper()

	store := newTestStore()
	vendorRepo := repository.NewVendorRepository(store, testVendorTab)
	reviewRepo := repository.NewReviewRepository(store, testReviewTab)
	adRepo := repository.NewAdRepository(store, testAdTab)
	return NewDirectoryService(vendorRepo, reviewRepo, adRepo), store
}

func TestDirectoryService_ListVendors_Unfiltered(t *testing.T) {
	svc, store := setupDirectoryServiceTest(t)
	ctx := context.Background()

	seedTestVendor(store, "Home Cleaning Pros", "9876543210", "Cleaning", "Delhi")
	seedTestVendor(store, "Pipe Masters", "9123456789", "Plumbing", "Mumbai")
	store.SeedRow(testReviewTab, []string{"9876543210", "Asha", "4", "", "Good", "2024-01-01 10:00:00"})
	store.SeedRow(testReviewTab, []string{"9876543210", "Ravi", "5", "", "Great", "2024-01-02 10:00:00"})

	views, err := svc.ListVendors(ctx, "", "", "")
	require.NoError(t, err)
	require.Len(t, views, 2)

	require.NotNil(t, views[0].AverageRating)
	assert.Equal(t, 4.5, *views[0].AverageRating)
	assert.Equal(t, 2, views[0].ReviewCount)

	// A vendor with no reviews has a nil average, not zero
	assert.Nil(t, views[1].AverageRating)
	assert.Equal(t, 0, views[1].ReviewCount)
}

func TestDirectoryService_ListVendors_Filters(t *testing.T) {
	svc, store := setupDirectoryServiceTest(t)
	ctx := context.Background()

	seedTestVendor(store, "Home Cleaning Pros", "9876543210", "Cleaning", "Delhi")
	seedTestVendor(store, "Pipe Masters", "9123456789", "Plumbing", "Mumbai")
	seedTestVendor(store, "Sparkle Cleaners", "9988776655", "Cleaning", "Mumbai")

	// Query matches business name or category as a substring
	views, err := svc.ListVendors(ctx, "pipe", "", "")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Pipe Masters", views[0].BusinessName)

	views, err = svc.ListVendors(ctx, "clean", "", "")
	require.NoError(t, err)
	assert.Len(t, views, 2)

	// Location is a substring match on city
	views, err = svc.ListVendors(ctx, "", "mum", "")
	require.NoError(t, err)
	assert.Len(t, views, 2)

	// Category must match exactly, case-insensitively
	views, err = svc.ListVendors(ctx, "", "", "cleaning")
	require.NoError(t, err)
	assert.Len(t, views, 2)

	views, err = svc.ListVendors(ctx, "", "", "clean")
	require.NoError(t, err)
	assert.Empty(t, views)

	// Filters combine with AND
	views, err = svc.ListVendors(ctx, "clean", "mumbai", "Cleaning")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Sparkle Cleaners", views[0].BusinessName)
}

func TestDirectoryService_Suggest(t *testing.T) {
	svc, store := setupDirectoryServiceTest(t)
	ctx := context.Background()

	seedTestVendor(store, "Home Cleaning Pros", "9876543210", "Cleaning", "Delhi")
	seedTestVendor(store, "Pipe Masters", "9123456789", "Plumber", "Mumbai")
	seedTestVendor(store, "Sparkle Cleaners", "9988776655", "Cleaning", "Mumbai")

	// Substring match on business name
	names, err := svc.Suggest(ctx, "hom", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Home Cleaning Pros"}, names)

	// Category matches too; results are sorted and deduplicated
	names, err = svc.Suggest(ctx, "clean", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Home Cleaning Pros", "Sparkle Cleaners"}, names)

	// Near-miss spelling passes the similarity cutoff
	names, err = svc.Suggest(ctx, "plumbr", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Pipe Masters"}, names)

	// City narrows matches
	names, err = svc.Suggest(ctx, "clean", "mumbai")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sparkle Cleaners"}, names)

	// Empty query returns an empty list, never an error
	names, err = svc.Suggest(ctx, "  ", "")
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NotNil(t, names)
}

func TestDirectoryService_Ads(t *testing.T) {
	svc, store := setupDirectoryServiceTest(t)
	ctx := context.Background()

	store.SeedRow(testAdTab, []string{"Diwali Offer", "diwali.jpg", "https://example.com"})

	ads, err := svc.Ads(ctx)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "Diwali Offer", ads[0]["title"])
}

func TestDirectoryService_VendorByPhone(t *testing.T) {
	svc, store := setupDirectoryServiceTest(t)
	ctx := context.Background()

	seedTestVendor(store, "Home Cleaning Pros", "9876543210", "Cleaning", "Delhi")

	v, err := svc.VendorByPhone(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "Home Cleaning Pros", v.BusinessName)

	_, err = svc.VendorByPhone(ctx, "9000000000")
	assert.ErrorIs(t, err, repository.ErrVendorNotFound)
}
