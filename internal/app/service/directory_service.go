package service

import (
	"context"
	"sort"
	"strings"

	"github.com/helpo-services/helpo-backend/internal/app/model"
	"github.com/helpo-services/helpo-backend/internal/app/repository"
	"github.com/helpo-services/helpo-backend/pkg/util"
)

// fuzzyCutoff is the minimum similarity for a suggestion match when the
// query is not a plain substring of the field.
const fuzzyCutoff = 0.7

// DirectoryService answers the public search and browse queries. Every call
// fetches the full vendor (and review) tabs; filtering and joining happen
// in memory.
type DirectoryService struct {
	vendorRepo *repository.VendorRepository
	reviewRepo *repository.ReviewRepository
	adRepo     *repository.AdRepository
}

func NewDirectoryService(vendorRepo *repository.VendorRepository, reviewRepo *repository.ReviewRepository, adRepo *repository.AdRepository) *DirectoryService {
	return &DirectoryService{
		vendorRepo: vendorRepo,
		reviewRepo: reviewRepo,
		adRepo:     adRepo,
	}
}

// ListVendors returns vendors annotated with review aggregates, filtered by
// the given criteria. Filters combine with AND: query matches business name
// or category as a case-insensitive substring, location matches city as a
// substring, category must be equal (case-insensitive).
func (s *DirectoryService) ListVendors(ctx context.Context, query, location, category string) ([]model.VendorView, error) {
	vendors, err := s.vendorRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	reviewsByPhone := make(map[string][]model.Review)
	for _, rev := range reviews {
		phone := strings.TrimSpace(rev.VendorPhone)
		if phone == "" {
			continue
		}
		reviewsByPhone[phone] = append(reviewsByPhone[phone], rev)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	location = strings.ToLower(strings.TrimSpace(location))
	category = strings.ToLower(strings.TrimSpace(category))

	views := make([]model.VendorView, 0, len(vendors))
	for _, v := range vendors {
		summary := repository.Aggregate(reviewsByPhone[strings.TrimSpace(v.Phone)])
		view := model.VendorView{
			Vendor:        v,
			AverageRating: summary.Average,
			ReviewCount:   summary.Total,
		}

		if query != "" &&
			!strings.Contains(strings.ToLower(v.BusinessName), query) &&
			!strings.Contains(strings.ToLower(v.Category), query) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(v.City), location) {
			continue
		}
		if category != "" && strings.ToLower(v.Category) != category {
			continue
		}

		views = append(views, view)
	}

	return views, nil
}

// Suggest returns the sorted, deduplicated business names of vendors whose
// name, category, city or description contains the query as a substring or
// comes close to it (similarity >= 0.7). A non-empty city narrows matches
// to vendors whose city contains it.
func (s *DirectoryService) Suggest(ctx context.Context, query, city string) ([]string, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []string{}, nil
	}
	city = strings.ToLower(strings.TrimSpace(city))

	vendors, err := s.vendorRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, v := range vendors {
		fields := []string{v.BusinessName, v.Category, v.City, v.Description}
		for _, field := range fields {
			value := strings.ToLower(field)
			if !strings.Contains(value, query) && util.Similarity(query, value) < fuzzyCutoff {
				continue
			}
			if city != "" && !strings.Contains(strings.ToLower(v.City), city) {
				continue
			}
			seen[v.BusinessName] = true
			break
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// VendorByPhone returns a single public listing.
func (s *DirectoryService) VendorByPhone(ctx context.Context, phone string) (*model.Vendor, error) {
	return s.vendorRepo.FindByPhone(ctx, phone)
}

// Ads returns the ads tab unmodified.
func (s *DirectoryService) Ads(ctx context.Context) ([]model.Ad, error) {
	return s.adRepo.ListAll(ctx)
}
