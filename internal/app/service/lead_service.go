package service

import (
	"context"

	"github.com/helpo-services/helpo-backend/internal/app/model"
	"github.com/helpo-services/helpo-backend/internal/app/repository"
)

type LeadService struct {
	leadRepo *repository.LeadRepository
}

func NewLeadService(leadRepo *repository.LeadRepository) *LeadService {
	return &LeadService{leadRepo: leadRepo}
}

// Submit stores a callback request.
func (s *LeadService) Submit(ctx context.Context, name, phone, message, vendorPhone string) error {
	return s.leadRepo.Add(ctx, &model.Lead{
		Name:        name,
		Phone:       phone,
		Message:     message,
		VendorPhone: vendorPhone,
	})
}

// VendorLeads lists a vendor's callback requests, newest first, optionally
// narrowed by a requester name/phone search.
func (s *LeadService) VendorLeads(ctx context.Context, vendorPhone, search string) ([]model.Lead, error) {
	return s.leadRepo.ListByVendor(ctx, vendorPhone, search)
}
