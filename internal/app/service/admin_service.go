package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/helpo-services/helpo-backend/internal/app/model"
	"github.com/helpo-services/helpo-backend/internal/app/repository"
)

const exportSheetName = "Vendors"

// exportColumns is the vendor export layout. Password columns never leave
// the sheet.
var exportColumns = []string{
	model.ColBusinessName, model.ColPhone, model.ColEmail,
	model.ColCategory, model.ColCity, model.ColState, model.ColPincode,
	model.ColArea, model.ColStreet, model.ColLandmark,
	model.ColDescription, model.ColServiceHours,
	model.ColSubscription, model.ColCreatedAt, model.ColUpdatedAt,
}

// AdminService backs the operator views: the full vendor roster with
// review aggregates, and an xlsx export of it.
type AdminService struct {
	vendorRepo *repository.VendorRepository
	reviewRepo *repository.ReviewRepository
}

func NewAdminService(vendorRepo *repository.VendorRepository, reviewRepo *repository.ReviewRepository) *AdminService {
	return &AdminService{
		vendorRepo: vendorRepo,
		reviewRepo: reviewRepo,
	}
}

// Vendors returns every listing with its rating summary attached.
func (s *AdminService) Vendors(ctx context.Context) ([]model.VendorView, error) {
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

	views := make([]model.VendorView, 0, len(vendors))
	for _, v := range vendors {
		summary := repository.Aggregate(reviewsByPhone[strings.TrimSpace(v.Phone)])
		views = append(views, model.VendorView{
			Vendor:        v,
			AverageRating: summary.Average,
			ReviewCount:   summary.Total,
		})
	}

	return views, nil
}

// ExportVendorsXLSX renders the roster as a workbook for download.
func (s *AdminService) ExportVendorsXLSX(ctx context.Context) (*excelize.File, error) {
	vendors, err := s.vendorRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), exportSheetName)

	for col, header := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(exportSheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, v := range vendors {
		values := []string{
			v.BusinessName, v.Phone, v.Email,
			v.Category, v.City, v.State, v.Pincode,
			v.Area, v.Street, v.Landmark,
			v.Description, v.ServiceHours,
			v.Subscription, v.CreatedAt, v.UpdatedAt,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell: %w", err)
			}
			if err := f.SetCellValue(exportSheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
			}
		}
	}

	return f, nil
}
