package service

import (
	"context"
	"errors"
	"time"

	"github.com/helpo-services/helpo-backend/internal/app/model"
	"github.com/helpo-services/helpo-backend/internal/app/repository"
	"github.com/helpo-services/helpo-backend/pkg/util"
)

var (
	ErrPasswordMismatch       = errors.New("passwords do not match")
	ErrInvalidInput           = errors.New("please fill in all required fields correctly")
	ErrInvalidPlan            = errors.New("unknown subscription plan")
	ErrRegistrationInProgress = errors.New("a registration for this phone is already in progress")
)

// registrationLockTTL bounds how long a crashed registration can hold a
// phone's lock.
const registrationLockTTL = 10 * time.Second

// Locker serializes duplicate-phone checks across concurrent registrations.
// A nil Locker disables locking (tests, single-instance dev).
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string)
}

// Plan is a subscription tier offered on the vendor dashboard.
type Plan struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

var subscriptionPlans = []Plan{
	{
		Name:  "Basic",
		Price: "₹199/month (₹6.63/day)",
		Features: []string{
			"Basic listing on Helpo platform",
			"Email support",
			"Access to basic profile analytics",
			"Verified vendor badge",
		},
	},
	{
		Name:  "Standard",
		Price: "₹499/month (₹16.63/day)",
		Features: []string{
			"Increased visibility in search results",
			"Featured in category listings",
			"Priority support",
			"Access to callback request tools",
		},
	},
	{
		Name:  "Premium",
		Price: "₹999/month (₹33.30/day)",
		Features: []string{
			"Top-tier placement on homepage & search results",
			"Priority access to customer callback requests",
			"Dedicated account support",
			"Advanced analytics dashboard",
		},
	},
}

// editableColumns are the vendor profile fields a vendor may rewrite.
// Password changes go through the forgot-password flow, and the phone is
// the listing's key, so neither is editable here.
var editableColumns = map[string]bool{
	model.ColBusinessName: true,
	model.ColPincode:      true,
	model.ColCity:         true,
	model.ColState:        true,
	model.ColPlotInfo:     true,
	model.ColBuildingInfo: true,
	model.ColStreet:       true,
	model.ColLandmark:     true,
	model.ColArea:         true,
	model.ColCategory:     true,
	model.ColDescription:  true,
	model.ColServiceHours: true,
	model.ColEmail:        true,
}

type VendorService struct {
	vendorRepo *repository.VendorRepository
	leadRepo   *repository.LeadRepository
	locker     Locker
}

func NewVendorService(vendorRepo *repository.VendorRepository, leadRepo *repository.LeadRepository, locker Locker) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
		leadRepo:   leadRepo,
		locker:     locker,
	}
}

// RegisterInput carries the registration form. Photos are the filenames of
// already-uploaded images; file bytes never pass through here.
type RegisterInput struct {
	BusinessName    string
	Phone           string
	Email           string
	Password        string
	ConfirmPassword string
	PlotInfo        string
	BuildingInfo    string
	Street          string
	Landmark        string
	Area            string
	City            string
	State           string
	Pincode         string
	Category        string
	ServiceHours    string
	Description     string
	Photos          []string
}

// Register validates the form, hashes the password and appends the vendor
// row. The duplicate-phone check inside Create is not atomic against the
// store, so a per-phone lock serializes concurrent registrations for the
// same number.
func (s *VendorService) Register(ctx context.Context, input RegisterInput) error {
	if input.Password != input.ConfirmPassword {
		return ErrPasswordMismatch
	}

	required := []string{
		input.BusinessName, input.Phone, input.Email, input.Password,
		input.PlotInfo, input.BuildingInfo, input.Street, input.Landmark,
		input.Area, input.City, input.State, input.Pincode,
		input.Category, input.ServiceHours, input.Description,
	}
	for _, field := range required {
		if field == "" {
			return ErrInvalidInput
		}
	}
	if !util.IsValidMobile(input.Phone) {
		return ErrInvalidInput
	}

	hash, err := util.HashPassword(input.Password)
	if err != nil {
		return err
	}

	if s.locker != nil {
		ok, err := s.locker.Acquire(ctx, "register:"+input.Phone, registrationLockTTL)
		if err != nil {
			return err
		}
		if !ok {
			return ErrRegistrationInProgress
		}
		defer s.locker.Release(ctx, "register:"+input.Phone)
	}

	vendor := model.Vendor{
		BusinessName: input.BusinessName,
		Pincode:      input.Pincode,
		City:         input.City,
		State:        input.State,
		PlotInfo:     input.PlotInfo,
		BuildingInfo: input.BuildingInfo,
		Street:       input.Street,
		Landmark:     input.Landmark,
		Area:         input.Area,
		Category:     input.Category,
		Phone:        input.Phone,
		Photos:       model.JoinPhotos(input.Photos),
		Description:  input.Description,
		ServiceHours: input.ServiceHours,
		Email:        input.Email,
		PasswordHash: hash,
	}

	return s.vendorRepo.Create(ctx, &vendor)
}

// Profile returns the vendor owning the given phone.
func (s *VendorService) Profile(ctx context.Context, phone string) (*model.Vendor, error) {
	return s.vendorRepo.FindByPhone(ctx, phone)
}

// UpdateProfile rewrites the vendor's editable fields and recomputes the
// photo list. Unknown field names are dropped before reaching the sheet.
func (s *VendorService) UpdateProfile(ctx context.Context, phone string, fields map[string]string, addPhotos, removePhotos []string) error {
	filtered := make(map[string]string, len(fields))
	for name, value := range fields {
		if editableColumns[name] {
			filtered[name] = value
		}
	}
	return s.vendorRepo.Update(ctx, phone, filtered, addPhotos, removePhotos)
}

// Dashboard returns the vendor, their total lead count and the plan
// catalogue.
func (s *VendorService) Dashboard(ctx context.Context, phone string) (*model.Vendor, int, []Plan, error) {
	vendor, err := s.vendorRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, 0, nil, err
	}

	leads, err := s.leadRepo.ListByVendor(ctx, phone, "")
	if err != nil {
		return nil, 0, nil, err
	}

	return vendor, len(leads), subscriptionPlans, nil
}

// Subscribe records a paid plan in the vendor's subscription cell.
func (s *VendorService) Subscribe(ctx context.Context, phone, plan string) error {
	valid := false
	for _, p := range subscriptionPlans {
		if p.Name == plan {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidPlan
	}

	return s.vendorRepo.UpdateSubscription(ctx, phone, plan)
}

// Plans returns the subscription catalogue.
func (s *VendorService) Plans() []Plan {
	return subscriptionPlans
}
