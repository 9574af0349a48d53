package model

import (
	"strings"
	"time"

	"github.com/helpo-services/helpo-backend/internal/sheets"
)

// TimestampLayout is how created_at/updated_at and lead timestamps are
// written to the sheet.
const TimestampLayout = "2006-01-02 15:04:05"

// Vendor sheet column names. The order of VendorColumns is a contract with
// the sheet: appended rows must match it positionally, so a schema change
// there requires changing this list in lockstep.
const (
	ColBusinessName    = "business_name"
	ColPincode         = "pincode"
	ColCity            = "city"
	ColState           = "state"
	ColPlotInfo        = "plot_info"
	ColBuildingInfo    = "building_info"
	ColStreet          = "street"
	ColLandmark        = "landmark"
	ColArea            = "area"
	ColCategory        = "category"
	ColPhone           = "phone"
	ColPhotos          = "photos"
	ColDescription     = "description"
	ColServiceHours    = "service_hours"
	ColEmail           = "email"
	ColPassword        = "password"
	ColConfirmPassword = "confirm_password"
	ColSubscription    = "subscription"
	ColCreatedAt       = "created_at"
	ColUpdatedAt       = "updated_at"
)

var VendorColumns = []string{
	ColBusinessName, ColPincode, ColCity, ColState,
	ColPlotInfo, ColBuildingInfo, ColStreet, ColLandmark, ColArea,
	ColCategory, ColPhone, ColPhotos, ColDescription, ColServiceHours,
	ColEmail, ColPassword, ColConfirmPassword, ColSubscription,
	ColCreatedAt, ColUpdatedAt,
}

// DefaultSubscription is the tier every new vendor starts on.
const DefaultSubscription = "free"

// Vendor is a registered service provider listing. Phone is the natural
// key; uniqueness is enforced at creation time, not by the store.
type Vendor struct {
	BusinessName string `json:"business_name"`
	Pincode      string `json:"pincode"`
	City         string `json:"city"`
	State        string `json:"state"`
	PlotInfo     string `json:"plot_info"`
	BuildingInfo string `json:"building_info"`
	Street       string `json:"street"`
	Landmark     string `json:"landmark"`
	Area         string `json:"area"`
	Category     string `json:"category"`
	Phone        string `json:"phone"`
	Photos       string `json:"photos"` // comma-joined filenames
	Description  string `json:"description"`
	ServiceHours string `json:"service_hours"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Subscription string `json:"subscription"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// ParseVendor builds a typed vendor from a sheet record.
func ParseVendor(rec sheets.Record) Vendor {
	return Vendor{
		BusinessName: rec[ColBusinessName],
		Pincode:      rec[ColPincode],
		City:         rec[ColCity],
		State:        rec[ColState],
		PlotInfo:     rec[ColPlotInfo],
		BuildingInfo: rec[ColBuildingInfo],
		Street:       rec[ColStreet],
		Landmark:     rec[ColLandmark],
		Area:         rec[ColArea],
		Category:     rec[ColCategory],
		Phone:        rec[ColPhone],
		Photos:       rec[ColPhotos],
		Description:  rec[ColDescription],
		ServiceHours: rec[ColServiceHours],
		Email:        rec[ColEmail],
		PasswordHash: rec[ColPassword],
		Subscription: rec[ColSubscription],
		CreatedAt:    rec[ColCreatedAt],
		UpdatedAt:    rec[ColUpdatedAt],
	}
}

// Row lays the vendor out in VendorColumns order for a positional append.
// The confirm_password column is kept for sheet compatibility but always
// written empty: only the bcrypt hash in the password column is stored.
func (v Vendor) Row(now time.Time) []string {
	subscription := v.Subscription
	if subscription == "" {
		subscription = DefaultSubscription
	}
	ts := now.Format(TimestampLayout)

	return []string{
		v.BusinessName, v.Pincode, v.City, v.State,
		v.PlotInfo, v.BuildingInfo, v.Street, v.Landmark, v.Area,
		v.Category, v.Phone, v.Photos, v.Description, v.ServiceHours,
		v.Email, v.PasswordHash, "", subscription,
		ts, ts,
	}
}

// PhotoList splits the comma-joined photo field, dropping blanks.
func (v Vendor) PhotoList() []string {
	var photos []string
	for _, p := range strings.Split(v.Photos, ",") {
		if p = strings.TrimSpace(p); p != "" {
			photos = append(photos, p)
		}
	}
	return photos
}

// JoinPhotos is the inverse of PhotoList.
func JoinPhotos(photos []string) string {
	return strings.Join(photos, ",")
}

// VendorView is a vendor annotated with review aggregates for listings.
type VendorView struct {
	Vendor
	AverageRating *float64 `json:"average_rating"`
	ReviewCount   int      `json:"review_count"`
}
