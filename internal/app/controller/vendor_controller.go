package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helpo-services/helpo-backend/internal/app/service"
	apperrors "github.com/helpo-services/helpo-backend/internal/errors"
	"github.com/helpo-services/helpo-backend/internal/middleware"
)

type VendorController struct {
	vendorService *service.VendorService
	leadService   *service.LeadService
}

func NewVendorController(vendorService *service.VendorService, leadService *service.LeadService) *VendorController {
	return &VendorController{
		vendorService: vendorService,
		leadService:   leadService,
	}
}

type UpdateProfileRequest struct {
	Fields       map[string]string `json:"fields"`
	AddPhotos    []string          `json:"add_photos"`
	RemovePhotos []string          `json:"remove_photos"`
}

type SubscribeRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// Dashboard returns the logged-in vendor's listing, lead count and the
// available subscription plans.
// GET /api/v1/vendor/dashboard
func (ctrl *VendorController) Dashboard(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	phone, _ := middleware.GetVendorPhone(c)

	vendor, leadCount, plans, err := ctrl.vendorService.Dashboard(c.Request.Context(), phone)
	if err != nil {
		log.Error("Failed to load dashboard", err, map[string]interface{}{
			"phone": phone,
		})
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vendor":     vendor,
		"lead_count": leadCount,
		"plans":      plans,
	})
}

// Profile returns the logged-in vendor's listing.
// GET /api/v1/vendor/profile
func (ctrl *VendorController) Profile(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	phone, _ := middleware.GetVendorPhone(c)

	vendor, err := ctrl.vendorService.Profile(c.Request.Context(), phone)
	if err != nil {
		log.Error("Failed to load profile", err, map[string]interface{}{
			"phone": phone,
		})
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}

// UpdateProfile edits the logged-in vendor's listing. Fields outside the
// editable set are dropped silently; photo changes merge into the photos
// column.
// PUT /api/v1/vendor/profile
func (ctrl *VendorController) UpdateProfile(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	phone, _ := middleware.GetVendorPhone(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid profile update request", map[string]interface{}{
			"phone": phone,
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Please fill in all required fields correctly")
		return
	}

	err := ctrl.vendorService.UpdateProfile(c.Request.Context(), phone, req.Fields, req.AddPhotos, req.RemovePhotos)
	if err != nil {
		log.Error("Profile update failed", err, map[string]interface{}{
			"phone": phone,
		})
		apperrors.Respond(c, err)
		return
	}

	log.Info("Profile updated", map[string]interface{}{
		"phone": phone,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
	})
}

// Leads lists the logged-in vendor's callback requests, newest first,
// optionally filtered by a search term over customer name and phone.
// GET /api/v1/vendor/leads?search=
func (ctrl *VendorController) Leads(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	phone, _ := middleware.GetVendorPhone(c)

	leads, err := ctrl.leadService.VendorLeads(c.Request.Context(), phone, c.Query("search"))
	if err != nil {
		log.Error("Failed to list leads", err, map[string]interface{}{
			"phone": phone,
		})
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leads": leads,
		"count": len(leads),
	})
}

// Subscribe records a plan choice on the vendor row.
// POST /api/v1/vendor/subscribe
func (ctrl *VendorController) Subscribe(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	phone, _ := middleware.GetVendorPhone(c)

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Plan is required")
		return
	}

	if err := ctrl.vendorService.Subscribe(c.Request.Context(), phone, req.Plan); err != nil {
		log.Warn("Subscription change failed", map[string]interface{}{
			"phone": phone,
			"plan":  req.Plan,
			"error": err.Error(),
		})
		apperrors.Respond(c, err)
		return
	}

	log.Info("Subscription updated", map[string]interface{}{
		"phone": phone,
		"plan":  req.Plan,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscription updated successfully",
	})
}

// Plans lists the subscription plans. Public.
// GET /api/v1/plans
func (ctrl *VendorController) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": ctrl.vendorService.Plans()})
}
