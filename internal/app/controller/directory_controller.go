package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helpo-services/helpo-backend/internal/app/model"
	"github.com/helpo-services/helpo-backend/internal/app/service"
	apperrors "github.com/helpo-services/helpo-backend/internal/errors"
	"github.com/helpo-services/helpo-backend/internal/middleware"
)

type DirectoryController struct {
	directoryService *service.DirectoryService
	reviewService    *service.ReviewService
}

func NewDirectoryController(directoryService *service.DirectoryService, reviewService *service.ReviewService) *DirectoryController {
	return &DirectoryController{
		directoryService: directoryService,
		reviewService:    reviewService,
	}
}

// Home returns the landing page payload: ads plus the unfiltered vendor
// list. Each section degrades to empty on store failure so a spreadsheet
// hiccup never blanks the whole page.
// GET /api/v1/home
func (ctrl *DirectoryController) Home(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	ads, err := ctrl.directoryService.Ads(c.Request.Context())
	if err != nil {
		log.Warn("Failed to load ads for home page", map[string]interface{}{
			"error": err.Error(),
		})
		ads = []model.Ad{}
	}

	vendors, err := ctrl.directoryService.ListVendors(c.Request.Context(), "", "", "")
	if err != nil {
		log.Warn("Failed to load vendors for home page", map[string]interface{}{
			"error": err.Error(),
		})
		vendors = []model.VendorView{}
	}

	c.JSON(http.StatusOK, gin.H{
		"ads":     ads,
		"vendors": vendors,
	})
}

// ListVendors searches the directory.
// GET /api/v1/vendors?query=&location=&category=
func (ctrl *DirectoryController) ListVendors(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	query := c.Query("query")
	location := c.Query("location")
	category := c.Query("category")

	vendors, err := ctrl.directoryService.ListVendors(c.Request.Context(), query, location, category)
	if err != nil {
		log.Error("Failed to list vendors", err, map[string]interface{}{
			"query":    query,
			"location": location,
			"category": category,
		})
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vendors": vendors,
		"count":   len(vendors),
	})
}

// Suggestions returns business-name autocomplete matches.
// GET /api/v1/vendors/suggestions?q=&city=
func (ctrl *DirectoryController) Suggestions(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	suggestions, err := ctrl.directoryService.Suggest(c.Request.Context(), c.Query("q"), c.Query("city"))
	if err != nil {
		log.Error("Failed to build suggestions", err, map[string]interface{}{
			"q": c.Query("q"),
		})
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// VendorDetail returns one vendor's listing with its reviews and rating
// summary.
// GET /api/v1/vendors/:phone
func (ctrl *DirectoryController) VendorDetail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	phone := c.Param("phone")

	vendor, err := ctrl.directoryService.VendorByPhone(c.Request.Context(), phone)
	if err != nil {
		log.Warn("Vendor detail lookup failed", map[string]interface{}{
			"phone": phone,
			"error": err.Error(),
		})
		apperrors.Respond(c, err)
		return
	}

	reviews, summary, err := ctrl.reviewService.VendorReviews(c.Request.Context(), phone)
	if err != nil {
		log.Error("Failed to load reviews for vendor", err, map[string]interface{}{
			"phone": phone,
		})
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vendor":        vendor,
		"reviews":       reviews,
		"rating":        summary,
		"total_reviews": len(reviews),
	})
}
