package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helpo-services/helpo-backend/internal/app/service"
	apperrors "github.com/helpo-services/helpo-backend/internal/errors"
	"github.com/helpo-services/helpo-backend/internal/middleware"
)

type ReviewController struct {
	reviewService *service.ReviewService
}

func NewReviewController(reviewService *service.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

type CreateReviewRequest struct {
	Name    string `json:"name" binding:"required"`
	Rating  string `json:"rating" binding:"required"`
	Photo   string `json:"photo"`
	Comment string `json:"comment" binding:"required"`
}

// CreateReview appends a customer review for a vendor. No login required.
// POST /api/v1/vendors/:phone/reviews
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	vendorPhone := c.Param("phone")

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid review request", map[string]interface{}{
			"vendor_phone": vendorPhone,
			"error":        err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ReviewInvalidInput, "Name, rating and comment are required")
		return
	}

	err := ctrl.reviewService.Add(c.Request.Context(), vendorPhone, req.Name, req.Rating, req.Photo, req.Comment)
	if err != nil {
		log.Warn("Review submission failed", map[string]interface{}{
			"vendor_phone": vendorPhone,
			"error":        err.Error(),
		})
		apperrors.Respond(c, err)
		return
	}

	log.Info("Review submitted", map[string]interface{}{
		"vendor_phone": vendorPhone,
		"rating":       req.Rating,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for your review",
	})
}

// VendorReviews lists a vendor's reviews with the rating summary.
// GET /api/v1/vendors/:phone/reviews
func (ctrl *ReviewController) VendorReviews(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	vendorPhone := c.Param("phone")

	reviews, summary, err := ctrl.reviewService.VendorReviews(c.Request.Context(), vendorPhone)
	if err != nil {
		log.Error("Failed to list reviews", err, map[string]interface{}{
			"vendor_phone": vendorPhone,
		})
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"rating":  summary,
	})
}
