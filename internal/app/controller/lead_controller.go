package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helpo-services/helpo-backend/internal/app/service"
	apperrors "github.com/helpo-services/helpo-backend/internal/errors"
	"github.com/helpo-services/helpo-backend/internal/middleware"
)

type LeadController struct {
	leadService *service.LeadService
}

func NewLeadController(leadService *service.LeadService) *LeadController {
	return &LeadController{
		leadService: leadService,
	}
}

type CreateLeadRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message"`
}

// CreateLead records a callback request against a vendor. No login required.
// POST /api/v1/vendors/:phone/callbacks
func (ctrl *LeadController) CreateLead(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	vendorPhone := c.Param("phone")

	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid callback request", map[string]interface{}{
			"vendor_phone": vendorPhone,
			"error":        err.Error(),
		})
		apperrors.BadRequest(c, apperrors.LeadMissingField, "Name and phone are required")
		return
	}

	err := ctrl.leadService.Submit(c.Request.Context(), req.Name, req.Phone, req.Message, vendorPhone)
	if err != nil {
		log.Warn("Callback submission failed", map[string]interface{}{
			"vendor_phone": vendorPhone,
			"error":        err.Error(),
		})
		apperrors.Respond(c, err)
		return
	}

	log.Info("Callback request recorded", map[string]interface{}{
		"vendor_phone": vendorPhone,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Request received. The vendor will call you back soon",
	})
}
