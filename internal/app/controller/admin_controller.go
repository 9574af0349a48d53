package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/helpo-services/helpo-backend/internal/app/service"
	apperrors "github.com/helpo-services/helpo-backend/internal/errors"
	"github.com/helpo-services/helpo-backend/internal/middleware"
)

type AdminController struct {
	adminService *service.AdminService
}

func NewAdminController(adminService *service.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// Vendors lists every vendor with review aggregates. Admin only.
// GET /api/v1/admin/vendors
func (ctrl *AdminController) Vendors(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	vendors, err := ctrl.adminService.Vendors(c.Request.Context())
	if err != nil {
		log.Error("Failed to list vendors for admin", err, nil)
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vendors": vendors,
		"count":   len(vendors),
	})
}

// ExportVendors streams the vendor roster as an xlsx download. Admin only.
// GET /api/v1/admin/vendors/export
func (ctrl *AdminController) ExportVendors(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	f, err := ctrl.adminService.ExportVendorsXLSX(c.Request.Context())
	if err != nil {
		log.Error("Failed to build vendor export", err, nil)
		apperrors.Respond(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("vendors-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		log.Error("Failed to stream vendor export", err, nil)
	}
}
