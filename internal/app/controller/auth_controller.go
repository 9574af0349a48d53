package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helpo-services/helpo-backend/internal/app/service"
	apperrors "github.com/helpo-services/helpo-backend/internal/errors"
	"github.com/helpo-services/helpo-backend/internal/middleware"
)

type AuthController struct {
	authService   *service.AuthService
	vendorService *service.VendorService
}

func NewAuthController(authService *service.AuthService, vendorService *service.VendorService) *AuthController {
	return &AuthController{
		authService:   authService,
		vendorService: vendorService,
	}
}

type RegisterRequest struct {
	BusinessName    string   `json:"business_name" binding:"required"`
	Phone           string   `json:"phone" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=6"`
	ConfirmPassword string   `json:"confirm_password" binding:"required"`
	PlotInfo        string   `json:"plot_info"`
	BuildingInfo    string   `json:"building_info"`
	Street          string   `json:"street"`
	Landmark        string   `json:"landmark"`
	Area            string   `json:"area"`
	City            string   `json:"city" binding:"required"`
	State           string   `json:"state"`
	Pincode         string   `json:"pincode" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	ServiceHours    string   `json:"service_hours"`
	Description     string   `json:"description"`
	Photos          []string `json:"photos"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"` // phone or email
	Password   string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a vendor listing.
// POST /api/v1/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid registration request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Please fill in all required fields correctly")
		return
	}

	err := ctrl.vendorService.Register(c.Request.Context(), service.RegisterInput{
		BusinessName:    req.BusinessName,
		Phone:           req.Phone,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		PlotInfo:        req.PlotInfo,
		BuildingInfo:    req.BuildingInfo,
		Street:          req.Street,
		Landmark:        req.Landmark,
		Area:            req.Area,
		City:            req.City,
		State:           req.State,
		Pincode:         req.Pincode,
		Category:        req.Category,
		ServiceHours:    req.ServiceHours,
		Description:     req.Description,
		Photos:          req.Photos,
	})
	if err != nil {
		log.Warn("Vendor registration failed", map[string]interface{}{
			"phone": req.Phone,
			"error": err.Error(),
		})
		apperrors.Respond(c, err)
		return
	}

	log.Info("Vendor registered successfully", map[string]interface{}{
		"phone":         req.Phone,
		"business_name": req.BusinessName,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful. You can now log in",
	})
}

// Login authenticates a vendor by phone or email.
// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Please fill in all required fields correctly")
		return
	}

	vendor, tokens, err := ctrl.authService.VendorLogin(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		log.Warn("Vendor login failed", map[string]interface{}{
			"identifier": req.Identifier,
			"error":      err.Error(),
		})
		apperrors.Respond(c, err)
		return
	}

	log.Info("Vendor logged in successfully", map[string]interface{}{
		"phone": vendor.Phone,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"vendor":  vendor,
		"tokens":  tokens,
	})
}

// ForgotPassword resets a vendor's password by email.
// POST /api/v1/auth/forgot-password
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid forgot-password request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Please fill in all required fields correctly")
		return
	}

	if err := ctrl.authService.ForgotPassword(c.Request.Context(), req.Email, req.NewPassword, req.ConfirmPassword); err != nil {
		log.Warn("Password reset failed", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
		apperrors.Respond(c, err)
		return
	}

	log.Info("Password reset successfully", map[string]interface{}{
		"email": req.Email,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated successfully. Please log in with your new password",
	})
}

// AdminLogin authenticates the directory operator.
// POST /api/v1/auth/admin/login
func (ctrl *AuthController) AdminLogin(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Please fill in all required fields correctly")
		return
	}

	tokens, err := ctrl.authService.AdminLogin(req.Username, req.Password)
	if err != nil {
		log.Warn("Admin login failed", map[string]interface{}{
			"username": req.Username,
			"error":    err.Error(),
		})
		apperrors.Respond(c, err)
		return
	}

	log.Info("Admin logged in successfully", map[string]interface{}{
		"username": req.Username,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"tokens":  tokens,
	})
}
