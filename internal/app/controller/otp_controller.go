package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helpo-services/helpo-backend/internal/app/service"
	apperrors "github.com/helpo-services/helpo-backend/internal/errors"
	"github.com/helpo-services/helpo-backend/internal/middleware"
)

type OTPController struct {
	verificationService *service.VerificationService
}

func NewOTPController(verificationService *service.VerificationService) *OTPController {
	return &OTPController{
		verificationService: verificationService,
	}
}

type SendSMSOTPRequest struct {
	Phone string `json:"phone" binding:"required"` // with 91 country code
}

type VerifySMSOTPRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Code      string `json:"code" binding:"required"`
}

type SendEmailOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyEmailOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// SendSMSOTP triggers an SMS verification code.
// POST /api/v1/otp/sms/send
func (ctrl *OTPController) SendSMSOTP(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SendSMSOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidPhone, "Phone is required")
		return
	}

	sessionID, err := ctrl.verificationService.SendSMSOTP(c.Request.Context(), req.Phone)
	if err != nil {
		log.Warn("SMS OTP send failed", map[string]interface{}{
			"phone": req.Phone,
			"error": err.Error(),
		})
		apperrors.Respond(c, err)
		return
	}

	log.Info("SMS OTP sent", map[string]interface{}{
		"phone": req.Phone,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":    "OTP sent successfully",
		"session_id": sessionID,
	})
}

// VerifySMSOTP checks an SMS code against its session.
// POST /api/v1/otp/sms/verify
func (ctrl *OTPController) VerifySMSOTP(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req VerifySMSOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Session ID and code are required")
		return
	}

	ok, err := ctrl.verificationService.VerifySMSOTP(c.Request.Context(), req.SessionID, req.Code)
	if err != nil {
		log.Warn("SMS OTP verification error", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.Respond(c, err)
		return
	}
	if !ok {
		apperrors.BadRequest(c, apperrors.OTPInvalidCode, "Invalid or expired code")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Phone verified successfully"})
}

// SendEmailOTP mails a verification code.
// POST /api/v1/otp/email/send
func (ctrl *OTPController) SendEmailOTP(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SendEmailOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "A valid email is required")
		return
	}

	if err := ctrl.verificationService.SendEmailOTP(c.Request.Context(), req.Email); err != nil {
		log.Warn("Email OTP send failed", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
		apperrors.Respond(c, err)
		return
	}

	log.Info("Email OTP sent", map[string]interface{}{
		"email": req.Email,
	})

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

// VerifyEmailOTP checks an emailed code.
// POST /api/v1/otp/email/verify
func (ctrl *OTPController) VerifyEmailOTP(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req VerifyEmailOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email and code are required")
		return
	}

	ok, err := ctrl.verificationService.VerifyEmailOTP(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		log.Warn("Email OTP verification error", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
		apperrors.Respond(c, err)
		return
	}
	if !ok {
		apperrors.BadRequest(c, apperrors.OTPInvalidCode, "Invalid or expired code")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}
