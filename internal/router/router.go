package router

import (
	"github.com/gin-gonic/gin"
	"github.com/helpo-services/helpo-backend/config"
	"github.com/helpo-services/helpo-backend/internal/app/controller"
	"github.com/helpo-services/helpo-backend/internal/app/service"
	"github.com/helpo-services/helpo-backend/internal/middleware"
)

type Router struct {
	directoryController *controller.DirectoryController
	authController      *controller.AuthController
	vendorController    *controller.VendorController
	reviewController    *controller.ReviewController
	leadController      *controller.LeadController
	otpController       *controller.OTPController
	adminController     *controller.AdminController
	uploadController    *controller.UploadController
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

func NewRouter(
	directoryController *controller.DirectoryController,
	authController *controller.AuthController,
	vendorController *controller.VendorController,
	reviewController *controller.ReviewController,
	leadController *controller.LeadController,
	otpController *controller.OTPController,
	adminController *controller.AdminController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		directoryController: directoryController,
		authController:      authController,
		vendorController:    vendorController,
		reviewController:    reviewController,
		leadController:      leadController,
		otpController:       otpController,
		adminController:     adminController,
		uploadController:    uploadController,
		authMiddleware:      authMiddleware,
		config:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "HELPO API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/home", r.directoryController.Home)
		v1.GET("/plans", r.vendorController.Plans)

		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/forgot-password", r.authController.ForgotPassword)
			auth.POST("/admin/login", r.authController.AdminLogin)
		}

		vendors := v1.Group("/vendors")
		{
			vendors.GET("", r.directoryController.ListVendors)
			vendors.GET("/suggestions", r.directoryController.Suggestions)
			vendors.GET("/:phone", r.directoryController.VendorDetail)
			vendors.GET("/:phone/reviews", r.reviewController.VendorReviews)
			vendors.POST("/:phone/reviews", r.reviewController.CreateReview)
			vendors.POST("/:phone/callbacks", r.leadController.CreateLead)
		}

		otp := v1.Group("/otp")
		{
			otp.POST("/sms/send", r.otpController.SendSMSOTP)
			otp.POST("/sms/verify", r.otpController.VerifySMSOTP)
			otp.POST("/email/send", r.otpController.SendEmailOTP)
			otp.POST("/email/verify", r.otpController.VerifyEmailOTP)
		}

		vendor := v1.Group("/vendor")
		vendor.Use(
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireRole(service.RoleVendor),
		)
		{
			vendor.GET("/dashboard", r.vendorController.Dashboard)
			vendor.GET("/profile", r.vendorController.Profile)
			vendor.PUT("/profile", r.vendorController.UpdateProfile)
			vendor.GET("/leads", r.vendorController.Leads)
			vendor.POST("/subscribe", r.vendorController.Subscribe)
			vendor.POST("/photos/presign", r.uploadController.PresignUpload)
		}

		admin := v1.Group("/admin")
		admin.Use(
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireRole(service.RoleAdmin),
		)
		{
			admin.GET("/vendors", r.adminController.Vendors)
			admin.GET("/vendors/export", r.adminController.ExportVendors)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
