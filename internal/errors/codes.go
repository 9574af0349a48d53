package errors

// Error code constants returned in API error payloads. The frontend maps
// these to display messages.

const (
	// Authentication
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthAdminDisabled      = "AUTH_ADMIN_DISABLED"

	// Authorization
	AuthzForbidden    = "AUTHZ_FORBIDDEN"
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND"

	// Validation
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationRequired      = "VALIDATION_REQUIRED"
	ValidationInvalidPhone  = "VALIDATION_INVALID_PHONE"
	ValidationPasswordMatch = "VALIDATION_PASSWORD_MISMATCH"

	// Vendors
	VendorNotFound          = "VENDOR_NOT_FOUND"
	VendorAlreadyRegistered = "VENDOR_ALREADY_REGISTERED"
	VendorRegistrationBusy  = "VENDOR_REGISTRATION_BUSY"
	VendorInvalidPlan       = "VENDOR_INVALID_PLAN"

	// Reviews and leads
	ReviewInvalidInput = "REVIEW_INVALID_INPUT"
	LeadMissingField   = "LEAD_MISSING_FIELD"

	// Record store
	StoreUnavailable = "STORE_UNAVAILABLE"
	StoreWriteFailed = "STORE_WRITE_FAILED"

	// OTP
	OTPSendFailed   = "OTP_SEND_FAILED"
	OTPVerifyFailed = "OTP_VERIFY_FAILED"
	OTPInvalidCode  = "OTP_INVALID_CODE"

	// Uploads
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFailed          = "UPLOAD_FAILED"

	// Internal
	InternalServerError = "INTERNAL_SERVER_ERROR"
	InternalExternalAPI = "INTERNAL_EXTERNAL_API"
)
