package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/helpo-services/helpo-backend/internal/app/repository"
	"github.com/helpo-services/helpo-backend/internal/app/service"
	"github.com/helpo-services/helpo-backend/internal/sheets"
)

// ErrorInfo pairs an error code with its HTTP status and user message.
type ErrorInfo struct {
	Status  int
	Code    string
	Message string
}

// Parse maps the application's sentinel errors onto response codes. Unknown
// errors fall back to a generic 500 so internals never leak to the client.
func Parse(err error) ErrorInfo {
	switch {
	case errors.Is(err, repository.ErrVendorNotFound):
		return ErrorInfo{http.StatusNotFound, VendorNotFound, "Vendor not found"}
	case errors.Is(err, repository.ErrDuplicatePhone):
		return ErrorInfo{http.StatusConflict, VendorAlreadyRegistered, "Vendor already registered"}
	case errors.Is(err, repository.ErrLeadMissingField):
		return ErrorInfo{http.StatusBadRequest, LeadMissingField, "Missing required fields"}
	case errors.Is(err, service.ErrPasswordMismatch):
		return ErrorInfo{http.StatusBadRequest, ValidationPasswordMatch, "Passwords do not match"}
	case errors.Is(err, service.ErrInvalidInput):
		return ErrorInfo{http.StatusBadRequest, ValidationInvalidInput, "Please fill in all required fields correctly"}
	case errors.Is(err, service.ErrInvalidPlan):
		return ErrorInfo{http.StatusBadRequest, VendorInvalidPlan, "Unknown subscription plan"}
	case errors.Is(err, service.ErrRegistrationInProgress):
		return ErrorInfo{http.StatusConflict, VendorRegistrationBusy, "A registration for this phone is already in progress"}
	case errors.Is(err, service.ErrInvalidCredentials):
		return ErrorInfo{http.StatusUnauthorized, AuthInvalidCredentials, "Invalid login. Please check your credentials"}
	case errors.Is(err, service.ErrAdminDisabled):
		return ErrorInfo{http.StatusForbidden, AuthAdminDisabled, "Admin login is not configured"}
	case errors.Is(err, service.ErrInvalidPhoneFormat):
		return ErrorInfo{http.StatusBadRequest, ValidationInvalidPhone, "Invalid phone format"}
	case errors.Is(err, sheets.ErrWrite):
		return ErrorInfo{http.StatusBadGateway, StoreWriteFailed, "Could not save your changes. Please try again later"}
	case errors.Is(err, sheets.ErrConnection):
		return ErrorInfo{http.StatusBadGateway, StoreUnavailable, "Service temporarily unavailable. Please try again later"}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "timeout") {
		return ErrorInfo{http.StatusBadGateway, InternalExternalAPI, "External service connection failed. Please try again later"}
	}

	return ErrorInfo{http.StatusInternalServerError, InternalServerError, "Something went wrong. Please try again later"}
}

// Respond parses err and writes the matching error payload.
func Respond(c *gin.Context, err error) {
	info := Parse(err)
	RespondWithError(c, info.Status, info.Code, info.Message)
}
