package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/helpo-services/helpo-backend/config"
	"github.com/helpo-services/helpo-backend/internal/app/model"
	"github.com/helpo-services/helpo-backend/internal/app/repository"
	"github.com/helpo-services/helpo-backend/pkg/util"
)

var (
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrAdminDisabled      = errors.New("admin login is not configured")
)

const (
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)

// AuthService issues JWT pairs for vendors and the admin. Vendor passwords
// are bcrypt hashes stored in the vendor sheet; the admin credential is a
// bcrypt hash from the environment.
type AuthService struct {
	vendorRepo    *repository.VendorRepository
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	admin         config.AdminConfig
}

func NewAuthService(vendorRepo *repository.VendorRepository, jwtCfg config.JWTConfig, adminCfg config.AdminConfig) *AuthService {
	return &AuthService{
		vendorRepo:    vendorRepo,
		jwtSecret:     jwtCfg.Secret,
		accessExpiry:  jwtCfg.AccessTokenExpiry,
		refreshExpiry: jwtCfg.RefreshTokenExpiry,
		admin:         adminCfg,
	}
}

// VendorLogin authenticates by phone or email plus password.
func (s *AuthService) VendorLogin(ctx context.Context, identifier, password string) (*model.Vendor, *util.TokenPair, error) {
	identifier = strings.TrimSpace(identifier)

	vendors, err := s.vendorRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	for _, v := range vendors {
		if v.Phone != identifier && !strings.EqualFold(v.Email, identifier) {
			continue
		}
		if !util.VerifyPassword(v.PasswordHash, password) {
			return nil, nil, ErrInvalidCredentials
		}

		tokens, err := util.GenerateTokenPair(v.Phone, v.Email, RoleVendor, s.jwtSecret, s.accessExpiry, s.refreshExpiry)
		if err != nil {
			return nil, nil, err
		}
		return &v, tokens, nil
	}

	return nil, nil, ErrInvalidCredentials
}

// ForgotPassword resets a vendor's password by email.
func (s *AuthService) ForgotPassword(ctx context.Context, email, newPassword, confirmPassword string) error {
	if email == "" || newPassword == "" || confirmPassword == "" {
		return ErrInvalidInput
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	if _, err := s.vendorRepo.FindByEmail(ctx, email); err != nil {
		return err
	}

	hash, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.vendorRepo.UpdatePasswordByEmail(ctx, email, hash)
}

// AdminLogin authenticates the configured admin account. With no password
// hash configured the admin surface stays disabled.
func (s *AuthService) AdminLogin(username, password string) (*util.TokenPair, error) {
	if s.admin.PasswordHash == "" {
		return nil, ErrAdminDisabled
	}
	if username != s.admin.Username || !util.VerifyPassword(s.admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return util.GenerateTokenPair(username, "", RoleAdmin, s.jwtSecret, s.accessExpiry, s.refreshExpiry)
}
