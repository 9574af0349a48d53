package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpo-services/helpo-backend/config"
	"github.com/helpo-services/helpo-backend/internal/app/model"
	"github.com/helpo-services/helpo-backend/internal/app/repository"
	"github.com/helpo-services/helpo-backend/internal/sheets"
	"github.com/helpo-services/helpo-backend/pkg/util"
)

const testJWTSecret = "test-secret"

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             testJWTSecret,
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	}
}

func setupAuthServiceTest(t *testing.T, adminCfg config.AdminConfig) (*AuthService, *sheets.FakeStore) {
	t.Helper()

	store := newTestStore()
	vendorRepo := repository.NewVendorRepository(store, testVendorTab)
	return NewAuthService(vendorRepo, testJWTConfig(), adminCfg), store
}

func seedLoginVendor(t *testing.T, store *sheets.FakeStore, phone, email, password string) {
	t.Helper()

	hash, err := util.HashPassword(password)
	require.NoError(t, err)

	v := model.Vendor{
		BusinessName: "Home Cleaning Pros",
		Phone:        phone,
		Email:        email,
		PasswordHash: hash,
		City:         "Delhi",
	}
	store.SeedRow(testVendorTab, v.Row(time.Now()))
}

func TestAuthService_VendorLogin_ByPhone(t *testing.T) {
	svc, store := setupAuthServiceTest(t, config.AdminConfig{})
	seedLoginVendor(t, store, "9876543210", "owner@cleaningpros.in", "secret123")

	vendor, tokens, err := svc.VendorLogin(context.Background(), "9876543210", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "Home Cleaning Pros", vendor.BusinessName)
	require.NotNil(t, tokens)

	claims, err := util.ValidateToken(tokens.AccessToken, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", claims.Phone)
	assert.Equal(t, RoleVendor, claims.Role)
}

func TestAuthService_VendorLogin_ByEmail(t *testing.T) {
	svc, store := setupAuthServiceTest(t, config.AdminConfig{})
	seedLoginVendor(t, store, "9876543210", "owner@cleaningpros.in", "secret123")

	// Email matching is case-insensitive; the identifier is trimmed
	vendor, _, err := svc.VendorLogin(context.Background(), "  OWNER@CleaningPros.IN  ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "9876543210", vendor.Phone)
}

func TestAuthService_VendorLogin_Invalid(t *testing.T) {
	svc, store := setupAuthServiceTest(t, config.AdminConfig{})
	seedLoginVendor(t, store, "9876543210", "owner@cleaningpros.in", "secret123")

	_, _, err := svc.VendorLogin(context.Background(), "9876543210", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.VendorLogin(context.Background(), "9000000000", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	svc, store := setupAuthServiceTest(t, config.AdminConfig{})
	seedLoginVendor(t, store, "9876543210", "owner@cleaningpros.in", "secret123")
	ctx := context.Background()

	err := svc.ForgotPassword(ctx, "owner@cleaningpros.in", "newpass456", "different")
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	err = svc.ForgotPassword(ctx, "", "newpass456", "newpass456")
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.ForgotPassword(ctx, "nobody@example.com", "newpass456", "newpass456")
	assert.ErrorIs(t, err, repository.ErrVendorNotFound)

	require.NoError(t, svc.ForgotPassword(ctx, "owner@cleaningpros.in", "newpass456", "newpass456"))

	// Old password no longer works, the new one does
	_, _, err = svc.VendorLogin(ctx, "9876543210", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.VendorLogin(ctx, "9876543210", "newpass456")
	assert.NoError(t, err)
}

func TestAuthService_AdminLogin(t *testing.T) {
	hash, err := util.HashPassword("admin-secret")
	require.NoError(t, err)

	svc, _ := setupAuthServiceTest(t, config.AdminConfig{
		Username:     "admin",
		PasswordHash: hash,
	})

	tokens, err := svc.AdminLogin("admin", "admin-secret")
	require.NoError(t, err)

	claims, err := util.ValidateToken(tokens.AccessToken, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)

	_, err = svc.AdminLogin("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.AdminLogin("intruder", "admin-secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_AdminLogin_Disabled(t *testing.T) {
	// No password hash configured disables the admin account outright
	svc, _ := setupAuthServiceTest(t, config.AdminConfig{Username: "admin"})

	_, err := svc.AdminLogin("admin", "anything")
	assert.ErrorIs(t, err, ErrAdminDisabled)
}
