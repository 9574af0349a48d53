package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSMSProvider struct {
	sentTo    string
	sessionID string
	verifyOK  bool
}

func (f *fakeSMSProvider) SendOTP(ctx context.Context, phone string) (string, error) {
	f.sentTo = phone
	return f.sessionID, nil
}

func (f *fakeSMSProvider) VerifyOTP(ctx context.Context, sessionID, code string) (bool, error) {
	return f.verifyOK, nil
}

type fakeEmailSender struct {
	to   string
	code string
}

func (f *fakeEmailSender) SendOTPEmail(to, code string) error {
	f.to = to
	f.code = code
	return nil
}

type fakeCodeStore struct {
	codes map[string]string
}

func newFakeCodeStore() *fakeCodeStore {
	return &fakeCodeStore{codes: make(map[string]string)}
}

func (f *fakeCodeStore) Store(ctx context.Context, kind, recipient, code string, ttl time.Duration) error {
	f.codes[kind+":"+recipient] = code
	return nil
}

func (f *fakeCodeStore) Check(ctx context.Context, kind, recipient, code string) (bool, error) {
	stored, ok := f.codes[kind+":"+recipient]
	if !ok || stored != code {
		return false, nil
	}
	delete(f.codes, kind+":"+recipient)
	return true, nil
}

func TestVerificationService_SendSMSOTP(t *testing.T) {
	sms := &fakeSMSProvider{sessionID: "session-1"}
	svc := NewVerificationService(sms, &fakeEmailSender{}, newFakeCodeStore())
	ctx := context.Background()

	sessionID, err := svc.SendSMSOTP(ctx, "919876543210")
	require.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)
	assert.Equal(t, "919876543210", sms.sentTo)

	// The 91 prefix is required
	_, err = svc.SendSMSOTP(ctx, "9876543210")
	assert.ErrorIs(t, err, ErrInvalidPhoneFormat)

	_, err = svc.SendSMSOTP(ctx, "911234567890")
	assert.ErrorIs(t, err, ErrInvalidPhoneFormat)
}

func TestVerificationService_EmailOTP(t *testing.T) {
	email := &fakeEmailSender{}
	codes := newFakeCodeStore()
	svc := NewVerificationService(&fakeSMSProvider{}, email, codes)
	ctx := context.Background()

	require.NoError(t, svc.SendEmailOTP(ctx, "owner@cleaningpros.in"))
	assert.Equal(t, "owner@cleaningpros.in", email.to)
	assert.Len(t, email.code, 6)

	ok, err := svc.VerifyEmailOTP(ctx, "owner@cleaningpros.in", "000000")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.VerifyEmailOTP(ctx, "owner@cleaningpros.in", email.code)
	require.NoError(t, err)
	assert.True(t, ok)

	// Codes are consumed on successful verification
	ok, err = svc.VerifyEmailOTP(ctx, "owner@cleaningpros.in", email.code)
	require.NoError(t, err)
	assert.False(t, ok)
}
