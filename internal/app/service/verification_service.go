package service

import (
	"context"
	"errors"
	"time"

	"github.com/helpo-services/helpo-backend/pkg/util"
)

var ErrInvalidPhoneFormat = errors.New("phone must be an Indian mobile number with the 91 prefix")

// emailOTPTTL is how long an emailed code stays valid.
const emailOTPTTL = 5 * time.Minute

// SMSProvider sends and verifies phone OTPs through the external SMS API.
type SMSProvider interface {
	SendOTP(ctx context.Context, phone string) (sessionID string, err error)
	VerifyOTP(ctx context.Context, sessionID, code string) (bool, error)
}

// EmailSender delivers an OTP code by email.
type EmailSender interface {
	SendOTPEmail(to, code string) error
}

// CodeStore holds issued email codes until they expire or are consumed.
type CodeStore interface {
	Store(ctx context.Context, kind, recipient, code string, ttl time.Duration) error
	Check(ctx context.Context, kind, recipient, code string) (bool, error)
}

// VerificationService runs the phone and email OTP flows used during
// vendor registration.
type VerificationService struct {
	sms   SMSProvider
	email EmailSender
	codes CodeStore
}

func NewVerificationService(sms SMSProvider, email EmailSender, codes CodeStore) *VerificationService {
	return &VerificationService{
		sms:   sms,
		email: email,
		codes: codes,
	}
}

// SendSMSOTP asks the SMS provider to deliver a code, returning the
// provider's verification session ID. The phone must already carry the 91
// country prefix.
func (s *VerificationService) SendSMSOTP(ctx context.Context, phone string) (string, error) {
	if !util.IsValidMobileWithCountryCode(phone) {
		return "", ErrInvalidPhoneFormat
	}
	return s.sms.SendOTP(ctx, phone)
}

// VerifySMSOTP checks a code against the provider session.
func (s *VerificationService) VerifySMSOTP(ctx context.Context, sessionID, code string) (bool, error) {
	return s.sms.VerifyOTP(ctx, sessionID, code)
}

// SendEmailOTP generates a 6-digit code, stores it with a 5-minute TTL and
// emails it.
func (s *VerificationService) SendEmailOTP(ctx context.Context, email string) error {
	code, err := util.GenerateVerificationCode()
	if err != nil {
		return err
	}
	if err := s.codes.Store(ctx, "email", email, code, emailOTPTTL); err != nil {
		return err
	}
	return s.email.SendOTPEmail(email, code)
}

// VerifyEmailOTP checks and consumes an emailed code.
func (s *VerificationService) VerifyEmailOTP(ctx context.Context, email, code string) (bool, error) {
	return s.codes.Check(ctx, "email", email, code)
}
