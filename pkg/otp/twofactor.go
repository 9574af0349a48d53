// Package otp wraps the 2factor.in SMS OTP HTTP API.
package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/helpo-services/helpo-backend/config"
	"github.com/helpo-services/helpo-backend/pkg/logger"
)

var (
	ErrSendFailed   = errors.New("otp send failed")
	ErrVerifyFailed = errors.New("otp verification failed")
)

// Client calls the 2factor.in API. The provider issues a session ID on send
// that must be presented together with the code on verify.
type Client struct {
	http   *resty.Client
	apiKey string
}

type apiResponse struct {
	Status  string `json:"Status"`
	Details string `json:"Details"`
}

func NewClient(cfg config.TwoFactorConfig) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(10 * time.Second),
		apiKey: cfg.APIKey,
	}
}

// SendOTP asks the provider to generate and deliver an OTP to phone
// (91XXXXXXXXXX format) and returns the verification session ID.
func (c *Client) SendOTP(ctx context.Context, phone string) (string, error) {
	var result apiResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/%s/SMS/%s/AUTOGEN", c.apiKey, phone))
	if err != nil {
		logger.Error("OTP send request failed", err, nil)
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if resp.StatusCode() != 200 || result.Status != "Success" {
		logger.Warn("OTP provider rejected send", map[string]interface{}{
			"status_code": resp.StatusCode(),
			"details":     result.Details,
		})
		return "", fmt.Errorf("%w: %s", ErrSendFailed, result.Details)
	}

	return result.Details, nil
}

// VerifyOTP checks the code entered by the user against the session created
// by SendOTP. Returns false when the provider reports a mismatch.
func (c *Client) VerifyOTP(ctx context.Context, sessionID, code string) (bool, error) {
	var result apiResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/%s/SMS/VERIFY/%s/%s", c.apiKey, sessionID, code))
	if err != nil {
		logger.Error("OTP verify request failed", err, nil)
		return false, fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}

	if resp.StatusCode() != 200 {
		return false, fmt.Errorf("%w: status %d", ErrVerifyFailed, resp.StatusCode())
	}

	return result.Status == "Success", nil
}
