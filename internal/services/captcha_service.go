package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultCaptchaVerifyURL is Google's reCAPTCHA verification endpoint.
const DefaultCaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// CaptchaService verifies a client-submitted CAPTCHA token against the
// third-party verification endpoint. Verification gates persistence of
// contact messages.
type CaptchaService interface {
	Verify(ctx context.Context, token string) error
}

type captchaService struct {
	secret    string
	verifyURL string
	http      *http.Client
}

// NewCaptchaService creates a CAPTCHA verifier. verifyURL falls back to
// DefaultCaptchaVerifyURL when empty.
func NewCaptchaService(secret, verifyURL string) CaptchaService {
	if verifyURL == "" {
		verifyURL = DefaultCaptchaVerifyURL
	}
	return &captchaService{
		secret:    secret,
		verifyURL: verifyURL,
		http:      &http.Client{},
	}
}

type captchaVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

// Verify issues a single verification request and returns
// ErrInvalidCaptcha when the service rejects the token. Transport
// failures propagate as-is; there is no retry.
func (s *captchaService) Verify(ctx context.Context, token string) error {
	form := url.Values{}
	form.Set("secret", s.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build captcha request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("captcha verification request failed: %w", err)
	}
	defer resp.Body.Close()

	// A non-200 answer is a downstream failure, not a captcha verdict.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("captcha verification returned status %d", resp.StatusCode)
	}

	var result captchaVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode captcha response: %w", err)
	}

	if !result.Success {
		return ErrInvalidCaptcha
	}
	return nil
}
