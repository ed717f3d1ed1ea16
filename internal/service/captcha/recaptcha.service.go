package captcha

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	xerrors "gadgetmart-auth/pkg/xerrors"
)

const siteVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Verifier validates a human-presence token against a third-party service.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// RecaptchaVerifier calls Google's siteverify endpoint. Fail-closed: any
// transport or API failure rejects the request.
type RecaptchaVerifier struct {
	secret string
	client *http.Client
}

func NewRecaptchaVerifier(secret string) *RecaptchaVerifier {
	return &RecaptchaVerifier{
		secret: secret,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func (v *RecaptchaVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, siteVerifyURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return xerrors.ErrCaptchaUnavailable
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		log.Printf("[CAPTCHA] siteverify call failed: %v", err)
		return xerrors.ErrCaptchaUnavailable
	}
	defer resp.Body.Close()

	var result siteVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("[CAPTCHA] siteverify decode failed: %v", err)
		return xerrors.ErrCaptchaUnavailable
	}

	if !result.Success {
		log.Printf("[CAPTCHA] verification rejected: %v", result.ErrorCodes)
		return xerrors.ErrCaptchaFailed
	}
	return nil
}
