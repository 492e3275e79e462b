package hcaptcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/harsoyo/notaris-web/internal/pkg/env"
)

const defaultVerifyURL = "https://hcaptcha.com/siteverify"

var ErrEmptyToken = errors.New("hCaptcha token is empty")

type Response struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

// Verifier checks login form tokens. A Verifier without a secret is disabled
// and accepts everything.
type Verifier struct {
	SiteKey   string
	Secret    string
	VerifyURL string
	Client    *http.Client
}

// FromEnv reads HCAPTCHA_SITEKEY and HCAPTCHA_SECRET.
func FromEnv() *Verifier {
	return &Verifier{
		SiteKey:   env.GetEnv("HCAPTCHA_SITEKEY", ""),
		Secret:    env.GetEnv("HCAPTCHA_SECRET", ""),
		VerifyURL: defaultVerifyURL,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *Verifier) Enabled() bool {
	return v != nil && v.Secret != "" && v.SiteKey != ""
}

func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if !v.Enabled() {
		return true, nil
	}
	if token == "" {
		return false, ErrEmptyToken
	}

	formData := url.Values{
		"secret":   {v.Secret},
		"response": {token},
		"sitekey":  {v.SiteKey},
	}
	if remoteIP != "" {
		formData.Set("remoteip", remoteIP)
	}

	endpoint := v.VerifyURL
	if endpoint == "" {
		endpoint = defaultVerifyURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(formData.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := v.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to send request to hCaptcha API: %w", err)
	}
	defer resp.Body.Close()

	var response Response
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return false, fmt.Errorf("failed to decode hCaptcha API response: %w", err)
	}

	if !response.Success {
		errorMsg := "hCaptcha validation failed"
		if len(response.ErrorCodes) > 0 {
			errorMsg = errorMsg + ": " + strings.Join(response.ErrorCodes, ", ")
		}
		return false, errors.New(errorMsg)
	}

	return true, nil
}
