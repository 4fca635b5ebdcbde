package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"crave/config"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/service"
)

const vonageEndpoint = "https://rest.nexmo.com/sms/json"

type vonageVendor struct {
	apiKey    string
	apiSecret string
	from      string
	client    *http.Client
}

// NewVonageVendor creates an SMSVendor backed by the Vonage (Nexmo) SMS API.
func NewVonageVendor(cfg *config.SMSConfig, client *http.Client) service.SMSVendor {
	return &vonageVendor{
		apiKey:    cfg.Vonage.APIKey,
		apiSecret: cfg.Vonage.APISecret,
		from:      cfg.Vonage.From,
		client:    client,
	}
}

func (v *vonageVendor) Name() string {
	return "vonage"
}

func (v *vonageVendor) Configured() bool {
	return v.apiKey != "" && v.apiSecret != "" && v.from != ""
}

// Send posts one message to the Vonage SMS API. Vonage answers HTTP 200 even
// for rejected messages and reports the real outcome per message part.
// Incomplete credentials fail before any network call.
func (v *vonageVendor) Send(ctx context.Context, phone, message string) (string, error) {
	if !v.Configured() {
		return "", domainerrors.NewConfigurationError("vonage credentials are incomplete")
	}

	form := url.Values{}
	form.Set("api_key", v.apiKey)
	form.Set("api_secret", v.apiSecret)
	form.Set("to", phone)
	form.Set("from", v.from)
	form.Set("text", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, vonageEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", domainerrors.NewProviderError("failed to build vonage request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return "", domainerrors.NewProviderError("vonage request failed", err)
	}
	defer resp.Body.Close()

	var body struct {
		Messages []struct {
			Status    string `json:"status"`
			MessageID string `json:"message-id"`
			ErrorText string `json:"error-text"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", domainerrors.NewProviderError("failed to decode vonage response", err)
	}

	if len(body.Messages) == 0 {
		return "", domainerrors.NewProviderError("vonage returned no message status", nil)
	}

	first := body.Messages[0]
	if first.Status != "0" {
		return "", domainerrors.NewProviderError(
			fmt.Sprintf("vonage rejected message (status %s): %s", first.Status, first.ErrorText), nil)
	}

	return first.MessageID, nil
}
