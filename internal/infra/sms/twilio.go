// Package sms contains the SMS vendor backends and the startup vendor
// selection for the SMS channel.
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

const twilioBaseURL = "https://api.twilio.com/2010-04-01"

type twilioVendor struct {
	accountSID string
	authToken  string
	from       string
	client     *http.Client
}

// NewTwilioVendor creates an SMSVendor backed by the Twilio Messages API.
func NewTwilioVendor(cfg *config.SMSConfig, client *http.Client) service.SMSVendor {
	return &twilioVendor{
		accountSID: cfg.Twilio.AccountSID,
		authToken:  cfg.Twilio.AuthToken,
		from:       cfg.Twilio.From,
		client:     client,
	}
}

func (v *twilioVendor) Name() string {
	return "twilio"
}

func (v *twilioVendor) Configured() bool {
	return v.accountSID != "" && v.authToken != "" && v.from != ""
}

// Send posts one message to the Twilio REST API and returns the message SID.
// Incomplete credentials fail before any network call.
func (v *twilioVendor) Send(ctx context.Context, phone, message string) (string, error) {
	if !v.Configured() {
		return "", domainerrors.NewConfigurationError("twilio credentials are incomplete")
	}

	form := url.Values{}
	form.Set("To", "+"+phone)
	form.Set("From", v.from)
	form.Set("Body", message)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioBaseURL, v.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", domainerrors.NewProviderError("failed to build twilio request", err)
	}
	req.SetBasicAuth(v.accountSID, v.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return "", domainerrors.NewProviderError("twilio request failed", err)
	}
	defer resp.Body.Close()

	var body struct {
		SID     string `json:"sid"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", domainerrors.NewProviderError("failed to decode twilio response", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return "", domainerrors.NewProviderError(
			fmt.Sprintf("twilio rejected message (%s): %s", resp.Status, body.Message), nil)
	}

	return body.SID, nil
}
