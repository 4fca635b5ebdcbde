package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"crave/config"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/service"
)

const msg91Endpoint = "https://api.msg91.com/api/v2/sendsms"

type msg91Vendor struct {
	authKey  string
	senderID string
	route    string
	client   *http.Client
}

// NewMSG91Vendor creates an SMSVendor backed by the MSG91 send API.
func NewMSG91Vendor(cfg *config.SMSConfig, client *http.Client) service.SMSVendor {
	return &msg91Vendor{
		authKey:  cfg.MSG91.AuthKey,
		senderID: cfg.MSG91.SenderID,
		route:    cfg.MSG91.Route,
		client:   client,
	}
}

func (v *msg91Vendor) Name() string {
	return "msg91"
}

func (v *msg91Vendor) Configured() bool {
	return v.authKey != "" && v.senderID != ""
}

// Send posts one message to the MSG91 v2 API. The response "message" field
// carries the request id on success. Incomplete credentials fail before any
// network call.
func (v *msg91Vendor) Send(ctx context.Context, phone, message string) (string, error) {
	if !v.Configured() {
		return "", domainerrors.NewConfigurationError("msg91 credentials are incomplete")
	}

	payload := map[string]any{
		"sender": v.senderID,
		"route":  v.route,
		"sms": []map[string]any{
			{
				"message": message,
				"to":      []string{phone},
			},
		},
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", domainerrors.NewProviderError("failed to encode msg91 request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, msg91Endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", domainerrors.NewProviderError("failed to build msg91 request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("authkey", v.authKey)

	resp, err := v.client.Do(req)
	if err != nil {
		return "", domainerrors.NewProviderError("msg91 request failed", err)
	}
	defer resp.Body.Close()

	var body struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", domainerrors.NewProviderError("failed to decode msg91 response", err)
	}

	if resp.StatusCode >= http.StatusBadRequest || body.Type != "success" {
		return "", domainerrors.NewProviderError(
			fmt.Sprintf("msg91 rejected message (%s): %s", resp.Status, body.Message), nil)
	}

	return body.Message, nil
}
