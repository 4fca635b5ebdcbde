package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"sms": map[string]any{
			"countryCode": "1",
			"twilio": map[string]any{
				"accountSid": "",
			},
		},
		"webPush": map[string]any{
			"vapidPublicKey": "",
		},
		"providers": map[string]any{
			"timeout": "10s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SMS_COUNTRYCODE", want: "sms.countryCode"},
		{envKey: "SMS_TWILIO_ACCOUNTSID", want: "sms.twilio.accountSid"},
		{envKey: "WEBPUSH_VAPIDPUBLICKEY", want: "webPush.vapidPublicKey"},
		{envKey: "PROVIDERS_TIMEOUT", want: "providers.timeout"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{SMS: &SMSConfig{}, WebPush: &WebPushConfig{}}
	cfg.applyDefaults()

	if cfg.Providers.Timeout != defaultProviderTimeout {
		t.Fatalf("Providers.Timeout = %v, want %v", cfg.Providers.Timeout, defaultProviderTimeout)
	}
	if cfg.SMS.CountryCode != defaultSMSCountryCode {
		t.Fatalf("SMS.CountryCode = %q, want %q", cfg.SMS.CountryCode, defaultSMSCountryCode)
	}
	if cfg.SMS.MaxLength != defaultSMSMaxLength {
		t.Fatalf("SMS.MaxLength = %d, want %d", cfg.SMS.MaxLength, defaultSMSMaxLength)
	}
	if cfg.WebPush.TTL != defaultWebPushTTL {
		t.Fatalf("WebPush.TTL = %d, want %d", cfg.WebPush.TTL, defaultWebPushTTL)
	}
}
