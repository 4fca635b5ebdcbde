package sms

import (
	"log/slog"
	"net/http"

	"crave/config"
	"crave/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the SMS vendor, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New selects the SMS vendor once at startup. An explicit vendor name in the
// configuration wins even when its credentials are incomplete, so a
// misconfiguration surfaces as configuration errors on send instead of a
// silent fallback to another vendor. Without an override the first fully
// credentialed vendor is used, in priority order. A nil vendor means the SMS
// channel is disabled.
func New(params Params) (service.SMSVendor, error) {
	cfg := params.Config.SMS
	logger := params.Logger

	if cfg == nil {
		logger.Info("SMS not configured, channel disabled")

		return nil, nil
	}

	client := &http.Client{Timeout: params.Config.Providers.Timeout}
	vendors := []service.SMSVendor{
		NewTwilioVendor(cfg, client),
		NewVonageVendor(cfg, client),
		NewMSG91Vendor(cfg, client),
	}

	vendor, err := selectVendor(cfg.Vendor, vendors)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		logger.Warn("No SMS vendor has complete credentials, channel disabled")

		return nil, nil
	}

	logger.Info("Using SMS vendor",
		slog.String("vendor", vendor.Name()),
		slog.Bool("configured", vendor.Configured()),
	)

	return vendor, nil
}

func selectVendor(override string, vendors []service.SMSVendor) (service.SMSVendor, error) {
	if override != "" {
		for _, vendor := range vendors {
			if vendor.Name() == override {
				return vendor, nil
			}
		}

		return nil, errors.Errorf("unknown sms vendor: %s", override)
	}

	for _, vendor := range vendors {
		if vendor.Configured() {
			return vendor, nil
		}
	}

	return nil, nil
}
