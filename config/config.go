package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath            = "."
	defaultProviderTimeout = 10 * time.Second
	defaultSMSCountryCode  = "1"
	defaultSMSMaxLength    = 160
	defaultWebPushTTL      = 60
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Email configuration for the transactional email channel
	Email *EmailConfig `json:"email" yaml:"email"`

	// WebPush configuration (VAPID keys) for the push channel
	WebPush *WebPushConfig `json:"webPush" yaml:"webPush"`

	// SMS configuration for the SMS channel vendor backends
	SMS *SMSConfig `json:"sms" yaml:"sms"`

	// Providers holds settings shared by all outbound provider calls
	Providers ProvidersConfig `json:"providers" yaml:"providers"`

	// Segments configuration for broadcast audience resolution
	Segments SegmentsConfig `json:"segments" yaml:"segments"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// EmailConfig defines the transactional email provider configuration.
// Provider selects the backend: "postmark" or "smtp".
type EmailConfig struct {
	Provider  string `json:"provider" yaml:"provider"`
	FromEmail string `json:"fromEmail" yaml:"fromEmail"`
	FromName  string `json:"fromName" yaml:"fromName"`

	Postmark struct {
		ServerToken  string `json:"serverToken" yaml:"serverToken"`
		AccountToken string `json:"accountToken" yaml:"accountToken"`
	} `json:"postmark" yaml:"postmark"`

	SMTP struct {
		Host     string `json:"host" yaml:"host"`
		Port     int    `json:"port" yaml:"port"`
		Username string `json:"username" yaml:"username"`
		Password string `json:"password" yaml:"password"`
	} `json:"smtp" yaml:"smtp"`
}

// WebPushConfig defines the VAPID credentials used by the Web Push channel.
type WebPushConfig struct {
	VAPIDPublicKey  string `json:"vapidPublicKey" yaml:"vapidPublicKey"`
	VAPIDPrivateKey string `json:"vapidPrivateKey" yaml:"vapidPrivateKey"`
	Subscriber      string `json:"subscriber" yaml:"subscriber"`
	TTL             int    `json:"ttl" yaml:"ttl"`
}

// SMSConfig defines the SMS vendor backends. Vendor forces a specific backend;
// when empty the first backend with complete credentials is selected, in
// priority order (twilio, vonage, msg91).
type SMSConfig struct {
	Vendor      string `json:"vendor" yaml:"vendor"`
	CountryCode string `json:"countryCode" yaml:"countryCode"`
	MaxLength   int    `json:"maxLength" yaml:"maxLength"`

	Twilio struct {
		AccountSID string `json:"accountSid" yaml:"accountSid"`
		AuthToken  string `json:"authToken" yaml:"authToken"`
		From       string `json:"from" yaml:"from"`
	} `json:"twilio" yaml:"twilio"`

	Vonage struct {
		APIKey    string `json:"apiKey" yaml:"apiKey"`
		APISecret string `json:"apiSecret" yaml:"apiSecret"`
		From      string `json:"from" yaml:"from"`
	} `json:"vonage" yaml:"vonage"`

	MSG91 struct {
		AuthKey  string `json:"authKey" yaml:"authKey"`
		SenderID string `json:"senderId" yaml:"senderId"`
		Route    string `json:"route" yaml:"route"`
	} `json:"msg91" yaml:"msg91"`
}

// ProvidersConfig holds hardening settings applied to every outbound call.
type ProvidersConfig struct {
	// Timeout bounds a single provider call; a hung vendor otherwise blocks
	// the calling request indefinitely.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SegmentsConfig tunes the computed broadcast audiences.
type SegmentsConfig struct {
	ActiveWithinDays int `json:"activeWithinDays" yaml:"activeWithinDays"`
	NewWithinDays    int `json:"newWithinDays" yaml:"newWithinDays"`
	VIPMinPoints     int `json:"vipMinPoints" yaml:"vipMinPoints"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: SMS_COUNTRYCODE -> sms.countryCode (not sms.countrycode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Providers.Timeout <= 0 {
		cfg.Providers.Timeout = defaultProviderTimeout
	}
	if cfg.SMS != nil {
		if strings.TrimSpace(cfg.SMS.CountryCode) == "" {
			cfg.SMS.CountryCode = defaultSMSCountryCode
		}
		if cfg.SMS.MaxLength <= 0 {
			cfg.SMS.MaxLength = defaultSMSMaxLength
		}
	}
	if cfg.WebPush != nil && cfg.WebPush.TTL <= 0 {
		cfg.WebPush.TTL = defaultWebPushTTL
	}
	if cfg.Segments.ActiveWithinDays <= 0 {
		cfg.Segments.ActiveWithinDays = 30
	}
	if cfg.Segments.NewWithinDays <= 0 {
		cfg.Segments.NewWithinDays = 7
	}
	if cfg.Segments.VIPMinPoints <= 0 {
		cfg.Segments.VIPMinPoints = 1000
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
