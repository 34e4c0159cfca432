package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "6MB"
	defaultDeliveryFee        = "2500"
	defaultCountryCode        = "+234"
	defaultPaymentMethod      = "cash"
	defaultReminderDelay      = 72 * time.Hour
	defaultNotifyTimeout      = 10 * time.Second
	defaultPublicPrefix       = "/uploads"
	defaultMaxProofSize       = "5MB"
	defaultMetricsPath        = "/metrics"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// AutoMigrate runs gorm schema migration for the storefront tables on start.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	Reminder *ReminderConfig `json:"reminder" yaml:"reminder"`

	// Notification configuration for the operator-facing channel
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Storage configuration for payment proof uploads
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// QRCode configuration for order confirmation QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// SecretKeyConfig holds the JWT signing secret.
type SecretKeyConfig struct {
	Access string `json:"access" yaml:"access"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CheckoutConfig defines order pricing and confirmation settings
type CheckoutConfig struct {
	// Flat delivery fee added to every order, in the store currency
	DeliveryFee string `json:"deliveryFee" yaml:"deliveryFee"`

	// Country calling code enforced on customer phone numbers, e.g. "+234"
	CountryCode string `json:"countryCode" yaml:"countryCode"`

	// Public base URL used to build confirmation links
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Payment method applied when the customer does not choose one
	DefaultPaymentMethod string `json:"defaultPaymentMethod" yaml:"defaultPaymentMethod"`
}

// ReminderConfig defines the confirmation reminder schedule
type ReminderConfig struct {
	Delay          time.Duration `json:"delay" yaml:"delay"`
	RestoreOnStart bool          `json:"restoreOnStart" yaml:"restoreOnStart"`
}

// NotificationConfig defines the operator notification channel
type NotificationConfig struct {
	// Provider type: "telegram", "firebase" or "log"
	Provider string `json:"provider" yaml:"provider"`

	// Timeout bounds a single delivery attempt
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	Telegram *TelegramConfig `json:"telegram" yaml:"telegram"`
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
}

// TelegramConfig defines the Telegram bot used for admin messages
type TelegramConfig struct {
	BotToken    string `json:"botToken" yaml:"botToken"`
	AdminChatID int64  `json:"adminChatId" yaml:"adminChatId"`
	APIEndpoint string `json:"apiEndpoint" yaml:"apiEndpoint"`
}

// FirebaseConfig defines Firebase configuration for topic push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	Topic           string `json:"topic" yaml:"topic"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "rabbitmq"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// AMQP URL and exchange (for rabbitmq provider)
	RabbitMQURL      string `json:"rabbitmqUrl" yaml:"rabbitmqUrl"`
	RabbitMQExchange string `json:"rabbitmqExchange" yaml:"rabbitmqExchange"`
}

// StorageConfig defines where payment proofs are stored
type StorageConfig struct {
	// gocloud bucket URL, e.g. file:///var/lib/storefront/uploads, gs://bucket, mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Prefix for the public reference returned to callers
	PublicPrefix string `json:"publicPrefix" yaml:"publicPrefix"`

	MaxProofSize string `json:"maxProofSize" yaml:"maxProofSize"`
}

// MaxProofBytes parses MaxProofSize ("5MB", "512KB") into a byte count.
func (s *StorageConfig) MaxProofBytes() (int64, error) {
	n, err := bytes.Parse(s.MaxProofSize)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid storage.maxProofSize %q", s.MaxProofSize)
	}

	return n, nil
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// MetricsConfig toggles the prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
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
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so the rest of the service can rely on them being present.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{}
	}
	if cfg.Checkout.DeliveryFee == "" {
		cfg.Checkout.DeliveryFee = defaultDeliveryFee
	}
	if cfg.Checkout.CountryCode == "" {
		cfg.Checkout.CountryCode = defaultCountryCode
	}
	if cfg.Checkout.DefaultPaymentMethod == "" {
		cfg.Checkout.DefaultPaymentMethod = defaultPaymentMethod
	}
	cfg.Checkout.BaseURL = strings.TrimRight(cfg.Checkout.BaseURL, "/")

	if cfg.Reminder == nil {
		cfg.Reminder = &ReminderConfig{RestoreOnStart: true}
	}
	if cfg.Reminder.Delay <= 0 {
		cfg.Reminder.Delay = defaultReminderDelay
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.Timeout <= 0 {
		cfg.Notification.Timeout = defaultNotifyTimeout
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.PublicPrefix == "" {
		cfg.Storage.PublicPrefix = defaultPublicPrefix
	}
	if cfg.Storage.MaxProofSize == "" {
		cfg.Storage.MaxProofSize = defaultMaxProofSize
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
