package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: storefront
  log:
    level: debug
http:
  port: 8080
checkout:
  deliveryFee: "1500"
  baseUrl: "https://shop.example.com/"
reminder:
  delay: 2h
storage:
  bucketUrl: "mem://"
`

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("CHECKOUT_DELIVERYFEE", "3000")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "storefront", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Checkout)
	assert.Equal(t, "3000", cfg.Checkout.DeliveryFee)
	require.NotNil(t, cfg.Reminder)
	assert.Equal(t, 2*time.Hour, cfg.Reminder.Delay)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Checkout: &CheckoutConfig{BaseURL: "https://shop.example.com/"},
		Metrics:  &MetricsConfig{Enabled: true},
	}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "2500", cfg.Checkout.DeliveryFee)
	assert.Equal(t, "+234", cfg.Checkout.CountryCode)
	assert.Equal(t, "cash", cfg.Checkout.DefaultPaymentMethod)
	assert.Equal(t, "https://shop.example.com", cfg.Checkout.BaseURL)
	assert.Equal(t, 72*time.Hour, cfg.Reminder.Delay)
	assert.True(t, cfg.Reminder.RestoreOnStart)
	assert.Equal(t, 10*time.Second, cfg.Notification.Timeout)
	assert.Equal(t, "/uploads", cfg.Storage.PublicPrefix)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestStorageConfig_MaxProofBytes(t *testing.T) {
	tests := []struct {
		name    string
		size    string
		want    int64
		wantErr bool
	}{
		{name: "megabytes", size: "5MB", want: 5 * 1024 * 1024},
		{name: "kilobytes", size: "512KB", want: 512 * 1024},
		{name: "invalid", size: "lots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&StorageConfig{MaxProofSize: tt.size}).MaxProofBytes()
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
