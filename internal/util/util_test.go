package util

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "proof limit", bytes: 5 * 1024 * 1024, expected: "5.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
		{name: "reminder delay", duration: 72 * time.Hour, expected: "3d0h"},
		{name: "days and hours", duration: 50 * time.Hour, expected: "2d2h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount   string
		expected string
	}{
		{amount: "0", expected: "₦0.00"},
		{amount: "999", expected: "₦999.00"},
		{amount: "2500", expected: "₦2,500.00"},
		{amount: "5499.99", expected: "₦5,499.99"},
		{amount: "1234567.5", expected: "₦1,234,567.50"},
		{amount: "-2500", expected: "-₦2,500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatAmount(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "receipt.png", SanitizeFilename("receipt.png"))
	assert.Equal(t, "passwd", SanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "my_receipt__1_.jpg", SanitizeFilename("my receipt (1).jpg"))
	assert.Equal(t, "proof.jpeg", SanitizeFilename("C:\\Users\\ada\\proof.jpeg"))
	assert.Equal(t, "file", SanitizeFilename(""))
	assert.Equal(t, "htaccess", SanitizeFilename(".htaccess"))
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "local trunk prefix", raw: "08031234567", want: "+2348031234567"},
		{name: "already international", raw: "+2348031234567", want: "+2348031234567"},
		{name: "separators", raw: "0803 123-4567", want: "+2348031234567"},
		{name: "double zero prefix", raw: "002348031234567", want: "+2348031234567"},
		{name: "country code without plus", raw: "2348031234567", want: "+2348031234567"},
		{name: "no trunk prefix", raw: "8031234567", want: "+2348031234567"},
		{name: "foreign number kept", raw: "+14155550100", want: "+14155550100"},
		{name: "empty", raw: "  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizePhone(tt.raw, "+234"))
		})
	}
}
