// Package util holds small formatting helpers shared by notifications and handlers.
package util

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats a duration for humans, using days once it exceeds 24h
// (e.g. "3d4h", "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	if duration < 24*time.Hour {
		h := int(duration.Hours())
		m := int(duration.Minutes()) % 60

		return fmt.Sprintf("%dh%dm", h, m)
	}

	d := int(duration.Hours()) / 24
	h := int(duration.Hours()) % 24

	return fmt.Sprintf("%dd%dh", d, h)
}

// FormatAmount renders a money amount with two decimals and thousands separators, e.g. "₦5,499.99".
func FormatAmount(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}

	return sign + "₦" + grouped.String() + "." + frac
}

// SanitizeFilename keeps the base name of an uploaded file and replaces anything
// outside letters, digits, dot, dash and underscore.
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" {
		return "file"
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, base)

	cleaned = strings.TrimLeft(cleaned, ".")
	if cleaned == "" {
		return "file"
	}

	return cleaned
}

// NormalizePhone rewrites a phone number into international form. Separators are
// dropped, a leading 00 becomes +, and a number without a leading + gets countryCode
// in place of its local trunk 0.
func NormalizePhone(raw, countryCode string) string {
	phone := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.', '\t':
			return -1
		default:
			return r
		}
	}, strings.TrimSpace(raw))

	switch {
	case phone == "":
		return ""
	case strings.HasPrefix(phone, "+"):
		return phone
	case strings.HasPrefix(phone, "00"):
		return "+" + phone[2:]
	}

	code := strings.TrimPrefix(countryCode, "+")
	if len(phone) > 10 && strings.HasPrefix(phone, code) {
		return "+" + phone
	}

	return "+" + code + strings.TrimPrefix(phone, "0")
}
