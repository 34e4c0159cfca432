// Package qrcode renders order confirmation links as PNG QR codes.
package qrcode

import (
	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	minSize     = 64
	maxSize     = 1024
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, "M"
	if cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}

	return newQRCodeService(size, level)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	switch {
	case size <= 0:
		size = defaultSize
	case size < minSize:
		size = minSize
	case size > maxSize:
		size = maxSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePNG encodes content as a square PNG of the configured size.
func (s *qrcodeService) GeneratePNG(content string) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qr code content is empty")
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
