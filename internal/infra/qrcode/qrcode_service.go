package qrcode

import (
	"strings"

	"vault/internal/domain/service"
	"vault/internal/errors"

	"github.com/skip2/go-qrcode"
)

// ErrContentTooLong is returned when content exceeds the capacity of the
// largest QR version at the configured error correction level.
var ErrContentTooLong = errors.New("qrcode: content too long to encode")

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
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

// Encode renders content as a PNG image
func (s *qrcodeService) Encode(content string) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qrcode: empty content")
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		// go-qrcode reports capacity overflow only through its message
		if strings.Contains(err.Error(), "too long") {
			return nil, errors.Wrapf(ErrContentTooLong, "%d bytes", len(content))
		}

		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
