package qrcode

import (
	"net/url"
	"strings"

	"scrobbler/internal/domain/service"
	"scrobbler/internal/errors"

	"github.com/skip2/go-qrcode"
)

const userCodeParam = "user_code"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToUpper(name) {
	case "L", "LOW":
		return qrcode.Low
	case "Q", "HIGH":
		return qrcode.High
	case "H", "HIGHEST":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ActivationURL appends the user code to verificationURL, keeping any query it already has.
func (s *qrcodeService) ActivationURL(verificationURL, userCode string) (string, error) {
	if userCode == "" {
		return "", errors.New("user code is required")
	}

	u, err := url.Parse(verificationURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid verification url")
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.Errorf("verification url %q must be absolute", verificationURL)
	}

	query := u.Query()
	query.Set(userCodeParam, userCode)
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// GenerateActivationQR renders the activation link as a PNG.
func (s *qrcodeService) GenerateActivationQR(verificationURL, userCode string) ([]byte, error) {
	link, err := s.ActivationURL(verificationURL, userCode)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
