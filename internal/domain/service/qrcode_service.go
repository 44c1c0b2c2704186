package service

// QRCodeService renders activation links as QR codes for TV-style clients.
type QRCodeService interface {
	// GenerateActivationQR returns a PNG encoding verificationURL with userCode pre-filled.
	GenerateActivationQR(verificationURL, userCode string) ([]byte, error)

	// ActivationURL builds the link encoded by GenerateActivationQR.
	ActivationURL(verificationURL, userCode string) (string, error)
}
