package qrcode

import (
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		name string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.name))
		})
	}
}

func TestQRCodeService_ActivationURL(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name            string
		verificationURL string
		want            string
		wantErr         bool
	}{
		{"plain", "http://localhost:8080/activate", "http://localhost:8080/activate?user_code=ABCD2345", false},
		{"existing query", "https://scrobble.example/activate?lang=en", "https://scrobble.example/activate?lang=en&user_code=ABCD2345", false},
		{"relative", "/activate", "", true},
		{"garbage", "://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ActivationURL(tt.verificationURL, "ABCD2345")
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQRCodeService_ActivationURLRequiresCode(t *testing.T) {
	_, err := NewQRCodeService(256, "M").ActivationURL("http://localhost:8080/activate", "")
	assert.Error(t, err)
}

func TestQRCodeService_GenerateActivationQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		qrBytes, err := NewQRCodeService(size, "M").GenerateActivationQR("http://localhost:8080/activate", "ABCD2345")
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_GenerateActivationQRInvalidURL(t *testing.T) {
	_, err := NewQRCodeService(256, "M").GenerateActivationQR("/activate", "ABCD2345")
	assert.Error(t, err)
}
