package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://deals.example.com/promotions")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_PromotionURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://deals.example.com/promotions/")
	promotionID := uuid.New()

	assert.Equal(t, "https://deals.example.com/promotions/"+promotionID.String(), service.PromotionURL(promotionID))
}

func TestQRCodeService_GeneratePromotionQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://deals.example.com/promotions")

	qrBytes, err := service.GeneratePromotionQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GeneratePromotionQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "https://deals.example.com/promotions")

			qrBytes, err := service.GeneratePromotionQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}
