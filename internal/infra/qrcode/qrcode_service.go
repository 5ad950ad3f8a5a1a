package qrcode

import (
	"fmt"
	"strings"

	"dealfinder/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance.
// baseURL is the public promotion page prefix, e.g. https://deals.example.com/promotions.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// PromotionURL returns the public link of a promotion.
func (s *qrcodeService) PromotionURL(promotionID uuid.UUID) string {
	return s.baseURL + "/" + promotionID.String()
}

// GeneratePromotionQR generates a PNG QR code that links to the promotion page
func (s *qrcodeService) GeneratePromotionQR(promotionID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.PromotionURL(promotionID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
