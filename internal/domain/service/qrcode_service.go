package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GeneratePromotionQR renders a PNG QR code pointing at the public promotion page.
	GeneratePromotionQR(promotionID uuid.UUID) ([]byte, error)

	// PromotionURL is the public link encoded in a promotion QR code.
	PromotionURL(promotionID uuid.UUID) string
}
