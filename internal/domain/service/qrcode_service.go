package service

import "contacts/internal/domain/entity"

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GeneratePersonQR encodes the person as a vCard and returns a PNG image.
	GeneratePersonQR(person *entity.Person) ([]byte, error)
}
